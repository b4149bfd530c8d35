// Copyright 2026 The Tabsyn Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package synth

import (
	"context"

	"github.com/irifrance/tabsyn/gate"
	"github.com/irifrance/tabsyn/tt"
)

// A Result is the outcome of a single output search.
type Result struct {
	State State
	ID    ID    // matching signal, valid when Found
	Level int   // level of the match
	Cost  int   // unique-node cost of the realizing circuit
	Pool  *Pool // the full pool, for inspection and rendering
	Stats Snapshot
}

// Expr renders the found circuit as a gate expression.
func (r *Result) Expr() string {
	if r.State != Found {
		return ""
	}
	return r.Pool.Expr(r.ID)
}

// Search looks for a circuit over inputs computing the target column.
// Ties among matches in one level go to first discovery in generation
// order: library order by gate, lexicographic by input ids.  ctx is
// polled between levels.
func Search(ctx context.Context, inputs map[string]tt.Vec, target tt.Vec, lib *gate.Lib, opts Options) (*Result, error) {
	opts.defaults()
	names, rows, err := validate(inputs, map[string]tt.Vec{"target": target}, lib)
	if err != nil {
		return nil, err
	}
	e := newEngine(lib, rows, opts)
	for _, name := range names {
		e.pool.AddLeaf(name, inputs[name])
	}
	if id, ok := e.pool.Lookup(target); ok {
		e.emit(0)
		return e.result(Found, id, 0), nil
	}
	for level := 1; level <= opts.MaxComplexity; level++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := e.genLevel(ctx, level); err != nil {
			return nil, err
		}
		if id, ok := e.pool.Lookup(target); ok {
			return e.result(Found, id, level), nil
		}
	}
	return e.result(Exhausted, 0, opts.MaxComplexity), nil
}

func (e *engine) result(st State, id ID, level int) *Result {
	r := &Result{
		State: st,
		Pool:  e.pool,
		Level: level,
		Stats: e.snapshot(level),
	}
	if st == Found {
		r.ID = id
		r.Level = e.pool.At(id).Level
		r.Cost = e.pool.CostOf(id)
	}
	return r
}
