// Copyright 2026 The Tabsyn Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package synth

import (
	"context"
	"sort"

	"github.com/irifrance/tabsyn/gate"
	"github.com/irifrance/tabsyn/tt"
)

// A Solution is one output's entry in a MultiResult.
type Solution struct {
	State State
	ID    ID  // realizing signal, valid when Found
	Level int // level at which the chosen realization appeared
}

// A MultiResult is the outcome of a multi output search.  Outputs
// holds one Solution per target name; unreachable targets carry
// Exhausted entries and do not contribute to TotalCost.
type MultiResult struct {
	Outputs   map[string]Solution
	TotalCost int // unique-node cost of the union circuit
	AllFound  bool
	Pool      *Pool
	Stats     Snapshot
}

// Expr renders the circuit chosen for the named output.
func (r *MultiResult) Expr(name string) string {
	s, ok := r.Outputs[name]
	if !ok || s.State != Found {
		return ""
	}
	return r.Pool.Expr(s.ID)
}

// group collects the targets sharing one column and the alternative
// realizations recorded for it.
type group struct {
	names []string
	alts  []alt
}

type alt struct {
	id   ID
	cost int // unique-node cost of this realization alone
}

// SearchMulti realizes all target columns from one shared pool.
// Unlike Search it does not stop at the first level where every
// target is reachable: it records every candidate that reproduces a
// target column, including ones the pool rejects as duplicates, keeps
// generating for opts.ContinueLevels further levels, and then selects
// one recorded realization per target so that the unique-node union
// costs least.  Only realizations discovered during the run are
// considered, so the result is a best effort minimum, not a proved
// one.
func SearchMulti(ctx context.Context, inputs map[string]tt.Vec, targets map[string]tt.Vec, lib *gate.Lib, opts Options) (*MultiResult, error) {
	opts.defaults()
	if len(targets) == 0 {
		return nil, configErrf("no target outputs")
	}
	names, rows, err := validate(inputs, targets, lib)
	if err != nil {
		return nil, err
	}
	e := newEngine(lib, rows, opts)

	groups := make(map[string]*group) // by column key
	tnames := make([]string, 0, len(targets))
	for name := range targets {
		tnames = append(tnames, name)
	}
	sort.Strings(tnames)
	for _, name := range tnames {
		k := targets[name].Key()
		g := groups[k]
		if g == nil {
			g = &group{}
			groups[k] = g
		}
		g.names = append(g.names, name)
	}
	record := func(g *group, id ID) {
		g.alts = append(g.alts, alt{id: id, cost: e.pool.CostOf(id)})
		sort.SliceStable(g.alts, func(i, j int) bool { return g.alts[i].cost < g.alts[j].cost })
		if len(g.alts) > opts.MaxAltPerTarget {
			g.alts = g.alts[:opts.MaxAltPerTarget]
		}
	}
	e.onCandidate = func(bits tt.Vec, gi int, ins []ID, id ID, isNew bool) {
		g, ok := groups[bits.Key()]
		if !ok {
			return
		}
		if !isNew {
			// Duplicate column, but a fresh way to build it; keep it
			// as a shadow node so selection can weigh it.
			id = e.pool.addShadow(bits, gi, ins, e.pool.At(id).Level)
		}
		record(g, id)
	}

	for _, name := range names {
		id, _ := e.pool.AddLeaf(name, inputs[name])
		if g, ok := groups[inputs[name].Key()]; ok {
			record(g, id)
		}
	}
	e.emit(0)

	stop := opts.MaxComplexity
	level := 0
	for level < stop {
		if allMatched(groups) {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		level++
		if err := e.genLevel(ctx, level); err != nil {
			return nil, err
		}
	}
	if allMatched(groups) && opts.ContinueLevels > 0 {
		extra := level + opts.ContinueLevels
		for level < extra && level < opts.MaxComplexity {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			level++
			if err := e.genLevel(ctx, level); err != nil {
				return nil, err
			}
		}
	}
	return e.selectMulti(groups, tnames, targets, level), nil
}

func allMatched(groups map[string]*group) bool {
	for _, g := range groups {
		if len(g.alts) == 0 {
			return false
		}
	}
	return true
}

// selectMulti enumerates one realization per matched group and keeps
// the assignment whose union of unique nodes costs least.
func (e *engine) selectMulti(groups map[string]*group, tnames []string, targets map[string]tt.Vec, level int) *MultiResult {
	res := &MultiResult{
		Outputs:  make(map[string]Solution, len(tnames)),
		AllFound: true,
		Pool:     e.pool,
		Stats:    e.snapshot(level),
	}
	matched := make([]*group, 0, len(groups))
	seen := make(map[*group]bool, len(groups))
	for _, name := range tnames {
		g := groups[targets[name].Key()]
		if len(g.alts) == 0 {
			res.Outputs[name] = Solution{State: Exhausted}
			res.AllFound = false
		} else if !seen[g] {
			seen[g] = true
			matched = append(matched, g)
		}
	}
	if len(matched) == 0 {
		return res
	}
	capProduct(matched)

	best := make([]ID, len(matched))
	pick := make([]ID, len(matched))
	bestCost := -1
	var walk func(i int)
	walk = func(i int) {
		if i == len(matched) {
			roots := make([]ID, len(pick))
			copy(roots, pick)
			c := e.pool.CostOf(roots...)
			if bestCost < 0 || c < bestCost {
				bestCost = c
				copy(best, pick)
			}
			return
		}
		for _, a := range matched[i].alts {
			pick[i] = a.id
			walk(i + 1)
		}
	}
	walk(0)

	res.TotalCost = bestCost
	for i, g := range matched {
		for _, name := range g.names {
			res.Outputs[name] = Solution{
				State: Found,
				ID:    best[i],
				Level: e.pool.At(best[i]).Level,
			}
		}
	}
	return res
}

// capProduct bounds the assignment enumeration by halving the longest
// alternative list (lowest cost entries survive) until the product of
// list sizes is tractable.
func capProduct(matched []*group) {
	const maxProduct = 1 << 16
	for {
		p := 1
		longest := 0
		for i, g := range matched {
			p *= len(g.alts)
			if len(g.alts) > len(matched[longest].alts) {
				longest = i
			}
			if p > maxProduct {
				break
			}
		}
		if p <= maxProduct || len(matched[longest].alts) <= 1 {
			return
		}
		g := matched[longest]
		g.alts = g.alts[:(len(g.alts)+1)/2]
	}
}
