// Copyright 2026 The Tabsyn Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package synth

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/irifrance/tabsyn/gate"
	"github.com/irifrance/tabsyn/tt"
)

// engine runs level generation over a pool.  Drivers own one engine
// per search run.
type engine struct {
	lib   *gate.Lib
	pool  *Pool
	opts  Options
	prune *pruner
	rows  int
	start time.Time

	explored uint64
	skipped  uint64
	inserted uint64

	// onCandidate observes every evaluated candidate in generation
	// order, after its insert attempt.  Used by SearchMulti to record
	// alternative target realizations.
	onCandidate func(bits tt.Vec, gi int, ins []ID, id ID, isNew bool)
}

func newEngine(lib *gate.Lib, rows int, opts Options) *engine {
	return &engine{
		lib:   lib,
		pool:  NewPool(lib, opts.PoolCapPerLevel),
		opts:  opts,
		prune: newPruner(lib),
		rows:  rows,
		start: time.Now(),
	}
}

func (e *engine) snapshot(level int) Snapshot {
	return Snapshot{
		Level:    level,
		Explored: atomic.LoadUint64(&e.explored),
		Skipped:  atomic.LoadUint64(&e.skipped),
		Inserted: e.inserted,
		Pool:     e.pool.Len(),
		Elapsed:  time.Since(e.start),
	}
}

func (e *engine) emit(level int) {
	if e.opts.Progress != nil {
		e.opts.Progress(e.snapshot(level))
	}
	if e.opts.Logger != nil {
		s := e.snapshot(level)
		e.opts.Logger.WithFields(map[string]interface{}{
			"level":    s.Level,
			"explored": s.Explored,
			"skipped":  s.Skipped,
			"pool":     s.Pool,
		}).Debug("level complete")
	}
}

// a cand is one evaluated combination, buffered by worker shards so
// that inserts happen serially in generation order.
type cand struct {
	bits  tt.Vec
	gi    int
	ins   []ID
	level int
}

// genLevel produces all new signals of the given level.  Candidates
// combine eligible pool signals, at least one from the newest level;
// older-only combinations were already tried in a previous pass.
func (e *engine) genLevel(ctx context.Context, level int) error {
	ids := e.pool.eligible()
	for gi := 0; gi < e.lib.Len(); gi++ {
		k := e.lib.At(gi).Arity
		if e.opts.Workers > 1 {
			if err := e.genGatePar(ctx, level, gi, k, ids); err != nil {
				return err
			}
			continue
		}
		sel := make([]ID, k)
		args := make([]uint64, k)
		if err := e.combos(ctx, ids, sel, 0, 0, func() {
			e.tryCombo(level, gi, sel, args, e.insertNow)
		}); err != nil {
			return err
		}
	}
	e.pool.trimLevel(level)
	e.emit(level)
	return nil
}

// combos enumerates nondecreasing selections of ids into sel,
// checking ctx between outermost iterations.
func (e *engine) combos(ctx context.Context, ids []ID, sel []ID, pos, from int, f func()) error {
	if pos == len(sel) {
		f()
		return nil
	}
	for i := from; i < len(ids); i++ {
		if pos == 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
		sel[pos] = ids[i]
		if err := e.combos(ctx, ids, sel, pos+1, i, f); err != nil {
			return err
		}
	}
	return nil
}

// tryCombo prunes, evaluates, and hands off one combination.  sink
// either inserts directly (serial) or buffers (parallel shards).
func (e *engine) tryCombo(level, gi int, sel []ID, args []uint64, sink func(cand)) {
	newest := false
	for _, id := range sel {
		if e.pool.At(id).Level == level-1 {
			newest = true
			break
		}
	}
	if !newest {
		return
	}
	var pat [gate.MaxArity]int
	d := 0
	for j, id := range sel {
		if j > 0 && id == sel[j-1] {
			pat[j] = pat[j-1]
			continue
		}
		pat[j] = d
		d++
	}
	if !e.opts.DisablePrune && e.prune.shouldSkip(gi, pat[:len(sel)]) {
		atomic.AddUint64(&e.skipped, 1)
		return
	}
	n := atomic.AddUint64(&e.explored, 1)
	if e.opts.Workers == 1 && e.opts.ProgressEvery > 0 && e.opts.Progress != nil && n%uint64(e.opts.ProgressEvery) == 0 {
		e.opts.Progress(e.snapshot(level))
	}
	g := e.lib.At(gi)
	nw := (e.rows + 63) / 64
	out := make([]uint64, nw)
	for w := 0; w < nw; w++ {
		for j, id := range sel {
			args[j] = e.pool.At(id).Bits.Words()[w]
		}
		out[w] = g.Fn(args[:len(sel)])
	}
	ins := make([]ID, len(sel))
	copy(ins, sel)
	sink(cand{bits: tt.FromWords(out, e.rows), gi: gi, ins: ins, level: level})
}

func (e *engine) insertNow(c cand) {
	id, isNew := e.pool.TryInsert(c.bits, c.gi, c.ins, c.level)
	if isNew {
		e.inserted++
	}
	if e.onCandidate != nil {
		e.onCandidate(c.bits, c.gi, c.ins, id, isNew)
	}
}

// genGatePar shards one gate's combination space over contiguous
// ranges of the first selection index.  Shards buffer their
// candidates; the merge inserts shard by shard in range order, so the
// pool contents match the serial pass bit for bit.
func (e *engine) genGatePar(ctx context.Context, level, gi, k int, ids []ID) error {
	w := e.opts.Workers
	if w > len(ids) {
		w = len(ids)
	}
	if w < 2 {
		sel := make([]ID, k)
		args := make([]uint64, k)
		return e.combos(ctx, ids, sel, 0, 0, func() {
			e.tryCombo(level, gi, sel, args, e.insertNow)
		})
	}
	bufs := make([][]cand, w)
	grp, gctx := errgroup.WithContext(ctx)
	per := (len(ids) + w - 1) / w
	for s := 0; s < w; s++ {
		s := s
		lo, hi := s*per, (s+1)*per
		if hi > len(ids) {
			hi = len(ids)
		}
		grp.Go(func() error {
			sel := make([]ID, k)
			args := make([]uint64, k)
			for i := lo; i < hi; i++ {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				sel[0] = ids[i]
				err := e.combos(gctx, ids, sel, 1, i, func() {
					e.tryCombo(level, gi, sel, args, func(c cand) {
						bufs[s] = append(bufs[s], c)
					})
				})
				if err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}
	for _, buf := range bufs {
		for _, c := range buf {
			e.insertNow(c)
		}
	}
	return nil
}
