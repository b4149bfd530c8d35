// Copyright 2026 The Tabsyn Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package synth

import (
	"github.com/irifrance/tabsyn/gate"
)

// pruner skips gate applications that provably cannot put a new
// column in the pool.  The rules work on the gate's induced function
// over the combination's distinct inputs, probed from the gate's own
// truth table, so they depend only on the gate and the duplication
// pattern, never on which signals are combined:
//
//   - if the induced function is a projection onto one input, the
//     result equals a signal already pooled (AND2(x,x)=x,
//     AND3(x,x,x)=x, ...);
//   - if inputs repeat and the induced function equals a library gate
//     of the lower distinct arity, that gate produces the same column
//     in the same pass (AND3(x,x,y) when AND2 is available).
//
// Degenerate applications with novel results are kept: NAND2(x,x) is
// a negation and XOR2(x,x) the zero column, either of which may be
// unseen.  Disabling the pruner never changes pool content, only the
// work done to build it.
type pruner struct {
	lib    *gate.Lib
	probes []uint64
	cache  map[uint32]bool
}

func newPruner(lib *gate.Lib) *pruner {
	p := &pruner{
		lib:    lib,
		probes: make([]uint64, lib.Len()),
		cache:  make(map[uint32]bool),
	}
	for i := 0; i < lib.Len(); i++ {
		p.probes[i] = lib.At(i).Probe()
	}
	// Decisions depend only on (gate, pattern), and the pattern space
	// is tiny, so the cache is filled here and read-only afterwards:
	// worker shards share it without locking.
	pat := make([]int, 0, gate.MaxArity)
	for gi := 0; gi < lib.Len(); gi++ {
		p.fill(gi, lib.At(gi).Arity, append(pat, 0), 0)
	}
	return p
}

// fill enumerates the duplication patterns of arity k: nondecreasing
// sequences starting at 0 where each entry is at most one above the
// running maximum.
func (p *pruner) fill(gi, k int, pat []int, max int) {
	if len(pat) == k {
		p.cache[p.key(gi, pat)] = p.decide(gi, pat, max+1)
		return
	}
	for m := pat[len(pat)-1]; m <= max+1; m++ {
		nm := max
		if m > max {
			nm = m
		}
		p.fill(gi, k, append(pat, m), nm)
	}
}

// shouldSkip reports whether gate gi applied to the combination whose
// duplication pattern is pat can be skipped.  pat maps each argument
// position to the index of its distinct signal; combinations are
// nondecreasing, so pat is nondecreasing with pat[0] == 0.
func (p *pruner) shouldSkip(gi int, pat []int) bool {
	return p.cache[p.key(gi, pat)]
}

func (p *pruner) decide(gi int, pat []int, d int) bool {
	g := p.lib.At(gi)
	induced := p.induce(p.probes[gi], pat, g.Arity, d)
	for m := 0; m < d; m++ {
		if induced == projection(m, d) {
			return true
		}
	}
	if d == g.Arity {
		return false
	}
	for j := 0; j < p.lib.Len(); j++ {
		if j != gi && p.lib.At(j).Arity == d && p.probes[j] == induced {
			return true
		}
	}
	return false
}

// induce computes the truth table of gate probe under the duplication
// pattern, as a function of the d distinct inputs.
func (p *pruner) induce(probe uint64, pat []int, k, d int) uint64 {
	rows := 1 << uint(d)
	var out uint64
	for r := 0; r < rows; r++ {
		fr := 0
		for j := 0; j < k; j++ {
			fr = fr<<1 | r>>uint(d-1-pat[j])&1
		}
		out |= (probe >> uint(fr) & 1) << uint(r)
	}
	return out
}

// projection returns the truth table over d variables of variable m.
func projection(m, d int) uint64 {
	rows := 1 << uint(d)
	var out uint64
	for r := 0; r < rows; r++ {
		out |= uint64(r>>uint(d-1-m)&1) << uint(r)
	}
	return out
}

// key packs (gi, pat) into a cache key.  pat entries are below
// gate.MaxArity, so 3 bits each suffice.
func (p *pruner) key(gi int, pat []int) uint32 {
	k := uint32(gi)
	for _, m := range pat {
		k = k<<3 | uint32(m)
	}
	return k<<3 | uint32(len(pat))
}
