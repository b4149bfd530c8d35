// Copyright 2026 The Tabsyn Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gate

import (
	"github.com/pkg/errors"
)

// MaxArity bounds gate fan-in.  Pruning probes every input assignment
// of a gate, which stays trivial while MaxArity is small.
const MaxArity = 4

// A Fn evaluates a gate over packed truth table words, one word per
// input, 64 rows per call.  Fns must be pure and bitwise: output bit i
// may depend only on bit i of each argument word.
type Fn func(ws []uint64) uint64

// A Gate describes one primitive logic operation.
type Gate struct {
	Name  string
	Arity int
	Cost  int
	Fn    Fn
}

// Probe returns the truth table of g over its own inputs, packed into
// the low 2**Arity bits of a word.  Row r assigns input j the bit
// (r >> (Arity-1-j)) & 1.
func (g *Gate) Probe() uint64 {
	rows := 1 << uint(g.Arity)
	args := make([]uint64, g.Arity)
	for j := 0; j < g.Arity; j++ {
		sh := uint(g.Arity - 1 - j)
		for r := 0; r < rows; r++ {
			args[j] |= uint64(r>>sh&1) << uint(r)
		}
	}
	return g.Fn(args) & (1<<uint(rows) - 1)
}

// A Lib is an immutable ordered collection of gates.  The engine
// iterates gates in library order, which fixes candidate generation
// order and hence search determinism.
type Lib struct {
	gates  []Gate
	byName map[string]int
}

// NewLib validates gs and returns them as a library.
func NewLib(gs ...Gate) (*Lib, error) {
	l := &Lib{
		gates:  make([]Gate, len(gs)),
		byName: make(map[string]int, len(gs)),
	}
	copy(l.gates, gs)
	for i := range l.gates {
		g := &l.gates[i]
		if g.Name == "" {
			return nil, errors.Errorf("gate %d: empty name", i)
		}
		if g.Arity < 1 || g.Arity > MaxArity {
			return nil, errors.Errorf("gate %s: arity %d out of range [1,%d]", g.Name, g.Arity, MaxArity)
		}
		if g.Cost < 0 {
			return nil, errors.Errorf("gate %s: negative cost %d", g.Name, g.Cost)
		}
		if g.Fn == nil {
			return nil, errors.Errorf("gate %s: nil evaluation function", g.Name)
		}
		if _, dup := l.byName[g.Name]; dup {
			return nil, errors.Errorf("gate %s: duplicate name", g.Name)
		}
		l.byName[g.Name] = i
	}
	return l, nil
}

// Len returns the number of gates.
func (l *Lib) Len() int {
	return len(l.gates)
}

// At returns the i'th gate.
func (l *Lib) At(i int) *Gate {
	return &l.gates[i]
}

// ByName looks a gate up by name.
func (l *Lib) ByName(name string) (*Gate, bool) {
	i, ok := l.byName[name]
	if !ok {
		return nil, false
	}
	return &l.gates[i], true
}

// MaxCost returns the largest gate cost in l, 0 for an empty library.
func (l *Lib) MaxCost() int {
	c := 0
	for i := range l.gates {
		if l.gates[i].Cost > c {
			c = l.gates[i].Cost
		}
	}
	return c
}
