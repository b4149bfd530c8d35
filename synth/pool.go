// Copyright 2026 The Tabsyn Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package synth

import (
	"sort"
	"strings"

	"github.com/irifrance/tabsyn/gate"
	"github.com/irifrance/tabsyn/tt"
)

// ID indexes a node in a Pool's arena.
type ID uint32

// Leaf marks a node with no producing gate.
const Leaf = -1

// A Node is one signal: a truth table column plus the gate
// application that produced it.  Nodes are immutable once created and
// reference their inputs by ID, never by copy, so shared substructure
// stays single-instanced.
type Node struct {
	Bits  tt.Vec
	Gate  int    // library index, or Leaf
	Ins   []ID   // empty for leaves
	Level int    // generation pass of first production, 0 for leaves
	Cost  int    // this node's own gate cost, 0 for leaves
	Name  string // leaf variable name
}

// IsLeaf tells whether n is an input variable.
func (n *Node) IsLeaf() bool {
	return n.Gate == Leaf
}

// A Pool is the deduplicated arena of all signals discovered during
// one search run.  At most one node exists per distinct column.  The
// arena is append-only; nodes are never mutated after insertion.
type Pool struct {
	lib     *gate.Lib
	nodes   []Node
	index   map[string]ID
	byLevel [][]ID
	retired map[ID]bool
	cap     int // per level retention cap, 0 = unbounded
}

// NewPool returns an empty pool drawing gate costs from lib.
// capPerLevel, when positive, bounds how many signals of each level
// remain eligible as gate inputs: the lowest own-cost, earliest
// discovered signals are kept.  This trades completeness for
// tractability at high levels.
func NewPool(lib *gate.Lib, capPerLevel int) *Pool {
	return &Pool{
		lib:     lib,
		nodes:   make([]Node, 0, 128),
		index:   make(map[string]ID, 128),
		byLevel: [][]ID{nil},
		retired: make(map[ID]bool),
		cap:     capPerLevel,
	}
}

// Len returns the number of pooled nodes, shadow nodes excluded.
func (p *Pool) Len() int {
	return len(p.index)
}

// At returns the node with the given id.
func (p *Pool) At(id ID) *Node {
	return &p.nodes[id]
}

// Lookup finds the pooled node with the given column.
func (p *Pool) Lookup(bits tt.Vec) (ID, bool) {
	id, ok := p.index[bits.Key()]
	return id, ok
}

// Level returns the ids first produced at level l, in discovery
// order.
func (p *Pool) Level(l int) []ID {
	if l >= len(p.byLevel) {
		return nil
	}
	return p.byLevel[l]
}

// Levels returns the number of generated levels, leaves included.
func (p *Pool) Levels() int {
	return len(p.byLevel)
}

// AddLeaf seeds an input variable at level 0.
func (p *Pool) AddLeaf(name string, bits tt.Vec) (ID, bool) {
	return p.insert(Node{Bits: bits, Gate: Leaf, Level: 0, Name: name})
}

// TryInsert offers a candidate column produced by gate gi over ins at
// the given level.  If the column is already pooled the existing id is
// returned with false; otherwise the candidate is inserted and
// returned with true.
func (p *Pool) TryInsert(bits tt.Vec, gi int, ins []ID, level int) (ID, bool) {
	return p.insert(Node{
		Bits:  bits,
		Gate:  gi,
		Ins:   ins,
		Level: level,
		Cost:  p.lib.At(gi).Cost,
	})
}

func (p *Pool) insert(n Node) (ID, bool) {
	k := n.Bits.Key()
	if id, ok := p.index[k]; ok {
		return id, false
	}
	id := ID(len(p.nodes))
	p.nodes = append(p.nodes, n)
	p.index[k] = id
	for n.Level >= len(p.byLevel) {
		p.byLevel = append(p.byLevel, nil)
	}
	p.byLevel[n.Level] = append(p.byLevel[n.Level], id)
	return id, true
}

// addShadow records an alternative production of an already pooled
// column.  The node joins the arena so it can be rendered and costed,
// but not the identity index or level partition, so it never feeds
// generation.
func (p *Pool) addShadow(bits tt.Vec, gi int, ins []ID, level int) ID {
	id := ID(len(p.nodes))
	p.nodes = append(p.nodes, Node{
		Bits:  bits,
		Gate:  gi,
		Ins:   ins,
		Level: level,
		Cost:  p.lib.At(gi).Cost,
	})
	return id
}

// trimLevel applies the retention cap to level l.  Trimmed nodes stay
// in the arena and the identity index, they just stop feeding further
// generation.  Leaves are seed signals and never subject to the cap.
func (p *Pool) trimLevel(l int) {
	if l == 0 || p.cap <= 0 || l >= len(p.byLevel) || len(p.byLevel[l]) <= p.cap {
		return
	}
	ids := make([]ID, len(p.byLevel[l]))
	copy(ids, p.byLevel[l])
	sort.SliceStable(ids, func(i, j int) bool {
		a, b := p.nodes[ids[i]].Cost, p.nodes[ids[j]].Cost
		if a != b {
			return a < b
		}
		return ids[i] < ids[j]
	})
	for _, id := range ids[p.cap:] {
		p.retired[id] = true
	}
	kept := make([]ID, 0, p.cap)
	for _, id := range p.byLevel[l] {
		if !p.retired[id] {
			kept = append(kept, id)
		}
	}
	p.byLevel[l] = kept
}

// eligible returns all ids usable as gate inputs, ascending.
func (p *Pool) eligible() []ID {
	ids := make([]ID, 0, p.Len())
	for _, lvl := range p.byLevel {
		ids = append(ids, lvl...)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Reach collects the ids reachable from roots through input edges,
// roots included, deduplicated.
func (p *Pool) Reach(roots ...ID) []ID {
	seen := make(map[ID]bool, len(roots)*4)
	var walk func(id ID)
	walk = func(id ID) {
		if seen[id] {
			return
		}
		seen[id] = true
		for _, in := range p.nodes[id].Ins {
			walk(in)
		}
	}
	for _, r := range roots {
		walk(r)
	}
	ids := make([]ID, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// CostOf returns the total cost of the circuit realizing roots: the
// sum of own costs over the unique nodes reachable from them.  A node
// shared by several roots counts once.
func (p *Pool) CostOf(roots ...ID) int {
	c := 0
	for _, id := range p.Reach(roots...) {
		c += p.nodes[id].Cost
	}
	return c
}

// Expr renders the origin graph of id as a gate expression, leaves by
// variable name, in the manner of NAND2(A, B).
func (p *Pool) Expr(id ID) string {
	var sb strings.Builder
	p.expr(&sb, id)
	return sb.String()
}

func (p *Pool) expr(sb *strings.Builder, id ID) {
	n := &p.nodes[id]
	if n.IsLeaf() {
		sb.WriteString(n.Name)
		return
	}
	sb.WriteString(p.lib.At(n.Gate).Name)
	sb.WriteByte('(')
	for i, in := range n.Ins {
		if i > 0 {
			sb.WriteString(", ")
		}
		p.expr(sb, in)
	}
	sb.WriteByte(')')
}

// Eval recomputes the column of id from its origin.  For leaves this
// is the stored column; for derived nodes the gate function is
// applied word-wise to the recomputed inputs.  Pool invariants make
// Eval(id) equal to At(id).Bits.
func (p *Pool) Eval(id ID) tt.Vec {
	n := &p.nodes[id]
	if n.IsLeaf() {
		return n.Bits
	}
	g := p.lib.At(n.Gate)
	nw := len(n.Bits.Words())
	out := make([]uint64, nw)
	args := make([]uint64, len(n.Ins))
	ins := make([]tt.Vec, len(n.Ins))
	for j, in := range n.Ins {
		ins[j] = p.Eval(in)
	}
	for w := 0; w < nw; w++ {
		for j := range ins {
			args[j] = ins[j].Words()[w]
		}
		out[w] = g.Fn(args)
	}
	return tt.FromWords(out, n.Bits.Len())
}
