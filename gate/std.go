// Copyright 2026 The Tabsyn Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gate

// Std returns the standard gate family with unit costs.  Loaders
// resolve configured gate tables against these definitions and
// override the costs.
func Std() []Gate {
	return []Gate{
		{Name: "NOT", Arity: 1, Cost: 1, Fn: func(ws []uint64) uint64 { return ^ws[0] }},
		{Name: "AND2", Arity: 2, Cost: 1, Fn: func(ws []uint64) uint64 { return ws[0] & ws[1] }},
		{Name: "OR2", Arity: 2, Cost: 1, Fn: func(ws []uint64) uint64 { return ws[0] | ws[1] }},
		{Name: "NOR2", Arity: 2, Cost: 1, Fn: func(ws []uint64) uint64 { return ^(ws[0] | ws[1]) }},
		{Name: "NAND2", Arity: 2, Cost: 1, Fn: func(ws []uint64) uint64 { return ^(ws[0] & ws[1]) }},
		{Name: "XOR2", Arity: 2, Cost: 1, Fn: func(ws []uint64) uint64 { return ws[0] ^ ws[1] }},
		{Name: "XNOR2", Arity: 2, Cost: 1, Fn: func(ws []uint64) uint64 { return ^(ws[0] ^ ws[1]) }},
		{Name: "AND3", Arity: 3, Cost: 1, Fn: func(ws []uint64) uint64 { return ws[0] & ws[1] & ws[2] }},
		{Name: "OR3", Arity: 3, Cost: 1, Fn: func(ws []uint64) uint64 { return ws[0] | ws[1] | ws[2] }},
		{Name: "NAND3", Arity: 3, Cost: 1, Fn: func(ws []uint64) uint64 { return ^(ws[0] & ws[1] & ws[2]) }},
		{Name: "NOR3", Arity: 3, Cost: 1, Fn: func(ws []uint64) uint64 { return ^(ws[0] | ws[1] | ws[2]) }},
		{Name: "AND4", Arity: 4, Cost: 1, Fn: func(ws []uint64) uint64 { return ws[0] & ws[1] & ws[2] & ws[3] }},
		{Name: "OR4", Arity: 4, Cost: 1, Fn: func(ws []uint64) uint64 { return ws[0] | ws[1] | ws[2] | ws[3] }},
		{Name: "NAND4", Arity: 4, Cost: 1, Fn: func(ws []uint64) uint64 { return ^(ws[0] & ws[1] & ws[2] & ws[3]) }},
		{Name: "NOR4", Arity: 4, Cost: 1, Fn: func(ws []uint64) uint64 { return ^(ws[0] | ws[1] | ws[2] | ws[3]) }},
	}
}

// StdLib returns Std as a library.
func StdLib() *Lib {
	l, err := NewLib(Std()...)
	if err != nil {
		panic(err)
	}
	return l
}
