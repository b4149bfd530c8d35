// Copyright 2026 The Tabsyn Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package tt

import "testing"

func TestVecGetSet(t *testing.T) {
	v := MakeVec(130)
	for i := 0; i < 130; i += 3 {
		v.Set(i, true)
	}
	for i := 0; i < 130; i++ {
		if v.Get(i) != (i%3 == 0) {
			t.Errorf("row %d", i)
		}
	}
	v.Set(129, false)
	if v.Get(129) {
		t.Errorf("clear row 129")
	}
}

func TestVecEqualKey(t *testing.T) {
	a := FromInts([]int{0, 1, 1, 0})
	b := FromBools([]bool{false, true, true, false})
	c := FromInts([]int{0, 1, 1, 1})
	if !a.Equal(b) {
		t.Errorf("equal vecs not equal")
	}
	if a.Equal(c) {
		t.Errorf("unequal vecs equal")
	}
	if a.Key() != b.Key() {
		t.Errorf("keys differ for equal vecs")
	}
	if a.Key() == c.Key() {
		t.Errorf("keys collide")
	}
	if a.Key() == MakeVec(68).Key() {
		t.Errorf("length not part of key")
	}
}

func TestVecWordsMasked(t *testing.T) {
	v := FromWords([]uint64{^uint64(0)}, 4)
	if v.Ones() != 4 {
		t.Errorf("got %d ones, want 4", v.Ones())
	}
	if v.String() != "1111" {
		t.Errorf("got %q", v.String())
	}
}

func TestVar(t *testing.T) {
	// 2 variables: A = 0011, B = 0101 in row order 00,01,10,11.
	a, b := Var(0, 2), Var(1, 2)
	if a.String() != "0011" {
		t.Errorf("A = %s", a)
	}
	if b.String() != "0101" {
		t.Errorf("B = %s", b)
	}
}

func TestInputs(t *testing.T) {
	m := Inputs([]string{"A", "B", "C"})
	if len(m) != 3 {
		t.Fatalf("got %d columns", len(m))
	}
	for name, v := range m {
		if v.Len() != 8 {
			t.Errorf("%s: %d rows", name, v.Len())
		}
	}
	if m["A"].Ones() != 4 || !m["A"].Get(7) || m["A"].Get(0) {
		t.Errorf("A = %s", m["A"])
	}
	if m["C"].String() != "01010101" {
		t.Errorf("C = %s", m["C"])
	}
}
