// Copyright 2026 The Tabsyn Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package tt

import (
	"fmt"
	"math/bits"
	"strings"
)

// Vec is a truth table column: one boolean per input row, packed 64
// rows per word.  Row i lives at bit i&63 of word i>>6.  Bits at and
// beyond Len() are kept zero so that word-wise comparison and hashing
// are exact.
type Vec struct {
	n  int
	ws []uint64
}

// MakeVec returns an all-zero Vec of n rows.
func MakeVec(n int) Vec {
	return Vec{n: n, ws: make([]uint64, (n+63)/64)}
}

// FromBools builds a Vec from a slice of row values.
func FromBools(vs []bool) Vec {
	v := MakeVec(len(vs))
	for i, b := range vs {
		if b {
			v.ws[i>>6] |= 1 << uint(i&63)
		}
	}
	return v
}

// FromInts builds a Vec from 0/1 row values.  Any non-zero value
// counts as 1.
func FromInts(vs []int) Vec {
	v := MakeVec(len(vs))
	for i, d := range vs {
		if d != 0 {
			v.ws[i>>6] |= 1 << uint(i&63)
		}
	}
	return v
}

// FromWords builds an n row Vec from packed words, masking any bits
// beyond row n-1.
func FromWords(ws []uint64, n int) Vec {
	v := Vec{n: n, ws: make([]uint64, (n+63)/64)}
	copy(v.ws, ws)
	v.mask()
	return v
}

func (v Vec) mask() {
	if r := uint(v.n & 63); r != 0 && len(v.ws) > 0 {
		v.ws[len(v.ws)-1] &= (1 << r) - 1
	}
}

// Len returns the number of rows.
func (v Vec) Len() int {
	return v.n
}

// Get returns the value at row i.
func (v Vec) Get(i int) bool {
	return v.ws[i>>6]&(1<<uint(i&63)) != 0
}

// Set sets the value at row i.
func (v Vec) Set(i int, b bool) {
	if b {
		v.ws[i>>6] |= 1 << uint(i&63)
		return
	}
	v.ws[i>>6] &^= 1 << uint(i&63)
}

// Words exposes the packed words of v.  The slice must be treated as
// read-only; bits at and beyond Len() are zero.
func (v Vec) Words() []uint64 {
	return v.ws
}

// Equal tests row-wise equality.  Vecs of different lengths are never
// equal.
func (v Vec) Equal(o Vec) bool {
	if v.n != o.n {
		return false
	}
	for i, w := range v.ws {
		if w != o.ws[i] {
			return false
		}
	}
	return true
}

// Key returns a string usable as a map key with the same identity as
// Equal.
func (v Vec) Key() string {
	var sb strings.Builder
	sb.Grow(len(v.ws)*8 + 4)
	fmt.Fprintf(&sb, "%d:", v.n)
	for _, w := range v.ws {
		sb.WriteByte(byte(w))
		sb.WriteByte(byte(w >> 8))
		sb.WriteByte(byte(w >> 16))
		sb.WriteByte(byte(w >> 24))
		sb.WriteByte(byte(w >> 32))
		sb.WriteByte(byte(w >> 40))
		sb.WriteByte(byte(w >> 48))
		sb.WriteByte(byte(w >> 56))
	}
	return sb.String()
}

// Ones returns the number of rows set to 1.
func (v Vec) Ones() int {
	n := 0
	for _, w := range v.ws {
		n += bits.OnesCount64(w)
	}
	return n
}

// String renders v as a 0/1 string, row 0 first.
func (v Vec) String() string {
	var sb strings.Builder
	sb.Grow(v.n)
	for i := 0; i < v.n; i++ {
		if v.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Ints returns the rows of v as 0/1 ints.
func (v Vec) Ints() []int {
	ds := make([]int, v.n)
	for i := range ds {
		if v.Get(i) {
			ds[i] = 1
		}
	}
	return ds
}
