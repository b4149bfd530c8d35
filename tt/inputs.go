// Copyright 2026 The Tabsyn Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package tt

// Rows gives the number of rows of a full truth table over k
// variables.
func Rows(k int) int {
	return 1 << uint(k)
}

// Var returns the canonical column of variable i of k.  Rows are
// ordered by the input combination read as a binary number, variable 0
// most significant: variable i of k carries bit (row >> (k-1-i)) & 1.
func Var(i, k int) Vec {
	n := Rows(k)
	v := MakeVec(n)
	sh := uint(k - 1 - i)
	for row := 0; row < n; row++ {
		if row>>sh&1 == 1 {
			v.Set(row, true)
		}
	}
	return v
}

// Inputs returns the canonical leaf columns for the named variables,
// in the order given.  Name order fixes the row ordering.
func Inputs(names []string) map[string]Vec {
	k := len(names)
	m := make(map[string]Vec, k)
	for i, name := range names {
		m[name] = Var(i, k)
	}
	return m
}
