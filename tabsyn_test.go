// Copyright 2026 The Tabsyn Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package tabsyn

import (
	"context"
	"testing"

	"github.com/irifrance/tabsyn/synth"
	"github.com/irifrance/tabsyn/tt"
)

func TestSearchXor(t *testing.T) {
	inputs := tt.Inputs([]string{"A", "B"})
	target := tt.FromInts([]int{0, 1, 1, 0})
	r, err := Search(context.Background(), inputs, target)
	if err != nil {
		t.Fatal(err)
	}
	if r.State != synth.Found {
		t.Fatalf("xor not found: %s", r.State)
	}
	if got := r.Expr(); got != "XOR2(A, B)" {
		t.Errorf("got %q", got)
	}
}

func TestSearchMultiFullAdder(t *testing.T) {
	inputs := tt.Inputs([]string{"A", "B", "Cin"})
	targets := map[string]tt.Vec{
		"Sum":  tt.FromInts([]int{0, 1, 1, 0, 1, 0, 0, 1}),
		"Cout": tt.FromInts([]int{0, 0, 0, 1, 0, 1, 1, 1}),
	}
	r, err := SearchMulti(context.Background(), inputs, targets)
	if err != nil {
		t.Fatal(err)
	}
	if !r.AllFound {
		t.Fatalf("full adder outputs not all found")
	}
	for name, want := range targets {
		got := r.Pool.Eval(r.Outputs[name].ID)
		if !got.Equal(want) {
			t.Errorf("%s: circuit computes %s, want %s", name, got, want)
		}
	}
	if r.TotalCost <= 0 {
		t.Errorf("total cost %d", r.TotalCost)
	}
}
