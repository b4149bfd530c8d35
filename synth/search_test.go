// Copyright 2026 The Tabsyn Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package synth

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/irifrance/tabsyn/gate"
	"github.com/irifrance/tabsyn/tt"
)

func stdCost(t *testing.T, costs map[string]int) *gate.Lib {
	t.Helper()
	gs := make([]gate.Gate, 0, len(costs))
	for _, g := range gate.Std() {
		if c, ok := costs[g.Name]; ok {
			g.Cost = c
			gs = append(gs, g)
		}
	}
	lib, err := gate.NewLib(gs...)
	require.NoError(t, err)
	return lib
}

func abInputs() map[string]tt.Vec {
	return tt.Inputs([]string{"A", "B"})
}

func TestSearchLeafMatch(t *testing.T) {
	lib := stdCost(t, map[string]int{"AND2": 2})
	r, err := Search(context.Background(), abInputs(), tt.Var(1, 2), lib, Options{})
	require.NoError(t, err)
	require.Equal(t, Found, r.State)
	require.Equal(t, 0, r.Level)
	require.Equal(t, 0, r.Cost)
	require.Equal(t, "B", r.Expr())
}

func TestSearchXorFromNand(t *testing.T) {
	lib := stdCost(t, map[string]int{"NAND2": 4})
	target := tt.FromInts([]int{0, 1, 1, 0})
	r, err := Search(context.Background(), abInputs(), target, lib, Options{MaxComplexity: 5})
	require.NoError(t, err)
	require.Equal(t, Found, r.State)
	require.LessOrEqual(t, r.Level, 5)
	require.True(t, r.Pool.Eval(r.ID).Equal(target), "evaluated output %s", r.Pool.Eval(r.ID))
	// XOR needs at least four NAND2s; ties at the matching level go
	// to discovery order, so the cost may exceed the minimum.
	require.GreaterOrEqual(t, r.Cost, 16)
	require.Zero(t, r.Cost%4)
}

func TestSearchExhausted(t *testing.T) {
	lib := stdCost(t, map[string]int{"AND2": 2})
	target := tt.FromInts([]int{1, 1, 1, 0})
	r, err := Search(context.Background(), abInputs(), target, lib, Options{MaxComplexity: 4})
	require.NoError(t, err)
	require.Equal(t, Exhausted, r.State)
	require.Equal(t, "", r.Expr())
}

func TestSearchConfigErrors(t *testing.T) {
	lib := stdCost(t, map[string]int{"AND2": 2})
	ctx := context.Background()
	// Target length mismatched to 2^numVars.
	_, err := Search(ctx, abInputs(), tt.FromInts([]int{0, 1, 1, 0, 1}), lib, Options{})
	require.Error(t, err)
	require.True(t, IsConfig(err), "err = %v", err)
	// Input rows not a full table.
	_, err = Search(ctx, map[string]tt.Vec{
		"A": tt.FromInts([]int{0, 1, 1}),
		"B": tt.FromInts([]int{1, 0, 1}),
	}, tt.FromInts([]int{0, 1, 1}), lib, Options{})
	require.True(t, IsConfig(err), "err = %v", err)
	// Misaligned input columns.
	_, err = Search(ctx, map[string]tt.Vec{
		"A": tt.FromInts([]int{0, 0, 1, 1}),
		"B": tt.FromInts([]int{0, 1}),
	}, tt.FromInts([]int{0, 1, 1, 0}), lib, Options{})
	require.True(t, IsConfig(err), "err = %v", err)
	// No inputs.
	_, err = Search(ctx, nil, tt.FromInts([]int{0}), lib, Options{})
	require.True(t, IsConfig(err), "err = %v", err)
	// Duplicate input columns.
	_, err = Search(ctx, map[string]tt.Vec{
		"A": tt.FromInts([]int{0, 0, 1, 1}),
		"B": tt.FromInts([]int{0, 0, 1, 1}),
	}, tt.FromInts([]int{0, 1, 1, 0}), lib, Options{})
	require.True(t, IsConfig(err), "err = %v", err)
}

// dump renders a pool as one line per node in arena order.
func dump(p *Pool) []string {
	ls := make([]string, 0, p.Len())
	for l := 0; l < p.Levels(); l++ {
		for _, id := range p.Level(l) {
			n := p.At(id)
			ls = append(ls, fmt.Sprintf("%d %s %s", n.Level, n.Bits, p.Expr(id)))
		}
	}
	return ls
}

func TestSearchDeterminism(t *testing.T) {
	lib := stdCost(t, map[string]int{"NAND2": 4, "AND2": 2, "OR2": 3})
	target := tt.FromInts([]int{0, 1, 1, 0, 1, 0, 0, 1})
	inputs := tt.Inputs([]string{"A", "B", "C"})
	r1, err := Search(context.Background(), inputs, target, lib, Options{MaxComplexity: 3})
	require.NoError(t, err)
	r2, err := Search(context.Background(), inputs, target, lib, Options{MaxComplexity: 3})
	require.NoError(t, err)
	if diff := cmp.Diff(dump(r1.Pool), dump(r2.Pool)); diff != "" {
		t.Errorf("pools differ between identical runs (-first +second):\n%s", diff)
	}
}

func TestSearchWorkersMatchSerial(t *testing.T) {
	lib := stdCost(t, map[string]int{"NAND2": 4, "OR2": 3})
	target := tt.FromInts([]int{0, 1, 1, 0, 1, 0, 0, 1})
	inputs := tt.Inputs([]string{"A", "B", "C"})
	serial, err := Search(context.Background(), inputs, target, lib, Options{MaxComplexity: 3})
	require.NoError(t, err)
	par, err := Search(context.Background(), inputs, target, lib, Options{MaxComplexity: 3, Workers: 4})
	require.NoError(t, err)
	require.Equal(t, serial.State, par.State)
	if diff := cmp.Diff(dump(serial.Pool), dump(par.Pool)); diff != "" {
		t.Errorf("parallel pool diverges from serial (-serial +parallel):\n%s", diff)
	}
}

func TestSearchSoundAndMonotonic(t *testing.T) {
	lib := stdCost(t, map[string]int{"NAND2": 4})
	target := tt.FromInts([]int{0, 1, 1, 0})
	r, err := Search(context.Background(), abInputs(), target, lib, Options{MaxComplexity: 4})
	require.NoError(t, err)
	p := r.Pool
	for l := 0; l < p.Levels(); l++ {
		for _, id := range p.Level(l) {
			n := p.At(id)
			require.True(t, p.Eval(id).Equal(n.Bits), "node %d: origin does not reproduce bits", id)
			if n.IsLeaf() {
				require.Equal(t, 0, n.Level)
				require.Equal(t, 0, n.Cost)
				continue
			}
			max := 0
			for _, in := range n.Ins {
				if il := p.At(in).Level; il > max {
					max = il
				}
			}
			require.Equal(t, max+1, n.Level, "node %d level", id)
		}
	}
}

func TestSearchPruneEquivalence(t *testing.T) {
	lib := stdCost(t, map[string]int{"NOT": 1, "AND2": 1, "OR2": 1, "AND3": 1})
	// Odd parity of three variables is out of reach in two levels,
	// so both runs generate both levels in full.
	target := tt.FromInts([]int{0, 1, 1, 0, 1, 0, 0, 1})
	inputs := tt.Inputs([]string{"A", "B", "C"})
	on, err := Search(context.Background(), inputs, target, lib, Options{MaxComplexity: 2})
	require.NoError(t, err)
	off, err := Search(context.Background(), inputs, target, lib, Options{MaxComplexity: 2, DisablePrune: true})
	require.NoError(t, err)
	require.Equal(t, Exhausted, on.State)
	require.Equal(t, Exhausted, off.State)
	if diff := cmp.Diff(dump(off.Pool), dump(on.Pool)); diff != "" {
		t.Errorf("pruning changed pool content (-off +on):\n%s", diff)
	}
	require.Greater(t, on.Stats.Skipped, uint64(0))
	require.Less(t, on.Stats.Explored, off.Stats.Explored)
}

func TestSearchProgress(t *testing.T) {
	lib := stdCost(t, map[string]int{"NAND2": 4})
	var snaps []Snapshot
	_, err := Search(context.Background(), abInputs(), tt.FromInts([]int{0, 1, 1, 0}), lib, Options{
		MaxComplexity: 3,
		Progress:      func(s Snapshot) { snaps = append(snaps, s) },
	})
	require.NoError(t, err)
	require.NotEmpty(t, snaps)
	last := snaps[len(snaps)-1]
	require.Greater(t, last.Explored, uint64(0))
	require.Greater(t, last.Pool, 0)
}

func TestSearchCanceled(t *testing.T) {
	lib := stdCost(t, map[string]int{"NAND2": 4})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Search(ctx, abInputs(), tt.FromInts([]int{0, 1, 1, 0}), lib, Options{MaxComplexity: 5})
	require.ErrorIs(t, err, context.Canceled)
}

func TestSearchPoolCap(t *testing.T) {
	lib := stdCost(t, map[string]int{"NAND2": 1, "NOR2": 2, "XOR2": 3})
	inputs := tt.Inputs([]string{"A", "B", "C"})
	target := tt.FromInts([]int{0, 1, 1, 0, 1, 0, 0, 1})
	r, err := Search(context.Background(), inputs, target, lib, Options{MaxComplexity: 3, PoolCapPerLevel: 3})
	require.NoError(t, err)
	p := r.Pool
	for l := 1; l < p.Levels(); l++ {
		require.LessOrEqual(t, len(p.Level(l)), 3, "level %d", l)
	}
}
