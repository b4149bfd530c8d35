// Copyright 2026 The Tabsyn Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package tabsyn synthesizes combinational logic circuits from truth
// tables.  Given named input columns, one or more target output
// columns, and a gate library, it searches level by level for gate
// networks computing each target, sharing structure between outputs.
//
// The root package is a facade over the subpackages: tt holds packed
// truth table vectors, gate the primitive library, synth the search
// engine, gen a circuit expression generator and tabio the CSV table
// formats.
package tabsyn

import (
	"context"

	"github.com/irifrance/tabsyn/gate"
	"github.com/irifrance/tabsyn/synth"
	"github.com/irifrance/tabsyn/tt"
)

// Search finds a minimal-complexity circuit computing target from
// inputs using the standard gate library and default options.
func Search(ctx context.Context, inputs map[string]tt.Vec, target tt.Vec) (*synth.Result, error) {
	return synth.Search(ctx, inputs, target, gate.StdLib(), synth.Options{})
}

// SearchLib is Search with a caller-supplied gate library and options.
func SearchLib(ctx context.Context, inputs map[string]tt.Vec, target tt.Vec, lib *gate.Lib, opts synth.Options) (*synth.Result, error) {
	return synth.Search(ctx, inputs, target, lib, opts)
}

// SearchMulti finds circuits for every target column at once, reusing
// pool signals across outputs, with the standard library and default
// options.
func SearchMulti(ctx context.Context, inputs, targets map[string]tt.Vec) (*synth.MultiResult, error) {
	return synth.SearchMulti(ctx, inputs, targets, gate.StdLib(), synth.Options{})
}

// SearchMultiLib is SearchMulti with a caller-supplied gate library
// and options.
func SearchMultiLib(ctx context.Context, inputs, targets map[string]tt.Vec, lib *gate.Lib, opts synth.Options) (*synth.MultiResult, error) {
	return synth.SearchMulti(ctx, inputs, targets, lib, opts)
}
