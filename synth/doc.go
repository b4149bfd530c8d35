// Copyright 2026 The Tabsyn Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package synth implements combinational circuit synthesis by
// breadth-first search over truth table columns.
//
// The search keeps a pool of signals, each a distinct truth table
// column together with the gate application that first produced it.
// Level by level, every gate in the library is applied to every
// arity-sized combination (with repetition) of pooled signals; new
// columns enter the pool, duplicates are discarded.  Search ends when
// the target column appears or a complexity ceiling is reached.
//
// SearchMulti realizes several target columns from one shared pool.
// It keeps searching past the first full match so that later signals
// can realize several outputs through shared structure, then picks the
// recorded realizations whose unique-gate union costs least.  The
// selection considers only realizations discovered during the run: it
// is a best effort minimizer, not a proof of global minimality.
package synth
