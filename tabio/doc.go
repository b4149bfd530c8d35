// Copyright 2026 The Tabsyn Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package tabio reads and writes the CSV tables at the engine
// boundary: truth table columns keyed by a header row, and gate
// library tables of name, arity, and cost.  Everything is validated
// here, before a search starts; the engine never sees malformed
// tables.
package tabio
