// Copyright 2026 The Tabsyn Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package tt implements truth table columns as packed bit vectors.
//
// A tt.Vec holds one output value per input row of a truth table over
// some fixed set of binary variables.  Vecs are the identity keys of
// the synthesis search: two signals are the same signal exactly when
// their Vecs are equal.
package tt
