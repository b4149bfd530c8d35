// Copyright 2026 The Tabsyn Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package gate defines the primitive gate descriptors the synthesis
// engine draws from: a name, an input arity, a cost, and a bitwise
// evaluation function applied 64 truth table rows at a time.
package gate
