// Copyright 2026 The Tabsyn Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package gen turns circuit expression files into truth tables: the
// inputs and targets a synthesis search starts from, or reference
// tables for checking a found circuit.
package gen
