// Copyright 2026 The Tabsyn Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package synth

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Options configures a search run.  The zero value is usable; Search
// and SearchMulti fill in defaults.
type Options struct {
	// MaxComplexity is the hard ceiling on generation levels.
	MaxComplexity int

	// PoolCapPerLevel, when positive, caps how many signals per
	// level remain eligible as gate inputs (see NewPool).  Lossy.
	PoolCapPerLevel int

	// ContinueLevels is how many extra levels SearchMulti keeps
	// generating after all targets first become reachable, hunting
	// for cheaper shared realizations.  Ignored by Search.
	ContinueLevels int

	// MaxAltPerTarget caps the recorded alternative realizations
	// per target in SearchMulti; the lowest cost ones are kept.
	MaxAltPerTarget int

	// Workers shards combination evaluation within a level.  Results
	// are merged in shard order, so any value yields bit-identical
	// pools.  Values below 2 mean serial.
	Workers int

	// Progress, when set, receives telemetry snapshots: always at
	// each level end, and additionally every ProgressEvery explored
	// candidates when ProgressEvery is positive and Workers is 1.
	Progress      func(Snapshot)
	ProgressEvery int

	// Logger, when set, receives per level debug output.
	Logger logrus.FieldLogger

	// DisablePrune turns the pruning pre-filter off.  Pruning only
	// removes redundant productions, never columns, so this changes
	// the work done but not the pool; it exists for diagnostics.
	DisablePrune bool
}

func (o *Options) defaults() {
	if o.MaxComplexity <= 0 {
		o.MaxComplexity = 8
	}
	if o.MaxAltPerTarget <= 0 {
		o.MaxAltPerTarget = 16
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
}

// A Snapshot is one telemetry reading of a running search.
type Snapshot struct {
	Level    int
	Explored uint64 // candidate combinations evaluated
	Skipped  uint64 // combinations discarded by pruning
	Inserted uint64 // new signals pooled
	Pool     int    // pooled signals so far
	Elapsed  time.Duration
}

// State is a driver outcome.
type State int

const (
	// Found means a signal matching the target column exists.
	Found State = iota
	// Exhausted means the complexity ceiling was reached without a
	// match.  It is a normal terminal outcome, not an error.
	Exhausted
)

func (s State) String() string {
	switch s {
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	}
	return "invalid"
}
