// Copyright 2026 The Tabsyn Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/irifrance/tabsyn/synth"
)

func TestRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, Register(reg))
	require.Error(t, Register(reg), "double registration")
}

func TestObserverDeltas(t *testing.T) {
	obs := NewObserver()
	before := testutil.ToFloat64(exploredTotal)

	obs.Observe(synth.Snapshot{
		Level:    1,
		Explored: 10,
		Skipped:  4,
		Inserted: 3,
		Pool:     7,
		Elapsed:  time.Second,
	})
	obs.Observe(synth.Snapshot{
		Level:    2,
		Explored: 25,
		Skipped:  9,
		Inserted: 5,
		Pool:     11,
		Elapsed:  2 * time.Second,
	})

	require.Equal(t, 25.0, testutil.ToFloat64(exploredTotal)-before)
	require.Equal(t, 11.0, testutil.ToFloat64(poolSignals))
	require.Equal(t, 2.0, testutil.ToFloat64(searchLevel))
	require.Equal(t, 2.0, testutil.ToFloat64(searchSeconds))

	obs.Reset()
	obs.Observe(synth.Snapshot{Explored: 5, Pool: 2})
	require.Equal(t, 30.0, testutil.ToFloat64(exploredTotal)-before)
}
