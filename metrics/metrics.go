// Copyright 2026 The Tabsyn Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package metrics exports Prometheus instrumentation for synthesis
// runs.  An Observer translates synth progress snapshots, whose
// counters are cumulative per run, into monotonic metric updates.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/irifrance/tabsyn/synth"
)

var (
	exploredTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tabsyn_signals_explored_total",
			Help: "Monotonic count of candidate signals evaluated",
		},
	)

	prunedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tabsyn_signals_pruned_total",
			Help: "Monotonic count of candidate signals skipped by pruning",
		},
	)

	insertedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tabsyn_signals_inserted_total",
			Help: "Monotonic count of novel signals added to the pool",
		},
	)

	poolSignals = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "tabsyn_pool_signals",
			Help: "Number of distinct signals in the pool",
		},
	)

	searchLevel = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "tabsyn_search_level",
			Help: "Complexity level the search last completed",
		},
	)

	searchSeconds = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "tabsyn_search_seconds",
			Help: "Elapsed wall time of the current search",
		},
	)
)

// Register registers all tabsyn collectors with r.
func Register(r prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		exploredTotal,
		prunedTotal,
		insertedTotal,
		poolSignals,
		searchLevel,
		searchSeconds,
	} {
		if err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// An Observer feeds progress snapshots into the registered metrics.
// Snapshot counters are cumulative within one run, so the observer
// remembers the previous snapshot and adds deltas.  Safe for use by
// one search at a time.
type Observer struct {
	mu   sync.Mutex
	last synth.Snapshot
}

// NewObserver returns an Observer with no prior snapshot.
func NewObserver() *Observer {
	return &Observer{}
}

// Observe records s.  Pass it as Options.Progress.
func (o *Observer) Observe(s synth.Snapshot) {
	o.mu.Lock()
	defer o.mu.Unlock()
	exploredTotal.Add(float64(s.Explored - o.last.Explored))
	prunedTotal.Add(float64(s.Skipped - o.last.Skipped))
	insertedTotal.Add(float64(s.Inserted - o.last.Inserted))
	poolSignals.Set(float64(s.Pool))
	searchLevel.Set(float64(s.Level))
	searchSeconds.Set(s.Elapsed.Seconds())
	o.last = s
}

// Reset clears the remembered snapshot so a new run's cumulative
// counters start from zero again.
func (o *Observer) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.last = synth.Snapshot{}
}
