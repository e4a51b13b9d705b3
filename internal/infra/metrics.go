package infra

import (
	"sync/atomic"
	"time"
)

// Metrics provides lightweight observability without external dependencies.
// Uses atomic operations for thread-safety.
type Metrics struct {
	// Counters
	requestsTotal   atomic.Uint64
	requestErrors   atomic.Uint64
	parseFailures   atomic.Uint64
	unknownStatuses atomic.Uint64

	// Latency tracking
	latencySumNs atomic.Int64
	latencyCount atomic.Uint64
}

// GlobalMetrics is the singleton metrics instance.
var GlobalMetrics = &Metrics{}

// RecordRequest records a completed HTTP request with latency.
func (m *Metrics) RecordRequest(latencyNs int64) {
	m.requestsTotal.Add(1)
	m.latencySumNs.Add(latencyNs)
	m.latencyCount.Add(1)
}

// RecordRequestError records a failed HTTP request.
func (m *Metrics) RecordRequestError() {
	m.requestErrors.Add(1)
}

// RecordParseFailure records a payload record that failed normalization.
func (m *Metrics) RecordParseFailure() {
	m.parseFailures.Add(1)
}

// RecordUnknownStatus records an upstream lifecycle state missing from the
// status tables. These pass through unchanged but are worth watching.
func (m *Metrics) RecordUnknownStatus() {
	m.unknownStatuses.Add(1)
}

// MetricsSnapshot is a point-in-time view of all metrics.
type MetricsSnapshot struct {
	RequestsTotal   uint64
	RequestErrors   uint64
	ParseFailures   uint64
	UnknownStatuses uint64
	AvgLatencyNs    int64
	Timestamp       time.Time
}

// Snapshot returns current metrics as a snapshot.
func (m *Metrics) Snapshot() MetricsSnapshot {
	var avgLatency int64
	count := m.latencyCount.Load()
	if count > 0 {
		avgLatency = m.latencySumNs.Load() / int64(count)
	}

	return MetricsSnapshot{
		RequestsTotal:   m.requestsTotal.Load(),
		RequestErrors:   m.requestErrors.Load(),
		ParseFailures:   m.parseFailures.Load(),
		UnknownStatuses: m.unknownStatuses.Load(),
		AvgLatencyNs:    avgLatency,
		Timestamp:       time.Now(),
	}
}

// Reset clears all metrics (for testing).
func (m *Metrics) Reset() {
	m.requestsTotal.Store(0)
	m.requestErrors.Store(0)
	m.parseFailures.Store(0)
	m.unknownStatuses.Store(0)
	m.latencySumNs.Store(0)
	m.latencyCount.Store(0)
}
