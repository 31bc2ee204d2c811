package telemetry

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	qerrors "github.com/envcrypt/envcrypt/internal/errors"
)

func isAuthenticationFailed(err error) bool  { return errors.Is(err, qerrors.ErrAuthenticationFailed) }
func isMalformedArtifact(err error) bool     { return errors.Is(err, qerrors.ErrMalformedArtifact) }
func isRandomSourceUnavailable(err error) bool {
	return errors.Is(err, qerrors.ErrRandomSourceUnavailable)
}

// Collector aggregates counters and latency histograms for seal/open
// operations. It never touches plaintext or key material: only counts,
// durations, and the coarse error kind of a failure.
type Collector struct {
	sealTotal  atomic.Uint64
	sealFailed atomic.Uint64
	openTotal  atomic.Uint64
	openFailed atomic.Uint64

	authFailures     atomic.Uint64
	malformedTotal   atomic.Uint64
	randomSourceFail atomic.Uint64

	sealLatency *Histogram
	openLatency *Histogram

	createdAt time.Time
	labels    Labels
}

// Labels represents key-value pairs for metric labeling.
type Labels map[string]string

// OperationLatencyBuckets are latency buckets in microseconds, sized for
// single-shot AEAD operations on typical .env-sized payloads.
var OperationLatencyBuckets = []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000, 25000}

// NewCollector creates a metrics collector with the given labels.
func NewCollector(labels Labels) *Collector {
	if labels == nil {
		labels = make(Labels)
	}
	return &Collector{
		sealLatency: NewHistogram(OperationLatencyBuckets),
		openLatency: NewHistogram(OperationLatencyBuckets),
		createdAt:   time.Now(),
		labels:      labels,
	}
}

// RecordSeal records the outcome and latency of one Seal call.
func (c *Collector) RecordSeal(d time.Duration, err error) {
	c.sealTotal.Add(1)
	c.sealLatency.Observe(float64(d.Microseconds()))
	if err != nil {
		c.sealFailed.Add(1)
		c.recordErrorKind(err)
	}
}

// RecordOpen records the outcome and latency of one Open call.
func (c *Collector) RecordOpen(d time.Duration, err error) {
	c.openTotal.Add(1)
	c.openLatency.Observe(float64(d.Microseconds()))
	if err != nil {
		c.openFailed.Add(1)
		c.recordErrorKind(err)
	}
}

func (c *Collector) recordErrorKind(err error) {
	switch {
	case isAuthenticationFailed(err):
		c.authFailures.Add(1)
	case isMalformedArtifact(err):
		c.malformedTotal.Add(1)
	case isRandomSourceUnavailable(err):
		c.randomSourceFail.Add(1)
	}
}

// Snapshot is a point-in-time view of all counters and histograms.
type Snapshot struct {
	Timestamp time.Time
	Uptime    time.Duration

	SealTotal  uint64
	SealFailed uint64
	OpenTotal  uint64
	OpenFailed uint64

	AuthFailures     uint64
	MalformedTotal   uint64
	RandomSourceFail uint64

	SealLatency HistogramSummary
	OpenLatency HistogramSummary

	Labels Labels
}

// Snapshot returns a point-in-time snapshot of the collector.
func (c *Collector) Snapshot() Snapshot {
	return Snapshot{
		Timestamp:        time.Now(),
		Uptime:           time.Since(c.createdAt),
		SealTotal:        c.sealTotal.Load(),
		SealFailed:       c.sealFailed.Load(),
		OpenTotal:        c.openTotal.Load(),
		OpenFailed:       c.openFailed.Load(),
		AuthFailures:     c.authFailures.Load(),
		MalformedTotal:   c.malformedTotal.Load(),
		RandomSourceFail: c.randomSourceFail.Load(),
		SealLatency:      c.sealLatency.Summary(),
		OpenLatency:      c.openLatency.Summary(),
		Labels:           c.labels,
	}
}

// Reset clears all counters and histograms. Intended for tests.
func (c *Collector) Reset() {
	c.sealTotal.Store(0)
	c.sealFailed.Store(0)
	c.openTotal.Store(0)
	c.openFailed.Store(0)
	c.authFailures.Store(0)
	c.malformedTotal.Store(0)
	c.randomSourceFail.Store(0)
	c.sealLatency.Reset()
	c.openLatency.Reset()
	c.createdAt = time.Now()
}

// --- Global Collector ---

var (
	globalCollector     *Collector
	globalCollectorOnce sync.Once
)

// GlobalCollector returns the process-wide metrics collector, creating it
// with default labels on first use.
func GlobalCollector() *Collector {
	globalCollectorOnce.Do(func() {
		globalCollector = NewCollector(Labels{"service": "envcrypt"})
	})
	return globalCollector
}

// SetGlobalCollector replaces the process-wide metrics collector. Callers
// should do this, if at all, before any Seal/Open calls are made.
func SetGlobalCollector(c *Collector) {
	globalCollectorOnce.Do(func() {})
	globalCollector = c
}
