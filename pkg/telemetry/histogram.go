package telemetry

import (
	"math"
	"sort"
	"sync"
)

// Histogram tracks the distribution of values across predefined buckets.
// Safe for concurrent use.
type Histogram struct {
	mu      sync.RWMutex
	buckets []float64 // Upper bounds (inclusive)
	counts  []uint64  // Count per bucket
	sum     float64
	count   uint64
	min     float64
	max     float64
}

// NewHistogram creates a histogram with the given bucket boundaries, which
// need not already be sorted.
func NewHistogram(buckets []float64) *Histogram {
	b := make([]float64, len(buckets))
	copy(b, buckets)
	sort.Float64s(b)

	return &Histogram{
		buckets: b,
		counts:  make([]uint64, len(b)+1), // +1 for the overflow bucket
		min:     math.MaxFloat64,
		max:     -math.MaxFloat64,
	}
}

// Observe records a value in the histogram.
func (h *Histogram) Observe(v float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	idx := sort.SearchFloat64s(h.buckets, v)
	h.counts[idx]++

	h.sum += v
	h.count++
	if v < h.min {
		h.min = v
	}
	if v > h.max {
		h.max = v
	}
}

// HistogramSummary is a point-in-time summary of a Histogram.
type HistogramSummary struct {
	Count       uint64
	Sum         float64
	Min         float64
	Max         float64
	Mean        float64
	Buckets     []BucketCount
	Percentiles map[float64]float64
}

// BucketCount is a cumulative histogram bucket.
type BucketCount struct {
	UpperBound float64
	Count      uint64
}

// Summary returns a summary of the histogram's current state.
func (h *Histogram) Summary() HistogramSummary {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.count == 0 {
		return HistogramSummary{
			Buckets:     make([]BucketCount, 0),
			Percentiles: make(map[float64]float64),
		}
	}

	buckets := make([]BucketCount, len(h.buckets)+1)
	var cumulative uint64
	for i, bound := range h.buckets {
		cumulative += h.counts[i]
		buckets[i] = BucketCount{UpperBound: bound, Count: cumulative}
	}
	cumulative += h.counts[len(h.buckets)]
	buckets[len(h.buckets)] = BucketCount{UpperBound: math.Inf(1), Count: cumulative}

	return HistogramSummary{
		Count:       h.count,
		Sum:         h.sum,
		Min:         h.min,
		Max:         h.max,
		Mean:        h.sum / float64(h.count),
		Buckets:     buckets,
		Percentiles: h.calculatePercentiles([]float64{0.5, 0.9, 0.95, 0.99}),
	}
}

// calculatePercentiles estimates percentiles from bucket boundaries via
// linear interpolation between them.
func (h *Histogram) calculatePercentiles(ps []float64) map[float64]float64 {
	result := make(map[float64]float64, len(ps))
	if h.count == 0 {
		return result
	}

	for _, p := range ps {
		rank := p * float64(h.count)
		var cumulative uint64

	scan:
		for i, c := range h.counts {
			cumulative += c
			if float64(cumulative) >= rank {
				switch {
				case i == 0:
					result[p] = h.buckets[0] / 2
				case i >= len(h.buckets):
					result[p] = h.max
				default:
					lower := h.buckets[i-1]
					upper := h.buckets[i]
					prevCumulative := cumulative - c
					fraction := (rank - float64(prevCumulative)) / float64(c)
					result[p] = lower + fraction*(upper-lower)
				}
				break scan
			}
		}
	}

	return result
}

// Reset clears all histogram data.
func (h *Histogram) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i := range h.counts {
		h.counts[i] = 0
	}
	h.sum = 0
	h.count = 0
	h.min = math.MaxFloat64
	h.max = -math.MaxFloat64
}

// Count returns the total number of observations.
func (h *Histogram) Count() uint64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.count
}

// Mean returns the mean of all observations, or 0 if none were recorded.
func (h *Histogram) Mean() float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.count == 0 {
		return 0
	}
	return h.sum / float64(h.count)
}
