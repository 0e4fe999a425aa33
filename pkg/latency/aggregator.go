package latency

import (
	"sort"
	"sync"
)

// Snapshot is a point-in-time latency statistics summary, microseconds
// throughout.
type Snapshot struct {
	Min         uint64
	Avg         uint64
	Max         uint64
	P95         uint64
	P99         uint64
	SampleCount int
}

// Aggregator computes Snapshot on demand from a Recorder's current
// contents. It is the only piece of this package that takes a lock, since
// sorting a few thousand samples is cheap enough to do off the hot path
// but not cheap enough to do lock-free.
type Aggregator struct {
	mu sync.Mutex
}

// NewAggregator builds an aggregator.
func NewAggregator() *Aggregator { return &Aggregator{} }

// Compute reads every currently valid sample out of r and returns their
// statistics. It does not mutate r.
func (a *Aggregator) Compute(r *Recorder) Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	samples := r.snapshotRaw()
	if len(samples) == 0 {
		return Snapshot{}
	}

	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })

	var sum uint64
	for _, s := range samples {
		sum += s
	}

	return Snapshot{
		Min:         samples[0],
		Avg:         sum / uint64(len(samples)),
		Max:         samples[len(samples)-1],
		P95:         percentile(samples, 0.95),
		P99:         percentile(samples, 0.99),
		SampleCount: len(samples),
	}
}

// percentile returns the value at the given fraction into sorted ascending
// samples: the element at index frac*(len-1), truncated toward zero.
func percentile(sorted []uint64, frac float64) uint64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	idx := int(frac * float64(len(sorted)-1))
	return sorted[idx]
}
