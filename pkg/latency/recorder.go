// Package latency records per-event processing time on the hot input path
// and aggregates it into query-facing statistics off that path.
package latency

import "sync/atomic"

const ringCapacity = 4096

// Recorder is a wait-free fixed-capacity ring buffer of recent sample
// microsecond durations. Record never allocates and never blocks, so it is
// safe to call from the same goroutine that dispatches key events.
type Recorder struct {
	samples [ringCapacity]uint64
	cursor  atomic.Uint64
}

// NewRecorder builds an empty recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Record stores one sample, overwriting the oldest entry once the ring is
// full.
func (r *Recorder) Record(us uint64) {
	idx := r.cursor.Add(1) - 1
	r.samples[idx%ringCapacity] = us
}

// snapshotRaw copies out the currently valid samples without sorting them.
// Sorting and percentile math live in Aggregator, which is the only thing
// that takes a lock; Record itself never does.
func (r *Recorder) snapshotRaw() []uint64 {
	cur := r.cursor.Load()
	n := cur
	if n > ringCapacity {
		n = ringCapacity
	}
	out := make([]uint64, n)
	for i := uint64(0); i < n; i++ {
		// Once the ring has wrapped, the oldest surviving sample sits right
		// after the write cursor; before that, everything from index 0 is
		// valid in write order.
		if cur <= ringCapacity {
			out[i] = r.samples[i]
		} else {
			out[i] = r.samples[(cur+i)%ringCapacity]
		}
	}
	return out
}
