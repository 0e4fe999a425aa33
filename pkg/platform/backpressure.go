package platform

import (
	"context"
	"sync/atomic"
)

// DropCounter is a wait-free counter of events dropped under backpressure,
// surfaced through the orchestrator's query interface.
type DropCounter struct {
	n atomic.Uint64
}

func (c *DropCounter) inc() { c.n.Add(1) }

// Load returns the number of drops recorded so far.
func (c *DropCounter) Load() uint64 { return c.n.Load() }

// DropOldest returns a bounded channel of capacity cap fed from src. When
// the bounded channel is full, the OLDEST queued event is discarded to make
// room for the new one rather than blocking the producer or discarding the
// new event: a momentarily stale first keystroke is preferable to
// head-of-line blocking on the input adapter's read loop. Every discard
// increments counter. The returned channel closes once src closes or ctx
// is canceled.
func DropOldest(ctx context.Context, src <-chan RawEvent, capacity int, counter *DropCounter) <-chan RawEvent {
	out := make(chan RawEvent, capacity)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-src:
				if !ok {
					return
				}
				for {
					select {
					case out <- ev:
					default:
						select {
						case <-out:
							counter.inc()
						default:
						}
						continue
					}
					break
				}
			}
		}
	}()
	return out
}
