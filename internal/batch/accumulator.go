package batch

import (
	"time"

	"github.com/bft-labs/logship/pkg/event"
)

// Accumulator collects events until a batch is ready to be sent.
// It tracks the event-count cap and the flush interval. It is not safe for
// concurrent use; the dispatcher serializes access to it.
type Accumulator struct {
	events       []*event.Event
	maxBatchSize int
	flushEvery   time.Duration
	lastFlush    time.Time
}

// NewAccumulator creates an accumulator with the given limits.
// maxBatchSize caps the number of events per batch; zero means no cap.
func NewAccumulator(maxBatchSize int, flushEvery time.Duration) *Accumulator {
	return &Accumulator{
		maxBatchSize: maxBatchSize,
		flushEvery:   flushEvery,
		lastFlush:    time.Now(),
	}
}

// Add appends an event and reports whether the batch reached its size cap.
func (a *Accumulator) Add(e *event.Event) bool {
	a.events = append(a.events, e)
	return a.maxBatchSize > 0 && len(a.events) >= a.maxBatchSize
}

// ShouldFlush reports whether the flush interval elapsed with events pending.
func (a *Accumulator) ShouldFlush() bool {
	if len(a.events) == 0 {
		return false
	}
	return time.Since(a.lastFlush) >= a.flushEvery
}

// Take drains the pending events into a batch and restarts the flush clock.
func (a *Accumulator) Take() *event.Batch {
	b := event.NewBatch(a.events...)
	a.events = a.events[:0]
	a.lastFlush = time.Now()
	return b
}

// HasPending returns true if there are events waiting to be sent.
func (a *Accumulator) HasPending() bool {
	return len(a.events) > 0
}

// Pending returns the number of events waiting to be sent.
func (a *Accumulator) Pending() int {
	return len(a.events)
}

// SetMaxBatchSize updates the event-count cap for subsequent batches.
func (a *Accumulator) SetMaxBatchSize(n int) {
	a.maxBatchSize = n
}
