package event

// Batch is an ordered collection of events delivered in one transfer.
// A batch exists only for the duration of a single send call; it has
// no identity of its own and is never buffered or retried by the
// sender. Events are held by reference and never copied or modified.
type Batch struct {
	events []*Event
}

// NewBatch creates a batch over the given events, in the given order.
func NewBatch(events ...*Event) *Batch {
	return &Batch{events: append([]*Event(nil), events...)}
}

// Append adds an event to the end of the batch.
func (b *Batch) Append(ev *Event) {
	b.events = append(b.events, ev)
}

// Events returns the events in order. The returned slice is shared
// with the batch and must not be modified.
func (b *Batch) Events() []*Event {
	return b.events
}

// Len returns the number of events in the batch.
func (b *Batch) Len() int {
	return len(b.events)
}

// Empty reports whether the batch has no events.
func (b *Batch) Empty() bool {
	return len(b.events) == 0
}
