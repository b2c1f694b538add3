package logship

import "time"

// State represents the lifecycle state of a Shipper.
type State int

const (
	StateStopped State = iota
	StateStarting
	StateRunning
	StateStopping
	StateCrashed
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StateStarting:
		return "Starting"
	case StateRunning:
		return "Running"
	case StateStopping:
		return "Stopping"
	case StateCrashed:
		return "Crashed"
	default:
		return "Unknown"
	}
}

// Status is a point-in-time snapshot of a Shipper.
type Status struct {
	// State is the current lifecycle state.
	State State

	// QueueDepth is the number of events waiting to be sent.
	QueueDepth int

	// DroppedEvents is the total number of events dropped because the
	// queue was full.
	DroppedEvents uint64
}

// StateChangeEvent describes a lifecycle transition.
type StateChangeEvent struct {
	Previous State
	Current  State
	Reason   string
}

// SendSuccessEvent describes a successfully delivered batch.
type SendSuccessEvent struct {
	// EventCount is the number of events in the batch.
	EventCount int

	// Attempts is how many delivery attempts were made, including the
	// successful one.
	Attempts int

	// Duration covers all attempts including backoff.
	Duration time.Duration
}

// SendErrorEvent describes a batch that was dropped after delivery failed.
type SendErrorEvent struct {
	// Error is the final error; classify it with errors.Is against
	// ErrSerialization and ErrTransport.
	Error error

	// EventCount is the number of events lost with the batch.
	EventCount int
}

// EventHandler receives notifications about shipper operations.
// Callbacks run synchronously on the dispatch goroutine and should return
// quickly to avoid blocking delivery.
type EventHandler interface {
	OnStateChange(event StateChangeEvent)
	OnSendSuccess(event SendSuccessEvent)
	OnSendError(event SendErrorEvent)
}

// BaseEventHandler provides no-op defaults for EventHandler.
// Embed it to implement only the callbacks you need.
type BaseEventHandler struct{}

func (BaseEventHandler) OnStateChange(StateChangeEvent) {}
func (BaseEventHandler) OnSendSuccess(SendSuccessEvent) {}
func (BaseEventHandler) OnSendError(SendErrorEvent)     {}
