package ports

import (
	"context"
	"io"

	"github.com/bft-labs/logship/pkg/event"
)

// EventSource produces log events for dispatch.
// Implementations read from files, sockets, or any other origin.
type EventSource interface {
	// Next returns the next event.
	// Blocks until an event arrives, the source is drained, or the context
	// is canceled. Returns io.EOF when no more events will be produced.
	Next(ctx context.Context) (*event.Event, error)

	// Close releases all resources held by the source.
	Close() error
}

// ErrSourceDrained indicates that the source has no more events.
var ErrSourceDrained = io.EOF
