package logship

import (
	"errors"

	"github.com/bft-labs/logship/pkg/event"
	"github.com/bft-labs/logship/pkg/transport"
)

// Errors returned by the public API. Check with errors.Is.
var (
	// ErrAlreadyRunning is returned when Start() is called on a running instance.
	ErrAlreadyRunning = errors.New("logship: already running")

	// ErrNotRunning is returned when Stop() or Enqueue() is called on a
	// stopped instance.
	ErrNotRunning = errors.New("logship: not running")

	// ErrShutdownTimeout is returned when graceful shutdown times out.
	ErrShutdownTimeout = errors.New("logship: shutdown timeout")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("logship: invalid configuration")

	// ErrQueueFull is returned by Enqueue when the event was dropped
	// because the queue is at capacity.
	ErrQueueFull = errors.New("logship: queue full")
)

// Classification sentinels for send failures, re-exported from the packages
// that produce them.
var (
	// ErrSerialization matches failures to represent an event as JSON.
	// The batch is never sent; nothing reaches the transport.
	ErrSerialization = event.ErrUnsupportedValue

	// ErrTransport matches delivery failures after serialization succeeded.
	ErrTransport = transport.ErrSendFailed
)
