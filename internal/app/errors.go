package app

import "errors"

// Errors surfaced by the application layer. The public facade maps these
// onto its own sentinels where appropriate.
var (
	// ErrInvalidTransition is returned for lifecycle transitions that are
	// not permitted from the current state.
	ErrInvalidTransition = errors.New("logship: invalid lifecycle transition")

	// ErrShutdownTimeout is returned when graceful shutdown times out.
	ErrShutdownTimeout = errors.New("logship: shutdown timeout")
)
