package logship

import (
	"github.com/bft-labs/logship/pkg/log"
	"github.com/bft-labs/logship/pkg/transport"
)

// Re-export types from sub-packages for convenient access.
// Users can also import sub-packages directly for selective import.
type (
	// HTTPClient is the HTTP client interface from pkg/transport.
	HTTPClient = transport.HTTPClient

	// Transport is the delivery interface from pkg/transport.
	Transport = transport.Transport

	// Logger is the Logger interface from pkg/log.
	Logger = log.Logger

	// LogField is the Field type from pkg/log.
	LogField = log.Field
)

// Option configures optional behavior of a Shipper.
type Option func(*options)

// options holds the optional configuration for a Shipper instance.
type options struct {
	httpClient   HTTPClient
	transport    Transport
	logger       Logger
	eventHandler EventHandler
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() options {
	return options{
		logger: log.NewNoopLogger(),
	}
}

// WithHTTPClient sets a custom HTTP client for delivery.
// If not provided, a default client with the configured timeout is used.
// Ignored when WithTransport is also given.
func WithHTTPClient(client HTTPClient) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithTransport replaces the HTTP transport with a custom delivery
// mechanism. The shipper still serializes and compresses batches; only
// the final post goes through the given transport.
func WithTransport(tr Transport) Option {
	return func(o *options) {
		o.transport = tr
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithEventHandler sets a handler for shipper events.
// Events are called synchronously from the dispatch goroutine.
// If not provided, no events are emitted.
func WithEventHandler(handler EventHandler) Option {
	return func(o *options) {
		o.eventHandler = handler
	}
}
