// Package logship batches structured log events into newline-delimited
// JSON and ships them to an HTTP ingest endpoint.
//
// Example usage:
//
//	cfg := logship.DefaultConfig()
//	cfg.IngestURL = "https://ingest.example.com/v1/logs"
//	s, err := logship.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := s.Start(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Stop()
//
//	s.Enqueue(event.New().Set("message", event.String("hey")))
//
// The full API lives in pkg/logship; this package re-exports the
// surface needed to embed the shipper.
package logship

import (
	"github.com/bft-labs/logship/pkg/event"
	shipper "github.com/bft-labs/logship/pkg/logship"
)

// Config holds the configuration for the shipper.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = shipper.Config

// Shipper batches enqueued events and ships them in the background.
type Shipper = shipper.Shipper

// Option customizes a Shipper at construction time.
type Option = shipper.Option

// Status is a point-in-time snapshot of the shipper.
type Status = shipper.Status

// Event is an ordered set of named fields shipped as one JSON line.
type Event = event.Event

// Batch is an ordered collection of events shipped in one payload.
type Batch = event.Batch

// New creates a Shipper with the given configuration.
func New(cfg Config, opts ...Option) (*Shipper, error) {
	return shipper.New(cfg, opts...)
}

// DefaultConfig returns a Config with sensible default values.
// At minimum, you must set IngestURL before calling New.
func DefaultConfig() Config {
	return shipper.DefaultConfig()
}

// NewEvent returns an empty event.
func NewEvent() *Event {
	return event.New()
}

// NewBatch builds a batch from the given events.
func NewBatch(events ...*Event) *Batch {
	return event.NewBatch(events...)
}
