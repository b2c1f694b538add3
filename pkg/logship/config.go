package logship

import (
	"fmt"
	"net/url"
	"time"
)

// Default configuration values.
const (
	DefaultMaxBatchSize  = 100
	DefaultFlushInterval = 2 * time.Second
	DefaultMaxRetries    = 3
	DefaultQueueCapacity = 1024
	DefaultHTTPTimeout   = 30 * time.Second
)

// Config holds the configuration for a Shipper.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config struct {
	// IngestURL is the address batches are posted to. Required.
	IngestURL string

	// UseCompression gzips payloads before posting.
	UseCompression bool

	// MaxBatchSize caps the number of events per batch.
	MaxBatchSize int

	// FlushInterval is how often pending events are flushed.
	FlushInterval time.Duration

	// MaxRetries is how many additional delivery attempts are made for a
	// failed batch before it is dropped. Zero means a single attempt.
	MaxRetries int

	// QueueCapacity bounds the number of events waiting for dispatch.
	// Enqueue drops events once the queue is full.
	QueueCapacity int

	// HTTPTimeout bounds each delivery attempt of the default HTTP client.
	HTTPTimeout time.Duration
}

// DefaultConfig returns a Config with default values.
// IngestURL must still be set before use.
func DefaultConfig() Config {
	return Config{
		MaxBatchSize:  DefaultMaxBatchSize,
		FlushInterval: DefaultFlushInterval,
		MaxRetries:    DefaultMaxRetries,
		QueueCapacity: DefaultQueueCapacity,
		HTTPTimeout:   DefaultHTTPTimeout,
	}
}

// SetDefaults fills in zero-valued fields with defaults.
// MaxRetries is left alone; zero is a valid setting.
func (c *Config) SetDefaults() {
	if c.MaxBatchSize == 0 {
		c.MaxBatchSize = DefaultMaxBatchSize
	}
	if c.FlushInterval == 0 {
		c.FlushInterval = DefaultFlushInterval
	}
	if c.QueueCapacity == 0 {
		c.QueueCapacity = DefaultQueueCapacity
	}
	if c.HTTPTimeout == 0 {
		c.HTTPTimeout = DefaultHTTPTimeout
	}
}

// Validate checks the configuration for errors.
// Returned errors wrap ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.IngestURL == "" {
		return fmt.Errorf("%w: ingest URL is required", ErrInvalidConfig)
	}
	u, err := url.Parse(c.IngestURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: ingest URL %q is not an absolute URL", ErrInvalidConfig, c.IngestURL)
	}
	if c.MaxBatchSize < 0 {
		return fmt.Errorf("%w: max batch size must not be negative", ErrInvalidConfig)
	}
	if c.FlushInterval <= 0 {
		return fmt.Errorf("%w: flush interval must be positive", ErrInvalidConfig)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("%w: max retries must not be negative", ErrInvalidConfig)
	}
	if c.QueueCapacity <= 0 {
		return fmt.Errorf("%w: queue capacity must be positive", ErrInvalidConfig)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("%w: HTTP timeout must be positive", ErrInvalidConfig)
	}
	return nil
}
