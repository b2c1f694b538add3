package cliconfig

import (
	"fmt"
	"strconv"
	"time"
)

// Config holds CLI configuration for logship.
type Config struct {
	IngestURL string
	Source    string

	Follow bool
	Once   bool

	UseCompression bool
	MaxBatchSize   int
	FlushInterval  time.Duration
	HTTPTimeout    time.Duration
	MaxRetries     int
	QueueCapacity  int

	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Follow:         true,
		UseCompression: true,
		MaxBatchSize:   100,
		FlushInterval:  2 * time.Second,
		HTTPTimeout:    30 * time.Second,
		MaxRetries:     3,
		QueueCapacity:  1024,
		LogLevel:       "info",
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.IngestURL == "" {
		return fmt.Errorf("url is required")
	}

	// Ensure no trailing slash
	if len(c.IngestURL) > 0 && c.IngestURL[len(c.IngestURL)-1] == '/' {
		c.IngestURL = c.IngestURL[:len(c.IngestURL)-1]
	}

	if c.Source == "" {
		return fmt.Errorf("source is required")
	}

	// --once reads the source to EOF and exits; it cannot follow.
	if c.Once {
		c.Follow = false
	}

	if c.FlushInterval <= 0 {
		return fmt.Errorf("flush-interval must be positive")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.MaxBatchSize < 0 {
		return fmt.Errorf("batch-size must not be negative")
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("retries must not be negative")
	}
	if c.QueueCapacity <= 0 {
		return fmt.Errorf("queue-capacity must be positive")
	}

	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setInt sets an int value from a pointer if not nil and flag not changed.
// Zero is applied as-is; range checks belong to Validate.
func (s *configSetter) setInt(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
