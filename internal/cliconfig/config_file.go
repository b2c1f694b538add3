package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations and pointers
// where zero is a meaningful value, to keep TOML friendly.
type FileConfig struct {
	URL           string `toml:"url"`
	Source        string `toml:"source"`
	Follow        *bool  `toml:"follow"`
	Once          *bool  `toml:"once"`
	Compress      *bool  `toml:"compress"`
	BatchSize     *int   `toml:"batch_size"`
	FlushInterval string `toml:"flush_interval"`
	HTTPTimeout   string `toml:"timeout"`
	Retries       *int   `toml:"retries"`
	QueueCapacity *int   `toml:"queue_capacity"`
	LogLevel      string `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.logship/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".logship", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("url", fc.URL, &cfg.IngestURL)
	s.setString("source", fc.Source, &cfg.Source)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	if err := s.setDuration("flush-interval", fc.FlushInterval, &cfg.FlushInterval); err != nil {
		return err
	}
	if err := s.setDuration("timeout", fc.HTTPTimeout, &cfg.HTTPTimeout); err != nil {
		return err
	}

	s.setInt("batch-size", fc.BatchSize, &cfg.MaxBatchSize)
	s.setInt("retries", fc.Retries, &cfg.MaxRetries)
	s.setInt("queue-capacity", fc.QueueCapacity, &cfg.QueueCapacity)

	s.setBool("follow", fc.Follow, &cfg.Follow)
	s.setBool("once", fc.Once, &cfg.Once)
	s.setBool("compress", fc.Compress, &cfg.UseCompression)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
