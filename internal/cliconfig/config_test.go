package cliconfig

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.Follow {
		t.Error("Follow = false, want true")
	}
	if !cfg.UseCompression {
		t.Error("UseCompression = false, want true")
	}
	if cfg.MaxBatchSize != 100 {
		t.Errorf("MaxBatchSize = %v, want 100", cfg.MaxBatchSize)
	}
	if cfg.FlushInterval != 2*time.Second {
		t.Errorf("FlushInterval = %v, want 2s", cfg.FlushInterval)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %v, want 3", cfg.MaxRetries)
	}
	if cfg.QueueCapacity != 1024 {
		t.Errorf("QueueCapacity = %v, want 1024", cfg.QueueCapacity)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		cfg := DefaultConfig()
		cfg.IngestURL = "http://localhost:8080"
		cfg.Source = "/var/log/app.log"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "missing url",
			mutate:  func(c *Config) { c.IngestURL = "" },
			wantErr: true,
		},
		{
			name:    "missing source",
			mutate:  func(c *Config) { c.Source = "" },
			wantErr: true,
		},
		{
			name:    "zero flush interval",
			mutate:  func(c *Config) { c.FlushInterval = 0 },
			wantErr: true,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.HTTPTimeout = 0 },
			wantErr: true,
		},
		{
			name:    "negative batch size",
			mutate:  func(c *Config) { c.MaxBatchSize = -1 },
			wantErr: true,
		},
		{
			name:    "zero batch size means no cap",
			mutate:  func(c *Config) { c.MaxBatchSize = 0 },
			wantErr: false,
		},
		{
			name:    "negative retries",
			mutate:  func(c *Config) { c.MaxRetries = -1 },
			wantErr: true,
		},
		{
			name:    "zero retries means single attempt",
			mutate:  func(c *Config) { c.MaxRetries = 0 },
			wantErr: false,
		},
		{
			name:    "zero queue capacity",
			mutate:  func(c *Config) { c.QueueCapacity = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidateStripsTrailingSlash(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IngestURL = "http://localhost:8080/"
	cfg.Source = "/var/log/app.log"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}
	if cfg.IngestURL != "http://localhost:8080" {
		t.Errorf("IngestURL = %v, want trailing slash stripped", cfg.IngestURL)
	}
}

func TestConfig_ValidateOnceDisablesFollow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IngestURL = "http://localhost:8080"
	cfg.Source = "/var/log/app.log"
	cfg.Once = true

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}
	if cfg.Follow {
		t.Error("Follow = true after Validate with Once set, want false")
	}
}
