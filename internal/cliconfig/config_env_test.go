package cliconfig

import (
	"os"
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"LOGSHIP_URL":            "http://env.example.com",
				"LOGSHIP_SOURCE":         "/env/app.log",
				"LOGSHIP_FLUSH_INTERVAL": "10s",
				"LOGSHIP_BATCH_SIZE":     "25",
				"LOGSHIP_COMPRESS":       "true",
				"LOGSHIP_LOG_LEVEL":      "debug",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				IngestURL:      "http://env.example.com",
				Source:         "/env/app.log",
				FlushInterval:  10 * time.Second,
				MaxBatchSize:   25,
				UseCompression: true,
				LogLevel:       "debug",
			},
			wantErr: false,
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"LOGSHIP_URL":    "http://env.example.com",
				"LOGSHIP_SOURCE": "/env/app.log",
			},
			changed: map[string]bool{"url": true},
			initial: Config{
				IngestURL: "http://flag.example.com",
			},
			expected: Config{
				IngestURL: "http://flag.example.com",
				Source:    "/env/app.log",
			},
			wantErr: false,
		},
		{
			name: "returns error for invalid duration",
			envVars: map[string]string{
				"LOGSHIP_FLUSH_INTERVAL": "not-a-duration",
			},
			changed: map[string]bool{},
			initial: Config{},
			wantErr: true,
		},
		{
			name: "returns error for invalid int",
			envVars: map[string]string{
				"LOGSHIP_BATCH_SIZE": "not-a-number",
			},
			changed: map[string]bool{},
			initial: Config{},
			wantErr: true,
		},
		{
			name: "zero retries applies",
			envVars: map[string]string{
				"LOGSHIP_RETRIES": "0",
			},
			changed: map[string]bool{},
			initial: Config{MaxRetries: 3},
			expected: Config{
				MaxRetries: 0,
			},
			wantErr: false,
		},
		{
			name: "handles bool '1' as true",
			envVars: map[string]string{
				"LOGSHIP_ONCE": "1",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				Once: true,
			},
			wantErr: false,
		},
		{
			name: "handles bool 'false' as false",
			envVars: map[string]string{
				"LOGSHIP_FOLLOW": "false",
			},
			changed: map[string]bool{},
			initial: Config{Follow: true},
			expected: Config{
				Follow: false,
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Set environment variables
			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}
			// Clean up after test
			defer func() {
				for k := range tt.envVars {
					os.Unsetenv(k)
				}
			}()

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)

			if tt.wantErr && err == nil {
				t.Error("ApplyEnvConfig() expected error but got nil")
				return
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ApplyEnvConfig() unexpected error: %v", err)
				return
			}

			if !tt.wantErr && cfg != tt.expected {
				t.Errorf("config = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

// Integration test: precedence order (CLI > Env > File)
func TestConfigPrecedence(t *testing.T) {
	fileConf := FileConfig{
		URL:      "http://file.example.com",
		Source:   "/file/app.log",
		LogLevel: "warn",
	}

	os.Setenv("LOGSHIP_URL", "http://env.example.com")
	os.Setenv("LOGSHIP_SOURCE", "/env/app.log")
	defer func() {
		os.Unsetenv("LOGSHIP_URL")
		os.Unsetenv("LOGSHIP_SOURCE")
	}()

	changed := map[string]bool{
		"url": true, // CLI flag was set for the ingest URL
	}

	cfg := Config{
		IngestURL: "http://flag.example.com",
	}

	if err := ApplyFileConfig(&cfg, fileConf, changed); err != nil {
		t.Fatalf("ApplyFileConfig failed: %v", err)
	}
	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatalf("ApplyEnvConfig failed: %v", err)
	}

	// Verify precedence: CLI > Env > File
	if cfg.IngestURL != "http://flag.example.com" {
		t.Errorf("IngestURL = %v, want http://flag.example.com (CLI should win)", cfg.IngestURL)
	}
	if cfg.Source != "/env/app.log" {
		t.Errorf("Source = %v, want /env/app.log (env should override file)", cfg.Source)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %v, want warn (file should set)", cfg.LogLevel)
	}
}
