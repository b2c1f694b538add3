package cliconfig

import "os"

// ApplyEnvConfig applies LOGSHIP_* environment variables to the Config.
// Environment values override file config but lose to explicitly set
// flags (checked via the changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("url", os.Getenv("LOGSHIP_URL"), &cfg.IngestURL)
	s.setString("source", os.Getenv("LOGSHIP_SOURCE"), &cfg.Source)
	s.setString("log-level", os.Getenv("LOGSHIP_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setDuration("flush-interval", os.Getenv("LOGSHIP_FLUSH_INTERVAL"), &cfg.FlushInterval); err != nil {
		return err
	}
	if err := s.setDuration("timeout", os.Getenv("LOGSHIP_TIMEOUT"), &cfg.HTTPTimeout); err != nil {
		return err
	}

	if err := s.setIntFromString("batch-size", os.Getenv("LOGSHIP_BATCH_SIZE"), &cfg.MaxBatchSize); err != nil {
		return err
	}
	if err := s.setIntFromString("retries", os.Getenv("LOGSHIP_RETRIES"), &cfg.MaxRetries); err != nil {
		return err
	}
	if err := s.setIntFromString("queue-capacity", os.Getenv("LOGSHIP_QUEUE_CAPACITY"), &cfg.QueueCapacity); err != nil {
		return err
	}

	s.setBoolFromString("follow", os.Getenv("LOGSHIP_FOLLOW"), &cfg.Follow)
	s.setBoolFromString("once", os.Getenv("LOGSHIP_ONCE"), &cfg.Once)
	s.setBoolFromString("compress", os.Getenv("LOGSHIP_COMPRESS"), &cfg.UseCompression)

	return nil
}
