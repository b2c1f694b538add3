package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/logship/internal/adapters/fs"
	"github.com/bft-labs/logship/internal/cliconfig"
	"github.com/bft-labs/logship/internal/ports"
	logadapter "github.com/bft-labs/logship/pkg/log"
	"github.com/bft-labs/logship/pkg/logship"
)

const helpBanner = `
 _                 _     _
| | ___   __ _ ___| |__ (_)_ __
| |/ _ \ / _` + "`" + ` / __| '_ \| | '_ \
| | (_) | (_| \__ \ | | | | |_) |
|_|\___/ \__, |___/_| |_|_| .__/
         |___/            |_|
`

const helpDescription = `
Batch newline-delimited log events and ship them to an ingest endpoint.

Highlights:
  - Follows a log file, batches events, and flushes on size or interval.
  - Gzip compression and bounded retries with jittered backoff.
  - Configure via file, env (LOGSHIP_*), or flags; flags win.
  - Graceful shutdown flushes whatever is still queued.

Docs: https://github.com/bft-labs/logship
`

var longHelp = strings.TrimSpace(helpBanner) + "\n\n" + strings.TrimSpace(helpDescription)

var exampleUsage = strings.TrimSpace(`
  logship --url https://ingest.example.com/v1/logs --source /var/log/app.ndjson
  logship --config $HOME/.logship/config.toml --once
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string
	var watchConfig bool

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "logship",
		Short:   "Batch newline-delimited log events and ship them to an ingest endpoint",
		Long:    longHelp,
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default $HOME/.logship/config.toml), then apply flag overrides
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			// Snapshot defaults+flags before overlays; the config watcher
			// re-resolves from this base on every reload.
			flagCfg := cfg

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			// Apply environment variables (LOGSHIP_*)
			// These override file config but are overridden by flags (checked via changed map)
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			// Validate and set derived defaults
			if err := cfg.Validate(); err != nil {
				return err
			}

			lvl, err := cliconfig.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			log = log.Level(lvl)

			log.Info().Interface("config", cfg).Msg("configuration")

			libCfg := logship.Config{
				IngestURL:      cfg.IngestURL,
				UseCompression: cfg.UseCompression,
				MaxBatchSize:   cfg.MaxBatchSize,
				FlushInterval:  cfg.FlushInterval,
				MaxRetries:     cfg.MaxRetries,
				QueueCapacity:  cfg.QueueCapacity,
				HTTPTimeout:    cfg.HTTPTimeout,
			}

			shipper, err := logship.New(libCfg,
				logship.WithLogger(logadapter.NewZerologAdapterWithLogger(log)),
			)
			if err != nil {
				return fmt.Errorf("create shipper: %w", err)
			}

			// Setup signal handling for graceful shutdown
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			if err := shipper.Start(ctx); err != nil {
				return fmt.Errorf("start shipper: %w", err)
			}

			// Live-reload the send settings when the config file changes
			if watchConfig && cfgFile != "" {
				w := cliconfig.NewWatcher(cfgFile, flagCfg, changed, func(next cliconfig.Config) {
					shipper.UpdateSendOptions(next.UseCompression, next.MaxBatchSize, next.MaxRetries)
				}, log)
				if err := w.Start(ctx); err != nil {
					log.Warn().Err(err).Msg("config watcher not started")
				} else {
					defer w.Stop()
				}
			}

			source, err := fs.NewTailSource(fs.TailConfig{
				Path:      cfg.Source,
				Follow:    cfg.Follow,
				FromStart: cfg.Once,
			}, logadapter.NewZerologAdapterWithLogger(log))
			if err != nil {
				return fmt.Errorf("open source: %w", err)
			}

			// Pump events from the source into the shipper
			pumpDone := make(chan struct{})
			go func() {
				defer close(pumpDone)
				for {
					ev, err := source.Next(ctx)
					if err != nil {
						if errors.Is(err, ports.ErrSourceDrained) {
							return
						}
						if ctx.Err() != nil {
							return
						}
						log.Error().Err(err).Msg("read source")
						return
					}
					if err := shipper.Enqueue(ev); err != nil {
						if errors.Is(err, logship.ErrQueueFull) {
							log.Warn().Msg("queue full, event dropped")
							continue
						}
						log.Error().Err(err).Msg("enqueue event")
						return
					}
				}
			}()

			// Detect a crashed shipper so the process does not hang
			crashCh := make(chan struct{})
			go func() {
				ticker := time.NewTicker(100 * time.Millisecond)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						if shipper.Status().State == logship.StateCrashed {
							close(crashCh)
							return
						}
					}
				}
			}()

			// Wait for signal, source drain (once mode), or crash
			select {
			case <-sigCh:
				log.Info().Msg("received signal, stopping...")
			case <-pumpDone:
				log.Info().Msg("source drained, flushing...")
			case <-crashCh:
				log.Error().Msg("shipper crashed")
			}

			if err := source.Close(); err != nil {
				log.Warn().Err(err).Msg("close source")
			}

			// Graceful shutdown; Stop flushes whatever is still queued
			if err := shipper.Stop(); err != nil && !errors.Is(err, logship.ErrNotRunning) {
				return fmt.Errorf("stop shipper: %w", err)
			}

			if st := shipper.Status(); st.DroppedEvents > 0 {
				log.Warn().Uint64("dropped", st.DroppedEvents).Msg("events dropped under backpressure")
			}
			return nil
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.logship/config.toml)")
	root.Flags().BoolVar(&watchConfig, "watch-config", false, "reload send settings when the config file changes")

	root.Flags().StringVar(&cfg.IngestURL, "url", cfg.IngestURL, "ingest endpoint URL")
	root.Flags().StringVar(&cfg.Source, "source", cfg.Source, "log file to ship, one JSON event per line")

	root.Flags().BoolVar(&cfg.Follow, "follow", cfg.Follow, "keep following the source as it grows")
	root.Flags().BoolVar(&cfg.Once, "once", cfg.Once, "read the source to EOF, flush, and exit")

	root.Flags().BoolVar(&cfg.UseCompression, "compress", cfg.UseCompression, "gzip payloads before sending")
	root.Flags().IntVar(&cfg.MaxBatchSize, "batch-size", cfg.MaxBatchSize, "events per batch before an early flush (0 = no cap)")
	root.Flags().DurationVar(&cfg.FlushInterval, "flush-interval", cfg.FlushInterval, "interval between flushes")
	root.Flags().DurationVar(&cfg.HTTPTimeout, "timeout", cfg.HTTPTimeout, "HTTP timeout")
	root.Flags().IntVar(&cfg.MaxRetries, "retries", cfg.MaxRetries, "retries per batch after a failed send")
	root.Flags().IntVar(&cfg.QueueCapacity, "queue-capacity", cfg.QueueCapacity, "buffered events before backpressure drops")

	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("logship")
		os.Exit(1)
	}
}
