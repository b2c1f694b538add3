package cliconfig

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// debounceDelay is how long the watcher waits after a file event before
// reloading, so editors that write in several steps trigger one reload.
const debounceDelay = 100 * time.Millisecond

// ReloadFunc receives the re-resolved configuration after the config
// file changes on disk.
type ReloadFunc func(Config)

// Watcher monitors the config file and re-resolves the effective
// configuration when it changes. Precedence survives reloads: values
// pinned by flags stay pinned, and environment variables still override
// the file.
type Watcher struct {
	path    string
	base    Config
	changed map[string]bool
	reload  ReloadFunc
	logger  zerolog.Logger

	mu       sync.Mutex
	debounce *time.Timer
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewWatcher creates a watcher for the config file at path. base is the
// configuration as resolved from defaults and flags alone; file and
// environment are layered on top of it at every reload.
func NewWatcher(path string, base Config, changed map[string]bool, reload ReloadFunc, logger zerolog.Logger) *Watcher {
	return &Watcher{
		path:    path,
		base:    base,
		changed: changed,
		reload:  reload,
		logger:  logger,
	}
}

// Start begins watching the config file's directory. Watching the
// directory rather than the file survives editors that replace the file
// on save.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.wg.Add(1)
	go w.loop(watchCtx, fsw)

	return nil
}

// Stop cancels the watch loop and waits for it to exit.
func (w *Watcher) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher) {
	defer w.wg.Done()
	defer fsw.Close()

	for {
		select {
		case <-ctx.Done():
			w.stopDebounce()
			return

		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != filepath.Base(w.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.scheduleReload()

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn().Err(err).Msg("config watcher error")
		}
	}
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(debounceDelay, w.reloadNow)
}

func (w *Watcher) stopDebounce() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
}

func (w *Watcher) reloadNow() {
	cfg, err := w.resolve()
	if err != nil {
		w.logger.Warn().Err(err).Msg("config reload skipped")
		return
	}
	w.logger.Info().Msg("configuration reloaded")
	w.reload(cfg)
}

// resolve rebuilds the effective config from the base with the current
// file and environment applied on top.
func (w *Watcher) resolve() (Config, error) {
	cfg := w.base

	if FileExists(w.path) {
		fc, err := LoadFileConfig(w.path)
		if err != nil {
			return Config{}, err
		}
		if err := ApplyFileConfig(&cfg, fc, w.changed); err != nil {
			return Config{}, err
		}
	}

	if err := ApplyEnvConfig(&cfg, w.changed); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
