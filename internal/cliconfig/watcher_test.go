package cliconfig

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reloadRecorder struct {
	mu   sync.Mutex
	got  []Config
	base Config
}

func (r *reloadRecorder) record(cfg Config) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, cfg)
}

func (r *reloadRecorder) last() (Config, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.got) == 0 {
		return Config{}, false
	}
	return r.got[len(r.got)-1], true
}

func (r *reloadRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.got)
}

func newWatcherBase(t *testing.T, dir string) Config {
	t.Helper()
	base := DefaultConfig()
	base.IngestURL = "http://127.0.0.1:9"
	base.Source = filepath.Join(dir, "app.log")
	return base
}

func TestWatcher_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("batch_size = 10\n"), 0o644))

	rec := &reloadRecorder{}
	w := NewWatcher(path, newWatcherBase(t, dir), map[string]bool{}, rec.record, zerolog.Nop())

	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("batch_size = 25\ncompress = false\n"), 0o644))

	require.Eventually(t, func() bool {
		cfg, ok := rec.last()
		return ok && cfg.MaxBatchSize == 25
	}, 3*time.Second, 20*time.Millisecond, "reload with new batch size")

	cfg, _ := rec.last()
	assert.False(t, cfg.UseCompression)
	assert.Equal(t, "http://127.0.0.1:9", cfg.IngestURL)
}

func TestWatcher_FlagsPinAcrossReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	base := newWatcherBase(t, dir)
	base.MaxBatchSize = 7
	changed := map[string]bool{"batch-size": true}

	rec := &reloadRecorder{}
	w := NewWatcher(path, base, changed, rec.record, zerolog.Nop())

	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("batch_size = 25\nretries = 9\n"), 0o644))

	require.Eventually(t, func() bool {
		cfg, ok := rec.last()
		return ok && cfg.MaxRetries == 9
	}, 3*time.Second, 20*time.Millisecond, "reload applies file retries")

	cfg, _ := rec.last()
	assert.Equal(t, 7, cfg.MaxBatchSize, "flag-pinned value survives reload")
}

func TestWatcher_SkipsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("batch_size = 10\n"), 0o644))

	rec := &reloadRecorder{}
	w := NewWatcher(path, newWatcherBase(t, dir), map[string]bool{}, rec.record, zerolog.Nop())

	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("flush_interval = \"garbage\"\n"), 0o644))

	time.Sleep(400 * time.Millisecond)
	assert.Zero(t, rec.count(), "invalid config must not reach the reload callback")
}

func TestWatcher_StopEndsLoop(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("batch_size = 10\n"), 0o644))

	rec := &reloadRecorder{}
	w := NewWatcher(path, newWatcherBase(t, dir), map[string]bool{}, rec.record, zerolog.Nop())

	require.NoError(t, w.Start(context.Background()))
	w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("batch_size = 99\n"), 0o644))
	time.Sleep(300 * time.Millisecond)
	assert.Zero(t, rec.count(), "no reloads after Stop")
}
