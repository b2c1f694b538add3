package logship

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/bft-labs/logship/internal/app"
	"github.com/bft-labs/logship/pkg/event"
	"github.com/bft-labs/logship/pkg/log"
	"github.com/bft-labs/logship/pkg/transport"
)

// Shipper batches log events and delivers them to an ingestion service.
// Use New() to create an instance, then Start() to begin background
// dispatch, or SendBatch() for synchronous one-shot delivery.
type Shipper struct {
	config     Config
	opts       options
	lifecycle  *app.Lifecycle
	sender     *app.BatchSender
	dispatcher *app.Dispatcher
	logger     log.Logger

	mu     sync.RWMutex
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a new Shipper with the given configuration.
// The instance is created in StateStopped; call Start() to begin dispatch.
// Returns an error if configuration is invalid.
func New(cfg Config, opts ...Option) (*Shipper, error) {
	// Set defaults
	cfg.SetDefaults()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Validate module version compatibility
	if err := validateModuleVersions(); err != nil {
		return nil, err
	}

	// Apply options
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger

	// Create event emitter wrapper
	emitter := &eventEmitterWrapper{handler: o.eventHandler}

	// Create lifecycle manager
	lifecycle := app.NewLifecycle(logger, emitter)

	// Create transport
	tr := o.transport
	if tr == nil {
		client := o.httpClient
		if client == nil {
			client = &http.Client{Timeout: cfg.HTTPTimeout}
		}
		tr = transport.NewHTTPTransport(client, logger)
	}

	// Create sender and dispatcher
	sender := app.NewBatchSender(tr, logger)
	dispatcher := app.NewDispatcher(app.DispatcherConfig{
		Address:        cfg.IngestURL,
		UseCompression: cfg.UseCompression,
		MaxBatchSize:   cfg.MaxBatchSize,
		FlushInterval:  cfg.FlushInterval,
		MaxRetries:     cfg.MaxRetries,
		QueueCapacity:  cfg.QueueCapacity,
	}, sender, logger, emitter)

	return &Shipper{
		config:     cfg,
		opts:       o,
		lifecycle:  lifecycle,
		sender:     sender,
		dispatcher: dispatcher,
		logger:     logger,
	}, nil
}

// Start begins background dispatch.
// Returns immediately after starting the dispatch goroutine.
// Returns ErrAlreadyRunning if the shipper is not stopped.
// The provided context bounds the lifetime of the dispatch loop.
func (s *Shipper) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.lifecycle.CanStart() {
		return ErrAlreadyRunning
	}

	if err := s.lifecycle.TransitionTo(app.StateStarting, "Start() called"); err != nil {
		return err
	}

	// Create cancellable context
	runCtx, cancel := context.WithCancel(ctx)
	s.ctx = runCtx
	s.cancel = cancel
	s.lifecycle.SetCancel(cancel)

	// Start the dispatcher in a goroutine
	s.lifecycle.AddWorker()
	go func() {
		defer s.lifecycle.WorkerDone()

		if err := s.lifecycle.TransitionTo(app.StateRunning, "dispatcher starting"); err != nil {
			s.logger.Error("failed to transition to running", log.Err(err))
			return
		}

		err := s.dispatcher.Run(runCtx)

		if err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Error("dispatcher error", log.Err(err))
			_ = s.lifecycle.TransitionTo(app.StateCrashed, err.Error())
		}
	}()

	return nil
}

// Stop gracefully shuts down the shipper.
// Pending events are flushed before the dispatch goroutine exits.
// Waits up to 30 seconds before forcing shutdown.
// Returns nil on graceful shutdown, ErrShutdownTimeout if forced,
// ErrNotRunning if the shipper was not running.
func (s *Shipper) Stop() error {
	s.mu.Lock()

	if !s.lifecycle.CanStop() {
		s.mu.Unlock()
		return ErrNotRunning
	}

	if err := s.lifecycle.TransitionTo(app.StateStopping, "Stop() called"); err != nil {
		s.mu.Unlock()
		return err
	}

	if s.cancel != nil {
		s.cancel()
	}

	s.mu.Unlock()

	// Wait for the dispatcher with timeout
	if err := s.lifecycle.WaitWithTimeout(app.ShutdownTimeout); err != nil {
		_ = s.lifecycle.TransitionTo(app.StateCrashed, "shutdown timeout")
		return ErrShutdownTimeout
	}

	_ = s.lifecycle.TransitionTo(app.StateStopped, "graceful shutdown")
	return nil
}

// Enqueue hands an event to the background dispatcher.
// The event is batched and delivered asynchronously.
// Returns ErrNotRunning unless the shipper is starting or running, and
// ErrQueueFull when the event was dropped because the queue is at capacity.
func (s *Shipper) Enqueue(e *event.Event) error {
	switch s.lifecycle.State() {
	case app.StateStarting, app.StateRunning:
	default:
		return ErrNotRunning
	}

	if !s.dispatcher.Enqueue(e) {
		return ErrQueueFull
	}
	return nil
}

// SendBatch serializes the batch and delivers it in a single transport call,
// bypassing the queue. It works in any lifecycle state and can be used
// without ever calling Start.
//
// An empty or nil batch is a success with no transport activity. A
// serialization failure aborts the whole batch before any transport call;
// classify errors with ErrSerialization and ErrTransport. SendBatch never
// retries.
func (s *Shipper) SendBatch(ctx context.Context, b *event.Batch) error {
	s.mu.RLock()
	opts := app.SendOptions{
		Address:        s.config.IngestURL,
		UseCompression: s.config.UseCompression,
	}
	s.mu.RUnlock()

	return s.sender.Send(ctx, b, opts)
}

// UpdateSendOptions applies new delivery settings to subsequent sends.
// The ingestion address is fixed for the shipper's lifetime.
func (s *Shipper) UpdateSendOptions(useCompression bool, maxBatchSize, maxRetries int) {
	s.mu.Lock()
	s.config.UseCompression = useCompression
	s.config.MaxBatchSize = maxBatchSize
	s.config.MaxRetries = maxRetries
	s.mu.Unlock()

	s.dispatcher.UpdateSendOptions(useCompression, maxBatchSize, maxRetries)
}

// Status returns a snapshot of the shipper.
// Safe to call concurrently from any goroutine.
func (s *Shipper) Status() Status {
	return Status{
		State:         convertState(s.lifecycle.State()),
		QueueDepth:    s.dispatcher.QueueDepth(),
		DroppedEvents: s.dispatcher.Dropped(),
	}
}

// eventEmitterWrapper adapts EventHandler to the internal emitter interfaces.
type eventEmitterWrapper struct {
	handler EventHandler
}

func (e *eventEmitterWrapper) OnStateChange(previous, current app.State, reason string) {
	if e.handler == nil {
		return
	}
	e.handler.OnStateChange(StateChangeEvent{
		Previous: convertState(previous),
		Current:  convertState(current),
		Reason:   reason,
	})
}

func (e *eventEmitterWrapper) OnSendSuccess(eventCount, attempts int, duration time.Duration) {
	if e.handler == nil {
		return
	}
	e.handler.OnSendSuccess(SendSuccessEvent{
		EventCount: eventCount,
		Attempts:   attempts,
		Duration:   duration,
	})
}

func (e *eventEmitterWrapper) OnSendError(err error, eventCount int) {
	if e.handler == nil {
		return
	}
	e.handler.OnSendError(SendErrorEvent{
		Error:      err,
		EventCount: eventCount,
	})
}

func convertState(s app.State) State {
	switch s {
	case app.StateStopped:
		return StateStopped
	case app.StateStarting:
		return StateStarting
	case app.StateRunning:
		return StateRunning
	case app.StateStopping:
		return StateStopping
	case app.StateCrashed:
		return StateCrashed
	default:
		return StateStopped
	}
}

// validateModuleVersions checks that all module versions are compatible.
// Returns an error if any module version is below its minimum compatible version.
func validateModuleVersions() error {
	for name, m := range ModuleVersions() {
		if !isVersionCompatible(m, CompatibilityMatrix()[name]) {
			return fmt.Errorf("module %s version %s is below minimum compatible version %s",
				name, m, CompatibilityMatrix()[name])
		}
	}
	return nil
}

// isVersionCompatible checks if version >= minVersion using semantic versioning.
// Assumes versions are in format "major.minor.patch".
func isVersionCompatible(version, minVersion string) bool {
	var vMajor, vMinor, vPatch int
	var mMajor, mMinor, mPatch int

	_, _ = fmt.Sscanf(version, "%d.%d.%d", &vMajor, &vMinor, &vPatch)
	_, _ = fmt.Sscanf(minVersion, "%d.%d.%d", &mMajor, &mMinor, &mPatch)

	if vMajor != mMajor {
		return vMajor > mMajor
	}
	if vMinor != mMinor {
		return vMinor > mMinor
	}
	return vPatch >= mPatch
}
