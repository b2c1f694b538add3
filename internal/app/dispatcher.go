package app

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/bft-labs/logship/internal/batch"
	"github.com/bft-labs/logship/pkg/event"
	"github.com/bft-labs/logship/pkg/log"
	"github.com/bft-labs/logship/pkg/transport"
)

// DrainTimeout bounds the final flush performed during shutdown.
const DrainTimeout = 5 * time.Second

// DispatcherConfig contains configuration for the dispatch loop.
type DispatcherConfig struct {
	Address        string
	UseCompression bool
	MaxBatchSize   int
	FlushInterval  time.Duration
	MaxRetries     int
	QueueCapacity  int
}

// SendEventEmitter is called on send success or failure.
type SendEventEmitter interface {
	OnSendSuccess(eventCount, attempts int, duration time.Duration)
	OnSendError(err error, eventCount int)
}

// Dispatcher owns the event queue and the background flush loop.
// Events enter through Enqueue from any goroutine; a single Run loop drains
// them into batches and hands each batch to the sender. Transport failures
// are retried with backoff up to the configured limit; serialization
// failures drop the batch.
type Dispatcher struct {
	id      string
	sender  *BatchSender
	logger  log.Logger
	emitter SendEventEmitter

	queue   chan *event.Event
	dropped atomic.Uint64

	mu         sync.Mutex
	acc        *batch.Accumulator
	opts       SendOptions
	maxRetries int
	flushEvery time.Duration

	backoffInitial time.Duration
	backoffMax     time.Duration
}

// NewDispatcher creates a dispatcher around the given sender.
func NewDispatcher(config DispatcherConfig, sender *BatchSender, logger log.Logger, emitter SendEventEmitter) *Dispatcher {
	id := uuid.NewString()
	return &Dispatcher{
		id:      id,
		sender:  sender,
		logger:  logger.With(log.String("dispatcher_id", id)),
		emitter: emitter,
		queue:   make(chan *event.Event, config.QueueCapacity),
		acc:     batch.NewAccumulator(config.MaxBatchSize, config.FlushInterval),
		opts: SendOptions{
			Address:        config.Address,
			UseCompression: config.UseCompression,
		},
		maxRetries:     config.MaxRetries,
		flushEvery:     config.FlushInterval,
		backoffInitial: DefaultBackoffInitial,
		backoffMax:     DefaultBackoffMax,
	}
}

// ID returns the dispatcher's instance identifier.
func (d *Dispatcher) ID() string {
	return d.id
}

// Enqueue hands an event to the dispatch loop without blocking.
// Returns false when the queue is full and the event was dropped.
func (d *Dispatcher) Enqueue(e *event.Event) bool {
	select {
	case d.queue <- e:
		return true
	default:
		total := d.dropped.Add(1)
		d.logger.Warn("queue full, event dropped",
			log.Uint64("dropped_total", total),
		)
		return false
	}
}

// Dropped returns the number of events dropped because the queue was full.
func (d *Dispatcher) Dropped() uint64 {
	return d.dropped.Load()
}

// QueueDepth returns the number of events waiting to be sent.
func (d *Dispatcher) QueueDepth() int {
	d.mu.Lock()
	pending := d.acc.Pending()
	d.mu.Unlock()
	return len(d.queue) + pending
}

// UpdateSendOptions applies new delivery settings to subsequent flushes.
// The ingestion address is fixed for the dispatcher's lifetime.
func (d *Dispatcher) UpdateSendOptions(useCompression bool, maxBatchSize, maxRetries int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.opts.UseCompression = useCompression
	d.maxRetries = maxRetries
	d.acc.SetMaxBatchSize(maxBatchSize)

	d.logger.Info("send options updated",
		log.Bool("use_compression", useCompression),
		log.Int("max_batch_size", maxBatchSize),
		log.Int("max_retries", maxRetries),
	)
}

// Run executes the dispatch loop until the context is canceled.
// On cancellation it drains the queue and attempts one final flush before
// returning the context error.
func (d *Dispatcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.flushEvery)
	defer ticker.Stop()

	d.logger.Info("dispatcher started",
		log.Int("queue_capacity", cap(d.queue)),
		log.Duration("flush_interval", d.flushEvery),
	)

	for {
		select {
		case <-ctx.Done():
			d.drainQueue()
			flushCtx, cancel := context.WithTimeout(context.Background(), DrainTimeout)
			d.flush(flushCtx)
			cancel()
			d.logger.Info("dispatcher stopped")
			return ctx.Err()

		case e := <-d.queue:
			d.mu.Lock()
			full := d.acc.Add(e)
			d.mu.Unlock()
			if full {
				d.flush(ctx)
			}

		case <-ticker.C:
			d.mu.Lock()
			due := d.acc.ShouldFlush()
			d.mu.Unlock()
			if due {
				d.flush(ctx)
			}
		}
	}
}

// drainQueue moves any queued events into the accumulator without blocking.
func (d *Dispatcher) drainQueue() {
	for {
		select {
		case e := <-d.queue:
			d.mu.Lock()
			d.acc.Add(e)
			d.mu.Unlock()
		default:
			return
		}
	}
}

// flush takes the pending batch and sends it, retrying transport failures.
func (d *Dispatcher) flush(ctx context.Context) {
	d.mu.Lock()
	b := d.acc.Take()
	opts := d.opts
	retries := d.maxRetries
	d.mu.Unlock()

	if b.Empty() {
		return
	}

	bo := newBackoff(d.backoffInitial, d.backoffMax)
	start := time.Now()

	var err error
	attempts := 0
	for {
		attempts++
		err = d.sender.Send(ctx, b, opts)
		if err == nil {
			break
		}
		if !errors.Is(err, transport.ErrSendFailed) {
			// Serialization failures are permanent; retrying cannot help.
			break
		}
		if attempts > retries {
			break
		}
		d.logger.Warn("send failed, retrying",
			log.Err(err),
			log.Int("attempt", attempts),
			log.Duration("backoff", bo.Current()),
		)
		if werr := bo.Wait(ctx); werr != nil {
			break
		}
	}

	if err != nil {
		d.logger.Error("batch dropped",
			log.Err(err),
			log.Int("events", b.Len()),
			log.Int("attempts", attempts),
		)
		if d.emitter != nil {
			d.emitter.OnSendError(err, b.Len())
		}
		return
	}

	if d.emitter != nil {
		d.emitter.OnSendSuccess(b.Len(), attempts, time.Since(start))
	}
}
