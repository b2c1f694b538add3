package app

import (
	"context"
	"fmt"
	"time"

	"github.com/bft-labs/logship/internal/bulk"
	"github.com/bft-labs/logship/internal/compress"
	"github.com/bft-labs/logship/pkg/event"
	"github.com/bft-labs/logship/pkg/log"
	"github.com/bft-labs/logship/pkg/transport"
)

// SendOptions control how a batch is assembled and delivered.
type SendOptions struct {
	// Address is the ingestion endpoint the payload is posted to.
	Address string

	// UseCompression gzips the payload before posting.
	UseCompression bool
}

// BatchSender serializes event batches and delivers each one in a single
// transport call. It performs no retries; callers decide retry policy.
type BatchSender struct {
	transport  transport.Transport
	compressor *compress.Gzip
	logger     log.Logger
}

// NewBatchSender creates a new batch sender.
func NewBatchSender(tr transport.Transport, logger log.Logger) *BatchSender {
	return &BatchSender{
		transport:  tr,
		compressor: compress.NewGzip(),
		logger:     logger,
	}
}

// Send assembles the batch into a newline-delimited JSON payload and posts
// it to opts.Address.
//
// An empty batch is a success with no transport activity. A serialization
// failure aborts the whole batch before any transport call. At most one
// transport call is made per invocation.
func (s *BatchSender) Send(ctx context.Context, b *event.Batch, opts SendOptions) error {
	if b == nil || b.Empty() {
		return nil
	}

	payload, err := bulk.MarshalBatch(b)
	if err != nil {
		return fmt.Errorf("marshal batch: %w", err)
	}

	compressed := false
	if opts.UseCompression {
		payload, err = s.compressor.Compress(payload)
		if err != nil {
			return fmt.Errorf("compress batch: %w", err)
		}
		compressed = true
	}

	start := time.Now()
	if err := s.transport.Post(ctx, opts.Address, payload, transport.EncodingUTF8, compressed); err != nil {
		return err
	}

	s.logger.Debug("batch sent",
		log.Int("events", b.Len()),
		log.Int("bytes", len(payload)),
		log.Bool("compressed", compressed),
		log.Duration("duration", time.Since(start)),
	)

	return nil
}
