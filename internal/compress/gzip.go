// Package compress produces the gzip-encoded form of assembled payloads.
package compress

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/klauspost/compress/gzip"
)

// Gzip compresses payloads with gzip. Writers are pooled and reused across
// calls; a Gzip value is safe for concurrent use.
type Gzip struct {
	writers sync.Pool
}

// NewGzip creates a gzip compressor at the default compression level.
func NewGzip() *Gzip {
	return &Gzip{
		writers: sync.Pool{
			New: func() interface{} {
				return gzip.NewWriter(nil)
			},
		},
	}
}

// ContentEncoding names the encoding for transport headers.
func (g *Gzip) ContentEncoding() string { return "gzip" }

// Compress returns the gzip-encoded form of payload.
func (g *Gzip) Compress(payload []byte) ([]byte, error) {
	zw := g.writers.Get().(*gzip.Writer)
	defer g.writers.Put(zw)

	var buf bytes.Buffer
	zw.Reset(&buf)
	if _, err := zw.Write(payload); err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize gzip stream: %w", err)
	}
	return buf.Bytes(), nil
}
