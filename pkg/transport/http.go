package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"runtime"

	"github.com/bft-labs/logship/pkg/log"
)

// HTTPTransport implements Transport using HTTP POST.
type HTTPTransport struct {
	client HTTPClient
	logger log.Logger
}

// NewHTTPTransport creates a new HTTP transport.
func NewHTTPTransport(client HTTPClient, logger log.Logger) *HTTPTransport {
	return &HTTPTransport{
		client: client,
		logger: logger,
	}
}

// Post delivers the payload to the ingestion address.
func (t *HTTPTransport) Post(ctx context.Context, address string, payload []byte, encoding TextEncoding, compressed bool) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, address, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: create request: %v", ErrSendFailed, err)
	}

	// Set headers
	req.Header.Set("Content-Type", "application/x-ndjson; charset="+string(encoding))
	if compressed {
		req.Header.Set("Content-Encoding", "gzip")
	}
	req.Header.Set("User-Agent", "logship/"+Version+" ("+runtime.GOOS+"/"+runtime.GOARCH+")")

	// Send request
	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	defer resp.Body.Close()

	// Check response
	if resp.StatusCode/100 != 2 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: server returned %d: %s", ErrSendFailed, resp.StatusCode, string(respBody))
	}

	t.logger.Debug("payload delivered",
		log.String("address", address),
		log.Int("bytes", len(payload)),
		log.Bool("compressed", compressed),
	)

	return nil
}
