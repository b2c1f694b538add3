// Package transport provides delivery of assembled log payloads to an
// ingestion service.
//
// This package defines the Transport interface that the batch pipeline
// posts through, plus an HTTP implementation. It supports custom HTTP
// clients for testing and alternative transport mechanisms.
//
// # Usage
//
// Create an HTTP transport:
//
//	tr := transport.NewHTTPTransport(httpClient, logger)
//
//	err := tr.Post(ctx, "https://logs.example.com/ingest", payload,
//	    transport.EncodingUTF8, false)
//	if err != nil {
//	    return err
//	}
//
// Failures are reported as errors wrapping ErrSendFailed, so callers can
// classify them with errors.Is.
//
// # Custom Transports
//
// Implement the Transport interface to deliver to alternative destinations
// (e.g., Kafka, S3, local files).
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package transport
