package transport

import (
	"context"
	"errors"
)

// TextEncoding identifies the character encoding of an uncompressed payload.
// It is carried through to the destination as the charset parameter of the
// content type.
type TextEncoding string

// EncodingUTF8 is the encoding used for all payloads produced by this module.
const EncodingUTF8 TextEncoding = "utf-8"

// ErrSendFailed indicates the payload could not be delivered to the
// destination. Errors returned by Transport implementations wrap it.
var ErrSendFailed = errors.New("logship: send failed")

// Transport delivers an assembled payload to an ingestion address.
// Implementations handle communication only; serialization and compression
// happen before the payload reaches the transport.
type Transport interface {
	// Post delivers payload to address in a single call.
	// encoding names the character encoding of the payload text, and
	// compressed reports whether the payload bytes are gzip-compressed.
	// Returns nil on success, an error wrapping ErrSendFailed on failure.
	Post(ctx context.Context, address string, payload []byte, encoding TextEncoding, compressed bool) error
}
