package bulk

import (
	"bytes"
	"fmt"

	"github.com/bft-labs/logship/pkg/event"
)

// MarshalBatch serializes every event in the batch and joins the documents
// with single newlines. The payload carries no trailing newline. Any event
// that fails to serialize aborts the whole batch; no partial payload is
// returned.
func MarshalBatch(b *event.Batch) ([]byte, error) {
	var buf bytes.Buffer
	for i, e := range b.Events() {
		doc, err := EncodeEvent(e)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.Write(doc)
	}
	return buf.Bytes(), nil
}
