package event

import "errors"

// ErrUnsupportedValue is returned when a field value cannot be
// represented as JSON: a Go type outside the closed union accepted by
// From, or a float with no JSON literal (NaN, infinities).
// Serialization failures wrap it and can be checked with errors.Is.
var ErrUnsupportedValue = errors.New("logship: value not representable as JSON")
