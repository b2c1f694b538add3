// Package event contains the data types shipped by logship: structured
// log events and the batches they travel in.
//
// An [Event] is an ordered list of named fields. Field values are
// modeled as a closed union over the JSON types ([Value]) rather than
// arbitrary interface{} graphs, so everything an event carries is
// representable on the wire by construction. Use the constructors
// (String, Int, Float, Bool, Null, Object, Array) to build values, or
// [From] to bridge common Go types.
//
// # Entities
//
//   - [Event]: one log record; ordered fields, unique names
//   - [Value]: a JSON-shaped field value (tagged union)
//   - [Batch]: an ordered collection of events sent in one transfer
//
// Events are built by the producer and treated as read-only by the
// shipping pipeline.
package event
