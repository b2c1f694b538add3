package event

// Event is one structured log record: an ordered list of named fields.
// Field names are unique within an event; Set replaces a field in
// place when the name already exists, otherwise it appends. Insertion
// order is preserved through serialization.
//
// The shipping pipeline treats events as read-only; an event handed to
// the sender is never modified.
type Event struct {
	fields []Field
}

// Field is one named field of an event. Top-level field names are
// caller-controlled log keys and are emitted verbatim on the wire.
type Field struct {
	Name  string
	Value Value
}

// New creates an empty event.
func New() *Event {
	return &Event{}
}

// Set sets the named field. An existing field with the same name is
// replaced in place, keeping its position; a new name is appended.
// It returns the event for chaining.
func (e *Event) Set(name string, v Value) *Event {
	for i := range e.fields {
		if e.fields[i].Name == name {
			e.fields[i].Value = v
			return e
		}
	}
	e.fields = append(e.fields, Field{Name: name, Value: v})
	return e
}

// Get returns the value of the named field and whether it is present.
func (e *Event) Get(name string) (Value, bool) {
	for i := range e.fields {
		if e.fields[i].Name == name {
			return e.fields[i].Value, true
		}
	}
	return Value{}, false
}

// Fields returns the fields in insertion order. The returned slice is
// shared with the event and must not be modified.
func (e *Event) Fields() []Field {
	return e.fields
}

// Len returns the number of fields.
func (e *Event) Len() int {
	return len(e.fields)
}
