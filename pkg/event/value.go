package event

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"
)

// Kind identifies which JSON shape a Value carries.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindObject
	KindArray
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is a field value: a closed union over the JSON types.
// The zero Value is JSON null.
//
// Values are immutable once constructed; Object and Array copy the
// members they are given, so a Value can never reference itself.
type Value struct {
	kind    Kind
	str     string // KindString: the text; KindNumber: the JSON literal
	boolean bool
	members []Member
	items   []Value
}

// Member is one named member of an object value. Member names are
// normalized to lower-camel-case when the object is serialized inside
// an event (see the bulk encoder).
type Member struct {
	Name  string
	Value Value
}

// Null returns the JSON null value.
func Null() Value {
	return Value{kind: KindNull}
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Int returns a number value holding a signed integer.
func Int(n int64) Value {
	return Value{kind: KindNumber, str: strconv.FormatInt(n, 10)}
}

// Uint returns a number value holding an unsigned integer.
func Uint(n uint64) Value {
	return Value{kind: KindNumber, str: strconv.FormatUint(n, 10)}
}

// Float returns a number value holding a floating-point number.
// NaN and infinities have no JSON representation; the resulting value
// is retained but fails serialization with ErrUnsupportedValue.
func Float(f float64) Value {
	return Value{kind: KindNumber, str: formatFloat(f)}
}

// Number returns a number value from a raw JSON number literal.
// The literal is emitted verbatim; callers are expected to pass text
// that already parsed as a JSON number (parsers building events from
// wire input use this to round-trip literals like 300 vs 300.0).
func Number(literal string) Value {
	return Value{kind: KindNumber, str: literal}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, boolean: b}
}

// Object returns an object value with the given members, in the given
// order. The member list is copied.
func Object(members ...Member) Value {
	return Value{kind: KindObject, members: append([]Member(nil), members...)}
}

// Array returns an array value with the given items, in the given
// order. The item list is copied.
func Array(items ...Value) Value {
	return Value{kind: KindArray, items: append([]Value(nil), items...)}
}

// From converts a Go value into a Value. It accepts nil, bool, string,
// the integer and float types, []byte (as text), time.Time (RFC 3339),
// time.Duration (formatted), []any, map[string]any (members sorted by
// name so output is deterministic), and Value itself. Anything else is
// rejected with ErrUnsupportedValue; there is no reflective fallback.
func From(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Uint(uint64(x)), nil
	case uint8:
		return Uint(uint64(x)), nil
	case uint16:
		return Uint(uint64(x)), nil
	case uint32:
		return Uint(uint64(x)), nil
	case uint64:
		return Uint(x), nil
	case float32:
		return fromFloat(float64(x))
	case float64:
		return fromFloat(x)
	case []byte:
		return String(string(x)), nil
	case time.Time:
		return String(x.Format(time.RFC3339Nano)), nil
	case time.Duration:
		return String(x.String()), nil
	case []any:
		items := make([]Value, len(x))
		for i, item := range x {
			iv, err := From(item)
			if err != nil {
				return Null(), err
			}
			items[i] = iv
		}
		return Value{kind: KindArray, items: items}, nil
	case map[string]any:
		names := make([]string, 0, len(x))
		for name := range x {
			names = append(names, name)
		}
		sort.Strings(names)
		members := make([]Member, 0, len(x))
		for _, name := range names {
			mv, err := From(x[name])
			if err != nil {
				return Null(), err
			}
			members = append(members, Member{Name: name, Value: mv})
		}
		return Value{kind: KindObject, members: members}, nil
	default:
		return Null(), fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

func fromFloat(f float64) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Null(), fmt.Errorf("%w: %v", ErrUnsupportedValue, f)
	}
	return Float(f), nil
}

// Kind reports which union member the value holds.
func (v Value) Kind() Kind {
	return v.kind
}

// Text returns the text of a string value.
func (v Value) Text() string {
	return v.str
}

// Literal returns the JSON literal of a number value. It is empty for
// numbers with no JSON representation (NaN, infinities).
func (v Value) Literal() string {
	if v.kind != KindNumber {
		return ""
	}
	return v.str
}

// BoolValue returns the boolean carried by a bool value.
func (v Value) BoolValue() bool {
	return v.boolean
}

// Members returns the ordered members of an object value. The returned
// slice is shared with the value and must not be modified.
func (v Value) Members() []Member {
	return v.members
}

// Items returns the ordered items of an array value. The returned
// slice is shared with the value and must not be modified.
func (v Value) Items() []Value {
	return v.items
}

// formatFloat renders a float as a JSON number literal. Exponent form
// is used only outside [1e-6, 1e21) so integral floats stay readable.
// NaN and infinities yield an empty literal.
func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ""
	}
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	b := strconv.AppendFloat(make([]byte, 0, 24), f, format, -1, 64)
	if format == 'e' {
		// trim a leading zero in the exponent: 1e-09 -> 1e-9
		if n := len(b); n >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
			b[n-2] = b[n-1]
			b = b[:n-1]
		}
	}
	return string(b)
}
