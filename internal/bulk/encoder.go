// Package bulk assembles event batches into newline-delimited JSON payloads
// for bulk ingestion.
package bulk

import (
	"fmt"
	"unicode"

	"github.com/valyala/fastjson"

	"github.com/bft-labs/logship/pkg/event"
)

var arenaPool fastjson.ArenaPool

// EncodeEvent serializes a single event to a one-line JSON document.
// Top-level field names are emitted verbatim; member names of nested objects
// are lower-camel-cased at every depth. Returns an error wrapping
// event.ErrUnsupportedValue when a value cannot be represented.
func EncodeEvent(e *event.Event) ([]byte, error) {
	a := arenaPool.Get()
	defer func() {
		a.Reset()
		arenaPool.Put(a)
	}()

	obj := a.NewObject()
	for _, f := range e.Fields() {
		v, err := buildValue(a, f.Value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		obj.Set(f.Name, v)
	}
	return obj.MarshalTo(nil), nil
}

// buildValue converts an event value into an arena-backed JSON value.
// Object members below the top level are renamed here.
func buildValue(a *fastjson.Arena, v event.Value) (*fastjson.Value, error) {
	switch v.Kind() {
	case event.KindNull:
		return a.NewNull(), nil
	case event.KindString:
		return a.NewString(v.Text()), nil
	case event.KindBool:
		if v.BoolValue() {
			return a.NewTrue(), nil
		}
		return a.NewFalse(), nil
	case event.KindNumber:
		lit := v.Literal()
		if lit == "" {
			return nil, event.ErrUnsupportedValue
		}
		return a.NewNumberString(lit), nil
	case event.KindObject:
		obj := a.NewObject()
		for _, m := range v.Members() {
			mv, err := buildValue(a, m.Value)
			if err != nil {
				return nil, fmt.Errorf("member %q: %w", m.Name, err)
			}
			obj.Set(lowerCamel(m.Name), mv)
		}
		return obj, nil
	case event.KindArray:
		arr := a.NewArray()
		for i, item := range v.Items() {
			iv, err := buildValue(a, item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			arr.SetArrayItem(i, iv)
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("%w: kind %s", event.ErrUnsupportedValue, v.Kind())
	}
}

// lowerCamel converts an UpperCamelCase member name to lowerCamelCase.
// A leading run of capitals is lowered as a unit, keeping its last capital
// when a lowercase letter follows: SomeId becomes someId, ID becomes id,
// IDValue becomes idValue. Names that do not start with an uppercase letter
// pass through unchanged.
func lowerCamel(name string) string {
	runes := []rune(name)
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return name
	}
	for i := 0; i < len(runes); i++ {
		if !unicode.IsUpper(runes[i]) {
			break
		}
		if i > 0 && i+1 < len(runes) && !unicode.IsUpper(runes[i+1]) {
			break
		}
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}
