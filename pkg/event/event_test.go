package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_SetPreservesOrder(t *testing.T) {
	ev := New().
		Set("message", String("hey")).
		Set("id", Int(300)).
		Set("level", String("info"))

	names := make([]string, 0, ev.Len())
	for _, f := range ev.Fields() {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"message", "id", "level"}, names)
}

func TestEvent_SetReplacesInPlace(t *testing.T) {
	ev := New().
		Set("message", String("first")).
		Set("id", Int(1)).
		Set("message", String("second"))

	require.Equal(t, 2, ev.Len())
	assert.Equal(t, "message", ev.Fields()[0].Name)
	assert.Equal(t, "second", ev.Fields()[0].Value.Text())

	v, ok := ev.Get("message")
	require.True(t, ok)
	assert.Equal(t, "second", v.Text())
}

func TestEvent_GetMissing(t *testing.T) {
	_, ok := New().Get("absent")
	assert.False(t, ok)
}

func TestBatch(t *testing.T) {
	b := NewBatch()
	assert.True(t, b.Empty())
	assert.Equal(t, 0, b.Len())

	first := New().Set("message", String("hey"))
	second := New().Set("message", String("ho"))

	b.Append(first)
	b.Append(second)

	assert.False(t, b.Empty())
	require.Equal(t, 2, b.Len())
	assert.Same(t, first, b.Events()[0])
	assert.Same(t, second, b.Events()[1])
}

func TestNewBatch_CopiesSlice(t *testing.T) {
	events := []*Event{New().Set("a", Int(1))}
	b := NewBatch(events...)

	events[0] = New().Set("b", Int(2))

	_, ok := b.Events()[0].Get("a")
	assert.True(t, ok)
}
