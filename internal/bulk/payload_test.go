package bulk

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/logship/pkg/event"
)

func TestMarshalBatch_SingleEvent(t *testing.T) {
	b := event.NewBatch(event.New().Set("message", event.String("hey")))

	got, err := MarshalBatch(b)
	require.NoError(t, err)
	assert.Equal(t, `{"message":"hey"}`, string(got), "single event carries no newline")
}

func TestMarshalBatch_JoinsWithSingleNewline(t *testing.T) {
	b := event.NewBatch(
		event.New().Set("n", event.Int(1)),
		event.New().Set("n", event.Int(2)),
		event.New().Set("n", event.Int(3)),
	)

	got, err := MarshalBatch(b)
	require.NoError(t, err)
	assert.Equal(t, "{\"n\":1}\n{\"n\":2}\n{\"n\":3}", string(got))
	assert.False(t, strings.HasSuffix(string(got), "\n"), "no trailing newline")
}

func TestMarshalBatch_Empty(t *testing.T) {
	got, err := MarshalBatch(event.NewBatch())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMarshalBatch_FailureAbortsWholeBatch(t *testing.T) {
	b := event.NewBatch(
		event.New().Set("ok", event.Int(1)),
		event.New().Set("bad", event.Float(math.NaN())),
		event.New().Set("ok", event.Int(3)),
	)

	got, err := MarshalBatch(b)
	require.Error(t, err)
	assert.Nil(t, got, "no partial payload on failure")
	assert.ErrorIs(t, err, event.ErrUnsupportedValue)
	assert.Contains(t, err.Error(), "event 1")
}

func TestMarshalBatch_RepeatedCallsIdentical(t *testing.T) {
	b := event.NewBatch(
		event.New().Set("id", event.Int(300)),
		event.New().Set("dummy", event.Object(
			event.Member{Name: "SomeId", Value: event.Int(42)},
		)),
	)

	first, err := MarshalBatch(b)
	require.NoError(t, err)
	second, err := MarshalBatch(b)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
