package compress

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decompress(t *testing.T, data []byte) []byte {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer zr.Close()
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return out
}

func TestGzip_RoundTrip(t *testing.T) {
	g := NewGzip()

	payload := []byte("{\"message\":\"hey\"}\n{\"id\":300}")
	compressed, err := g.Compress(payload)
	require.NoError(t, err)
	require.NotEmpty(t, compressed)

	assert.Equal(t, payload, decompress(t, compressed))
}

func TestGzip_EmptyPayload(t *testing.T) {
	g := NewGzip()

	compressed, err := g.Compress(nil)
	require.NoError(t, err)

	assert.Empty(t, decompress(t, compressed))
}

func TestGzip_WriterReuse(t *testing.T) {
	g := NewGzip()

	first := []byte("first payload")
	second := []byte("second payload, a bit longer than the first")

	c1, err := g.Compress(first)
	require.NoError(t, err)
	c2, err := g.Compress(second)
	require.NoError(t, err)

	assert.Equal(t, first, decompress(t, c1))
	assert.Equal(t, second, decompress(t, c2))
}

func TestGzip_ConcurrentUse(t *testing.T) {
	g := NewGzip()

	var wg sync.WaitGroup
	results := make([][]byte, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			payload := bytes.Repeat([]byte{byte('a' + n)}, 256)
			compressed, err := g.Compress(payload)
			if err == nil {
				results[n] = compressed
			}
		}(i)
	}
	wg.Wait()

	for i, compressed := range results {
		require.NotNil(t, compressed)
		want := bytes.Repeat([]byte{byte('a' + i)}, 256)
		assert.Equal(t, want, decompress(t, compressed))
	}
}

func TestGzip_ContentEncoding(t *testing.T) {
	assert.Equal(t, "gzip", NewGzip().ContentEncoding())
}
