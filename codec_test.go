package zipkit

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompression_Method(t *testing.T) {
	t.Parallel()

	tests := []struct {
		comp Compression
		want uint16
	}{
		{CompressionDeflate, zip.Deflate},
		{CompressionZstd, zipMethodZstd},
		{CompressionStore, zip.Store},
	}
	for _, tt := range tests {
		got, err := tt.comp.method()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "compression %s", tt.comp)
	}

	_, err := Compression(200).method()
	require.ErrorIs(t, err, ErrUnsupportedCompression)
}

func TestCompression_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "deflate", CompressionDeflate.String())
	assert.Equal(t, "zstd", CompressionZstd.String())
	assert.Equal(t, "store", CompressionStore.String())
	assert.Equal(t, "unknown", Compression(200).String())
}

func TestDeflateWriter_RoundTrip(t *testing.T) {
	t.Parallel()

	content := bytes.Repeat([]byte("deflate round trip "), 500)

	var buf bytes.Buffer
	w, err := newDeflateWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r := flate.NewReader(&buf)
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, content, got)
}

func TestZstdWriter_RoundTrip(t *testing.T) {
	t.Parallel()

	content := bytes.Repeat([]byte("zstd round trip "), 500)

	var buf bytes.Buffer
	w, err := newZstdWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	dec, err := zstd.NewReader(&buf, zstd.WithDecoderConcurrency(1))
	require.NoError(t, err)
	defer dec.Close()
	got, err := io.ReadAll(dec)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestCodecWriters_CloseDoesNotCloseUnderlying(t *testing.T) {
	t.Parallel()

	// The container keeps writing after each entry's codec is closed, so the
	// codec's Close must only flush.
	var buf bytes.Buffer
	for _, newWriter := range []func(io.Writer) (io.WriteCloser, error){newDeflateWriter, newZstdWriter} {
		w, err := newWriter(&buf)
		require.NoError(t, err)
		_, err = w.Write([]byte("data"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		_, err = buf.Write([]byte("trailing"))
		require.NoError(t, err)
	}
}
