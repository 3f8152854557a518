package zipkit

import (
	"archive/zip"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
)

// zipMethodZstd is the APPNOTE-assigned compression method ID for Zstandard.
const zipMethodZstd uint16 = 93

// zstdLevel is the fixed Zstandard compression level for archive entries.
const zstdLevel = 3

// method returns the ZIP compression method ID for the codec.
func (c Compression) method() (uint16, error) {
	switch c {
	case CompressionDeflate:
		return zip.Deflate, nil
	case CompressionZstd:
		return zipMethodZstd, nil
	case CompressionStore:
		return zip.Store, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedCompression, uint8(c))
	}
}

// newDeflateWriter wraps w with a DEFLATE encoder at the default level.
// Closing the returned writer flushes the codec without closing w.
func newDeflateWriter(w io.Writer) (io.WriteCloser, error) {
	return flate.NewWriter(w, flate.DefaultCompression)
}

// newZstdWriter wraps w with a zstd encoder at level 3. Encoder concurrency
// is pinned to one; entries are written strictly sequentially.
func newZstdWriter(w io.Writer) (io.WriteCloser, error) {
	return zstd.NewWriter(w,
		zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(zstdLevel)),
		zstd.WithEncoderConcurrency(1),
		zstd.WithLowerEncoderMem(true),
	)
}

// registerCodecs installs the compressor factories on the container writer.
// Store needs no factory; the container writes it natively.
func registerCodecs(zw *zip.Writer) {
	zw.RegisterCompressor(zip.Deflate, newDeflateWriter)
	zw.RegisterCompressor(zipMethodZstd, newZstdWriter)
}
