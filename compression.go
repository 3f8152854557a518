package zipkit

// Compression identifies the codec applied to an entry's contents.
type Compression uint8

const (
	CompressionDeflate Compression = iota
	CompressionZstd
	CompressionStore
)

// String returns the human-readable name of the codec.
func (c Compression) String() string {
	switch c {
	case CompressionDeflate:
		return "deflate"
	case CompressionZstd:
		return "zstd"
	case CompressionStore:
		return "store"
	default:
		return "unknown"
	}
}
