package zipkit

import "log/slog"

// ModTimePolicy controls how a pre-epoch modification time is handled.
type ModTimePolicy uint8

const (
	// ModTimeStrict rejects entries whose modification time predates the
	// Unix epoch.
	ModTimeStrict ModTimePolicy = iota

	// ModTimeFallback substitutes the Unix epoch for pre-epoch
	// modification times instead of failing the entry.
	ModTimeFallback
)

// config holds configuration for an Archive.
type config struct {
	compression   Compression
	modTimePolicy ModTimePolicy
	logger        *slog.Logger
	progress      ProgressFunc
	bufSize       int
}

// Option configures an Archive.
type Option func(*config)

// WithCompression sets the codec applied to file entries. The zero value is
// CompressionDeflate. Individual entries may override it via EntryBuilder.
func WithCompression(c Compression) Option {
	return func(cfg *config) {
		cfg.compression = c
	}
}

// WithModTimePolicy controls whether a pre-epoch modification time fails the
// entry or falls back to the epoch. The zero value is ModTimeStrict.
func WithModTimePolicy(p ModTimePolicy) Option {
	return func(cfg *config) {
		cfg.modTimePolicy = p
	}
}

// WithLogger sets the logger for archive creation. A nil logger discards
// all output.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = l
	}
}

// WithProgress sets a callback invoked after each entry is finalized.
func WithProgress(fn ProgressFunc) Option {
	return func(cfg *config) {
		cfg.progress = fn
	}
}

// WithBufferSize sets the chunk size used when streaming file contents.
// Zero or negative uses the 32KB default. This is a performance knob, not a
// correctness one.
func WithBufferSize(n int) Option {
	return func(cfg *config) {
		cfg.bufSize = n
	}
}
