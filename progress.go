package zipkit

// ProgressEvent describes one finalized archive entry.
type ProgressEvent struct {
	// Path is the entry's archive path. Directory markers end in "/".
	Path string

	// Dir reports whether the entry is a zero-length directory marker.
	Dir bool

	// Bytes is the number of uncompressed bytes streamed for the entry.
	Bytes uint64
}

// ProgressFunc receives an event after each entry is finalized. Events
// arrive in archive order from the goroutine driving the archive.
type ProgressFunc func(ProgressEvent)
