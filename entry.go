package zipkit

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/meigma/zipkit/internal/pathutil"
)

// EntryBuilder configures a single archive entry before it is opened.
// A builder is inert until Start or Create performs the container write, so
// compression, timestamp and permissions can be set in any order beforehand.
type EntryBuilder struct {
	a       *Archive
	name    string
	dir     bool
	comp    Compression
	modTime time.Time
	mode    fs.FileMode
	hasMode bool
}

// NewFile returns a builder for a file entry at the given archive path.
// The path must use forward slashes and no leading slash.
func (a *Archive) NewFile(name string) *EntryBuilder {
	return &EntryBuilder{a: a, name: name, comp: a.cfg.compression}
}

// NewDir returns a builder for a zero-length directory entry. A trailing
// slash is appended to name if missing. Directory entries are always stored
// uncompressed.
func (a *Archive) NewDir(name string) *EntryBuilder {
	if name != "" {
		name = pathutil.DirName(name)
	}
	return &EntryBuilder{a: a, name: name, dir: true, comp: CompressionStore}
}

// Compression overrides the archive-level codec for this entry.
func (b *EntryBuilder) Compression(c Compression) *EntryBuilder {
	b.comp = c
	return b
}

// ModTime sets the entry's modification time.
func (b *EntryBuilder) ModTime(t time.Time) *EntryBuilder {
	b.modTime = t
	return b
}

// Mode sets the entry's Unix mode bitmask.
func (b *EntryBuilder) Mode(m fs.FileMode) *EntryBuilder {
	b.mode = m
	b.hasMode = true
	return b
}

// header assembles the container header for the entry.
func (b *EntryBuilder) header() (*zip.FileHeader, error) {
	if b.name == "" || b.name == "/" {
		return nil, ErrEmptyName
	}
	method, err := b.comp.method()
	if err != nil {
		return nil, err
	}
	hdr := &zip.FileHeader{
		Name:     b.name,
		Method:   method,
		Modified: b.modTime,
	}
	if b.hasMode {
		hdr.SetMode(b.mode)
	}
	return hdr, nil
}

// Start opens the entry for writing and returns the byte sink. The sink
// streams through the entry's codec into the container; the caller must
// Close it before opening another entry.
func (b *EntryBuilder) Start() (*Entry, error) {
	hdr, err := b.header()
	if err != nil {
		return nil, fmt.Errorf("entry %q: %w", b.name, err)
	}
	return b.a.openEntry(hdr)
}

// Create writes a directory entry immediately. Directory entries carry no
// content, so there is no streaming phase; open and finalize collapse into
// one call.
func (b *EntryBuilder) Create() error {
	e, err := b.Start()
	if err != nil {
		return err
	}
	return e.Close()
}

// Entry is an open write handle for a single archive entry. It exclusively
// owns write access to the archive's output stream between Start and Close.
type Entry struct {
	a      *Archive
	name   string
	w      io.Writer
	closed bool
}

// Write streams p through the entry's codec into the container.
func (e *Entry) Write(p []byte) (int, error) {
	if e.closed {
		return 0, fmt.Errorf("entry %q: write after close", e.name)
	}
	n, err := e.w.Write(p)
	if err != nil {
		return n, fmt.Errorf("entry %q: %w", e.name, err)
	}
	return n, nil
}

// Close finalizes the entry and releases the output stream so the archive
// can open its next entry. The container flushes the codec and writes the
// entry's trailing framing; both must complete or the archive is corrupt.
func (e *Entry) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	e.a.inflight = nil
	if err := e.a.zw.Flush(); err != nil {
		return fmt.Errorf("finalize entry %q: %w", e.name, err)
	}
	return nil
}

// Name returns the entry's archive path.
func (e *Entry) Name() string {
	return e.name
}
