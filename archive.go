package zipkit

import (
	"archive/zip"
	"bufio"
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/meigma/zipkit/internal/file"
	"github.com/meigma/zipkit/internal/pathutil"
)

// defaultBufferSize is the chunk size for streaming file contents.
const defaultBufferSize = 32 * 1024

// Archive writes a ZIP archive to an underlying stream. It owns the stream
// for its lifetime, entries are strictly sequential, and at most one entry
// is open at a time; the container format makes this a correctness
// requirement, not an implementation choice.
type Archive struct {
	cfg      config
	zw       *zip.Writer
	bw       *bufio.Writer
	count    *file.CountingWriter
	buf      []byte
	inflight *Entry
	closed   bool
}

// New prepares an empty archive writing to w through a buffered writer.
// The archive must be finalized with Finish; entries already written cannot
// be reordered or removed.
func New(w io.Writer, opts ...Option) *Archive {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.bufSize <= 0 {
		cfg.bufSize = defaultBufferSize
	}

	cw := &file.CountingWriter{W: w}
	bw := bufio.NewWriter(cw)
	zw := zip.NewWriter(bw)
	registerCodecs(zw)

	return &Archive{
		cfg:   cfg,
		zw:    zw,
		bw:    bw,
		count: cw,
		buf:   make([]byte, cfg.bufSize),
	}
}

// log returns the logger, falling back to a discard logger if nil.
func (a *Archive) log() *slog.Logger {
	if a.cfg.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.cfg.logger
}

// reportProgress sends a progress event if a callback is configured.
func (a *Archive) reportProgress(ev ProgressEvent) {
	if a.cfg.progress == nil {
		return
	}
	a.cfg.progress(ev)
}

// openEntry performs the container write for hdr and registers the result as
// the single in-flight entry.
func (a *Archive) openEntry(hdr *zip.FileHeader) (*Entry, error) {
	if a.closed {
		return nil, fmt.Errorf("entry %q: %w", hdr.Name, ErrArchiveClosed)
	}
	if a.inflight != nil {
		return nil, fmt.Errorf("entry %q: %w", hdr.Name, ErrEntryOpen)
	}
	w, err := a.zw.CreateHeader(hdr)
	if err != nil {
		return nil, fmt.Errorf("open entry %q: %w", hdr.Name, err)
	}
	e := &Entry{a: a, name: hdr.Name, w: w}
	a.inflight = e
	return e, nil
}

// AddFile archives the regular file at fsPath under archivePath, streaming
// its contents through the configured codec in fixed-size chunks.
func (a *Archive) AddFile(ctx context.Context, fsPath, archivePath string) error {
	f, err := os.Open(fsPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", fsPath, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", fsPath, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", fsPath, ErrUnsupportedInput)
	}

	meta, err := extractMetadata(info, a.cfg.modTimePolicy)
	if err != nil {
		return err
	}

	b := a.NewFile(archivePath).ModTime(meta.modTime)
	if meta.hasMode {
		b = b.Mode(meta.mode)
	}
	e, err := b.Start()
	if err != nil {
		return err
	}

	// A failure mid-stream leaves the entry unfinalized and the archive
	// invalid; the error propagates and the whole run aborts.
	n, err := file.CopyWithContext(ctx, e, f, a.buf)
	if err != nil {
		return fmt.Errorf("write %s: %w", archivePath, err)
	}
	if err := e.Close(); err != nil {
		return err
	}

	a.log().Debug("file added", "path", archivePath, "bytes", n)
	a.reportProgress(ProgressEvent{Path: archivePath, Bytes: n})
	return nil
}

// addDirEntry writes a zero-length directory marker carrying the directory's
// own timestamp and permissions.
func (a *Archive) addDirEntry(archivePath string, info fs.FileInfo) error {
	meta, err := extractMetadata(info, a.cfg.modTimePolicy)
	if err != nil {
		return err
	}

	b := a.NewDir(archivePath).ModTime(meta.modTime)
	if meta.hasMode {
		b = b.Mode(meta.mode)
	}
	if err := b.Create(); err != nil {
		return err
	}

	name := pathutil.DirName(archivePath)
	a.log().Debug("directory added", "path", name)
	a.reportProgress(ProgressEvent{Path: name, Dir: true})
	return nil
}

// AddTree archives the contents of dir under the archive path base. Children
// are visited in the name order returned by os.ReadDir, so the entry stream
// is deterministic for a given tree. Each subdirectory gets a marker entry
// before its contents; non-regular children (symlinks, sockets, devices) are
// skipped.
func (a *Archive) AddTree(ctx context.Context, dir, base string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read dir %s: %w", dir, err)
	}

	for _, d := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		child := filepath.Join(dir, d.Name())
		name := pathutil.Join(base, d.Name())

		switch {
		case d.IsDir():
			info, infoErr := d.Info()
			if infoErr != nil {
				return fmt.Errorf("stat %s: %w", child, infoErr)
			}
			if err := a.addDirEntry(name, info); err != nil {
				return err
			}
			if err := a.AddTree(ctx, child, name); err != nil {
				return err
			}
		case d.Type().IsRegular():
			if err := a.AddFile(ctx, child, name); err != nil {
				return err
			}
		default:
			a.log().Debug("skipped non-regular file", "path", child)
		}
	}
	return nil
}

// AddPath archives a top-level input path. A regular file is added under its
// bare base name regardless of the input's directory depth; a directory's
// contents are added at the archive root without a wrapping entry. Anything
// else (missing path, device file, broken symlink) returns
// ErrUnsupportedInput, which callers may treat as non-fatal.
func (a *Archive) AddPath(ctx context.Context, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, ErrUnsupportedInput)
	}

	switch {
	case info.Mode().IsRegular():
		return a.AddFile(ctx, path, filepath.Base(path))
	case info.IsDir():
		return a.AddTree(ctx, path, "")
	default:
		return fmt.Errorf("%s: %w", path, ErrUnsupportedInput)
	}
}

// Finish writes the central directory and flushes the output stream. The
// archive accepts no further entries afterwards. Finish fails if an entry is
// still open.
func (a *Archive) Finish() error {
	if a.closed {
		return ErrArchiveClosed
	}
	if a.inflight != nil {
		return fmt.Errorf("entry %q: %w", a.inflight.name, ErrEntryOpen)
	}
	a.closed = true

	if err := a.zw.Close(); err != nil {
		return fmt.Errorf("close archive: %w", err)
	}
	if err := a.bw.Flush(); err != nil {
		return fmt.Errorf("flush archive: %w", err)
	}

	a.log().Info("archive finished", "bytes", a.count.N)
	return nil
}

// BytesWritten reports the total bytes written to the underlying stream.
// It is only accurate after Finish.
func (a *Archive) BytesWritten() uint64 {
	return a.count.N
}
