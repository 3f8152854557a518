package zipkit

import "errors"

var (
	// ErrEntryOpen is returned when an entry is opened or the archive is
	// finished while a previous entry has not been finalized.
	ErrEntryOpen = errors.New("previous entry not finalized")

	// ErrEmptyName is returned when an entry is opened with an empty archive path.
	ErrEmptyName = errors.New("empty archive path")

	// ErrUnsupportedCompression is returned for a codec the writing path
	// does not implement.
	ErrUnsupportedCompression = errors.New("unsupported compression")

	// ErrModTimeBeforeEpoch is returned under ModTimeStrict when a file's
	// modification time predates the Unix epoch.
	ErrModTimeBeforeEpoch = errors.New("modification time before unix epoch")

	// ErrUnsupportedInput is returned when an input path does not exist or
	// is not a regular file or directory.
	ErrUnsupportedInput = errors.New("not a regular file or directory")

	// ErrArchiveClosed is returned when an entry is opened after Finish.
	ErrArchiveClosed = errors.New("archive already finished")
)
