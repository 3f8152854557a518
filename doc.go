// Package zipkit builds ZIP archives from filesystem paths with streaming
// per-entry compression.
//
// An [Archive] wraps an output stream and writes entries strictly
// sequentially: at most one entry is open at a time, and each entry must be
// finalized before the next is opened. File contents stream through the
// selected codec in fixed-size chunks, so memory use is independent of file
// size.
//
// # Quick Start
//
// Archive a directory tree with zstd compression:
//
//	out, err := os.Create("src.zip")
//	if err != nil {
//	    return err
//	}
//	a := zipkit.New(out, zipkit.WithCompression(zipkit.CompressionZstd))
//	if err := a.AddTree(ctx, "./src", ""); err != nil {
//	    return err
//	}
//	if err := a.Finish(); err != nil {
//	    return err
//	}
//
// For entry-level control, use the [EntryBuilder] returned by
// [Archive.NewFile] and [Archive.NewDir]: configure compression, timestamp
// and permissions, then Start (files) or Create (directories) to perform the
// container write.
package zipkit
