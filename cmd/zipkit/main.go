// Command zipkit creates a ZIP archive from files and directories.
//
// Usage:
//
//	zipkit [--zstd] <output.zip> <input>...
//
// By default entries are DEFLATE-compressed; --zstd selects Zstandard at
// level 3. Top-level file inputs are archived under their bare file name;
// directory inputs have their contents archived at the archive root.
// Inputs that are neither produce a warning and are skipped.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/meigma/zipkit"
)

var errUsage = errors.New("usage")

func main() {
	err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	useZstd := false
	var positional []string
	for _, arg := range args {
		if arg == "--zstd" {
			useZstd = true
			continue
		}
		positional = append(positional, arg)
	}

	if len(positional) < 2 {
		printUsage(stderr)
		return errUsage
	}

	outputPath := positional[0]
	inputs := positional[1:]

	compression := zipkit.CompressionDeflate
	if useZstd {
		compression = zipkit.CompressionZstd
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outputPath, err)
	}

	archive := zipkit.New(out,
		zipkit.WithCompression(compression),
		zipkit.WithProgress(func(ev zipkit.ProgressEvent) {
			fmt.Fprintf(stdout, "  adding: %s\n", ev.Path)
		}),
	)

	for _, input := range inputs {
		if err := archive.AddPath(ctx, input); err != nil {
			if errors.Is(err, zipkit.ErrUnsupportedInput) {
				fmt.Fprintf(stderr, "Warning: '%s' does not exist or is not a regular file/directory\n", input)
				continue
			}
			out.Close()
			return err
		}
	}

	if err := archive.Finish(); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", outputPath, err)
	}

	fmt.Fprintf(stdout, "Successfully created '%s' (%s)\n", outputPath, humanize.Bytes(archive.BytesWritten()))
	return nil
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: zipkit [--zstd] <output.zip> <input>...")
	fmt.Fprintln(w, "Create a ZIP archive from the specified files and directories")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --zstd    Use zstd compression (level 3) instead of deflate")
}
