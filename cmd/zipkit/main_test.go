package main

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_UsageError(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "out.zip")

	var stdout, stderr strings.Builder
	err := run(context.Background(), []string{out}, &stdout, &stderr)
	require.ErrorIs(t, err, errUsage)

	assert.Contains(t, stderr.String(), "Usage:")
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "usage error must not create the output file")
}

func TestRun_CreatesArchive(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(input, []byte("hello"), 0o644))
	out := filepath.Join(dir, "out.zip")

	var stdout, stderr strings.Builder
	err := run(context.Background(), []string{out, input}, &stdout, &stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "  adding: a.txt")
	assert.Contains(t, stdout.String(), "Successfully created '"+out+"'")

	zr, err := zip.OpenReader(out)
	require.NoError(t, err)
	defer zr.Close()
	require.Len(t, zr.File, 1)
	assert.Equal(t, "a.txt", zr.File[0].Name)
	assert.Equal(t, uint16(zip.Deflate), zr.File[0].Method)
}

func TestRun_ZstdFlagAnywhere(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(input, []byte("hello"), 0o644))
	out := filepath.Join(dir, "out.zip")

	// Flag position is not significant; any non-flag token is positional.
	var stdout, stderr strings.Builder
	err := run(context.Background(), []string{out, input, "--zstd"}, &stdout, &stderr)
	require.NoError(t, err)

	zr, err := zip.OpenReader(out)
	require.NoError(t, err)
	defer zr.Close()
	require.Len(t, zr.File, 1)
	assert.Equal(t, uint16(93), zr.File[0].Method)
}

func TestRun_WarnsOnMissingInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(input, []byte("hello"), 0o644))
	out := filepath.Join(dir, "out.zip")

	var stdout, stderr strings.Builder
	err := run(context.Background(), []string{out, filepath.Join(dir, "missing"), input}, &stdout, &stderr)
	require.NoError(t, err)

	assert.Contains(t, stderr.String(), "Warning:")
	assert.Contains(t, stderr.String(), "missing")

	zr, err := zip.OpenReader(out)
	require.NoError(t, err)
	defer zr.Close()
	require.Len(t, zr.File, 1)
	assert.Equal(t, "a.txt", zr.File[0].Name)
}

func TestRun_DirectoryInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	docs := filepath.Join(dir, "docs")
	require.NoError(t, os.MkdirAll(filepath.Join(docs, "img"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(docs, "readme.md"), []byte("# readme"), 0o644))
	out := filepath.Join(dir, "out.zip")

	var stdout, stderr strings.Builder
	err := run(context.Background(), []string{out, docs}, &stdout, &stderr)
	require.NoError(t, err)

	zr, err := zip.OpenReader(out)
	require.NoError(t, err)
	defer zr.Close()

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"img/", "readme.md"}, names)
}
