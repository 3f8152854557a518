package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoin(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "name", Join("", "name"))
	assert.Equal(t, "base/name", Join("base", "name"))
	assert.Equal(t, "a/b/name", Join("a/b", "name"))
}

func TestDirName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "dir/", DirName("dir"))
	assert.Equal(t, "dir/", DirName("dir/"))
	assert.Equal(t, "a/b/", DirName("a/b"))
}
