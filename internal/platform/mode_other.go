//go:build !unix

package platform

import "io/fs"

// Mode reports that no Unix mode bitmask is available on this platform.
// Callers must not synthesize a default.
func Mode(_ fs.FileInfo) (fs.FileMode, bool) {
	return 0, false
}
