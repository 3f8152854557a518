//go:build unix

package platform

import "io/fs"

// Mode returns the file's mode bitmask verbatim on Unix systems, including
// file-type bits.
func Mode(info fs.FileInfo) (fs.FileMode, bool) {
	return info.Mode(), true
}
