// Package pathutil provides path manipulation for slash-separated archive paths.
package pathutil

import "strings"

// Join combines a base archive path with a child name. An empty base yields
// the bare name, so top-level children land at the archive root.
func Join(base, name string) string {
	if base == "" {
		return name
	}
	return base + "/" + name
}

// DirName converts a path to its directory entry form by ensuring a single
// trailing slash.
func DirName(name string) string {
	if strings.HasSuffix(name, "/") {
		return name
	}
	return name + "/"
}
