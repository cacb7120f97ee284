package filesystem

import (
	"io/fs"
	"strings"
	"time"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// Attributes holds entry metadata that fs.FileInfo does not expose portably.
type Attributes struct {
	// Accessed and Created are nil when the platform cannot report them.
	Accessed *time.Time
	Created  *time.Time

	Hidden bool
}

// FileSystemProvider gives read-only access to directories and entry metadata.
type FileSystemProvider interface {
	// Stat returns file information for the given path, following symlinks.
	Stat(path string) (FileInfo, error)

	// Lstat returns file information for the given path without following symlinks.
	Lstat(path string) (FileInfo, error)

	// ReadDir reads the entries of a directory in the order the
	// filesystem returns them. No sorting is applied.
	ReadDir(path string) ([]fs.DirEntry, error)

	// Attributes returns platform metadata for an entry previously
	// obtained through Lstat. It never fails; unknown values are left empty.
	Attributes(path string, info FileInfo) Attributes
}

// IsDotfile reports whether name follows the Unix hidden-file convention.
func IsDotfile(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

func timePtr(t time.Time) *time.Time {
	return &t
}
