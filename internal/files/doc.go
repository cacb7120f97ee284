// Package files groups the filesystem access used by fnav into sub-packages.
//
//   - filesystem: provider abstraction with OS and in-memory implementations,
//     plus per-platform attribute lookup (hidden flag, access and birth times)
//   - scanner: one-level directory enumeration into fnav.FileEntry values
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/fnav/internal/files/filesystem"
//	    "github.com/vvka-141/fnav/internal/files/scanner"
//	)
//
//	s := scanner.NewScannerWithFS(logger, filesystem.NewOSFileSystem())
//	entries, err := s.Scan("/home/me/", false)
//
// Both packages are read-only: nothing here opens file contents or
// modifies the filesystem.
package files
