// Package filesystem provides a read-only filesystem abstraction for directory listing.
//
// This package defines the operations the scanner needs (stat, lstat,
// unsorted directory reads and platform attributes), enabling testability
// through an in-memory implementation while using the OS filesystem in
// production.
//
// Key types:
//   - FileSystemProvider: Read-only access to directories and entry metadata
//   - FileInfo: File metadata, an alias of fs.FileInfo
//   - Attributes: Platform metadata fs.FileInfo does not carry
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
//
// Platform attributes:
//   - Linux: access and birth times from statx(2), dotfile hidden rule
//   - macOS: access and birth times from stat(2), UF_HIDDEN flag or dotfile
//   - Windows: times and the FILE_ATTRIBUTE_HIDDEN bit from the attribute data
//   - Elsewhere: no extra timestamps, dotfile hidden rule
package filesystem
