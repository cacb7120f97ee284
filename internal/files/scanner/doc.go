// Package scanner lists the immediate children of a directory as fnav.FileEntry values.
//
// The scanner package is responsible for:
//   - Opening a canonical directory path and classifying open failures
//   - Enumerating children in filesystem-native order (no recursion)
//   - Collecting per-entry metadata (size, timestamps, writability, link and hidden flags)
//   - Skipping entries whose metadata cannot be read instead of failing the scan
//
// The scanner is designed to be filesystem-agnostic through the use of
// filesystem.FileSystemProvider interface, enabling both production use
// with the OS filesystem and testing with in-memory filesystems.
package scanner
