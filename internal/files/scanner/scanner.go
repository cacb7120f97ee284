package scanner

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/vvka-141/fnav/internal/files/filesystem"
	"github.com/vvka-141/fnav/pkg/fnav"
)

// Scanner enumerates directories into fnav.FileEntry values.
// Scanner holds no per-scan state; each Scan call works on its own values.
type Scanner struct {
	logger     fnav.Logger
	fsProvider filesystem.FileSystemProvider
}

// NewScanner creates a new scanner over the OS filesystem.
// Panics if logger is nil.
func NewScanner(logger fnav.Logger) *Scanner {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Scanner{
		logger:     logger,
		fsProvider: filesystem.NewOSFileSystem(),
	}
}

// NewScannerWithFS creates a new scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if logger or fsProvider is nil.
func NewScannerWithFS(logger fnav.Logger, fsProvider filesystem.FileSystemProvider) *Scanner {
	if logger == nil {
		panic("logger cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		logger:     logger,
		fsProvider: fsProvider,
	}
}

// Scan lists the immediate children of path.
//
// The returned slice is in filesystem-native order. Hidden entries are
// dropped unless includeHidden is set. Children whose metadata cannot be
// read are skipped. Directory-level failures are returned as *fnav.ScanError.
func (s *Scanner) Scan(path string, includeHidden bool) ([]fnav.FileEntry, error) {
	info, err := s.fsProvider.Stat(path)
	if err != nil {
		if s.isFileBehindSeparator(path, err) {
			return nil, &fnav.ScanError{Path: path, Kind: fnav.ErrNotADirectory, Err: err}
		}
		return nil, classify(path, err)
	}
	if !info.IsDir() {
		return nil, &fnav.ScanError{Path: path, Kind: fnav.ErrNotADirectory}
	}

	dirEntries, err := s.fsProvider.ReadDir(path)
	if err != nil {
		return nil, classify(path, err)
	}

	entries := make([]fnav.FileEntry, 0, len(dirEntries))
	skipped := 0
	for _, de := range dirEntries {
		entry, err := s.buildEntry(filepath.Join(path, de.Name()))
		if err != nil {
			skipped++
			s.logger.Verbose("Skipping %s: %v", de.Name(), err)
			continue
		}
		if entry.Hidden && !includeHidden {
			continue
		}
		entries = append(entries, entry)
	}

	s.logger.Verbose("Scanned %s: %d entries, %d skipped", path, len(entries), skipped)
	return entries, nil
}

// buildEntry reads the metadata of a single child.
func (s *Scanner) buildEntry(childPath string) (fnav.FileEntry, error) {
	info, err := s.fsProvider.Lstat(childPath)
	if err != nil {
		return fnav.FileEntry{}, err
	}

	isLink := info.Mode()&fs.ModeSymlink != 0
	isDir := info.IsDir()
	if isLink {
		// Broken links stay plain links.
		if target, err := s.fsProvider.Stat(childPath); err == nil {
			isDir = target.IsDir()
		}
	}

	writable := info.Mode().Perm()&0o222 != 0
	entry := fnav.NewFileEntry(info.Name(), isDir, writable, isLink)

	if size := info.Size(); size > 0 {
		entry.SizeBytes = uint64(size)
	}
	if mod := info.ModTime(); !mod.IsZero() {
		entry.LastModified = &mod
	}

	attrs := s.fsProvider.Attributes(childPath, info)
	entry.LastAccess = attrs.Accessed
	entry.Created = attrs.Created
	entry.Hidden = attrs.Hidden

	return entry, nil
}

// isFileBehindSeparator reports whether a stat failure comes from a
// trailing separator on something that is not a directory. Windows rejects
// such paths as invalid names instead of reporting ENOTDIR.
func (s *Scanner) isFileBehindSeparator(path string, err error) bool {
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return false
	}
	trimmed := strings.TrimRight(path, "/"+string(filepath.Separator))
	if trimmed == "" || trimmed == path {
		return false
	}
	info, lerr := s.fsProvider.Lstat(trimmed)
	if lerr != nil {
		return false
	}
	if info.Mode()&fs.ModeSymlink != 0 {
		target, serr := s.fsProvider.Stat(trimmed)
		return serr == nil && !target.IsDir()
	}
	return !info.IsDir()
}

// classify wraps a directory-level failure with its fnav error kind.
func classify(path string, err error) error {
	kind := fnav.ErrScanFailed
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = fnav.ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = fnav.ErrPermissionDenied
	case errors.Is(err, syscall.ENOTDIR):
		kind = fnav.ErrNotADirectory
	}
	return &fnav.ScanError{Path: path, Kind: kind, Err: err}
}

// Verify Scanner implements the interface at compile time
var _ fnav.DirectoryScanner = (*Scanner)(nil)

