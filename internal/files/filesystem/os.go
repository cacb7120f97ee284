package filesystem

import (
	"fmt"
	"io/fs"
	"os"
)

// OSFileSystem implements FileSystemProvider for the OS filesystem
type OSFileSystem struct{}

// NewOSFileSystem creates a new OS filesystem provider
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (p *OSFileSystem) Stat(path string) (FileInfo, error) {
	return os.Stat(path)
}

func (p *OSFileSystem) Lstat(path string) (FileInfo, error) {
	return os.Lstat(path)
}

// ReadDir uses (*os.File).ReadDir instead of os.ReadDir, which would sort by name.
func (p *OSFileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	dir, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	entries, err := dir.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}
	return entries, nil
}

func (p *OSFileSystem) Attributes(path string, info FileInfo) Attributes {
	if info == nil {
		return Attributes{}
	}
	return platformAttributes(path, info)
}

var _ FileSystemProvider = (*OSFileSystem)(nil)
