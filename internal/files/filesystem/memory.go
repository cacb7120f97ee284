package filesystem

import (
	"io/fs"
	"path"
	"path/filepath"
	"syscall"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory entries
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.mode.IsDir() }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryNode is one file, directory or symlink
type memoryNode struct {
	info     *memoryFileInfo
	target   string   // symlink target, absolute
	children []string // child names in insertion order
	attrs    *Attributes
	failStat bool
	statErr  error
	denyRead bool
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Directory reads return children in insertion order, standing in for
// the unsorted order of a real filesystem.
type MemoryFileSystem struct {
	nodes map[string]*memoryNode // map of absolute path -> node
	root  string                 // root directory path
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		nodes: make(map[string]*memoryNode),
		root:  root,
	}
	mfs.nodes[root] = &memoryNode{info: &memoryFileInfo{
		name:    path.Base(root),
		mode:    0755 | fs.ModeDir,
		modTime: time.Now(),
	}}
	return mfs
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.AddFileWithTime(filePath, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	mfs.add(filePath, &memoryFileInfo{
		size:    int64(len(content)),
		mode:    0644,
		modTime: modTime,
	}, "")
}

// AddDir adds an empty directory
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	mfs.add(dirPath, &memoryFileInfo{
		mode:    0755 | fs.ModeDir,
		modTime: time.Now(),
	}, "")
}

// AddSymlink adds a symbolic link pointing at target.
// A relative target is interpreted against the link's directory.
func (mfs *MemoryFileSystem) AddSymlink(linkPath, target string) {
	abs := mfs.abs(linkPath)
	target = filepath.ToSlash(target)
	if !path.IsAbs(target) {
		target = path.Join(path.Dir(abs), target)
	}
	mfs.add(linkPath, &memoryFileInfo{
		size:    int64(len(target)),
		mode:    0777 | fs.ModeSymlink,
		modTime: time.Now(),
	}, path.Clean(target))
}

// SetMode replaces the permission bits of an existing entry.
func (mfs *MemoryFileSystem) SetMode(entryPath string, perm fs.FileMode) {
	if n, ok := mfs.nodes[mfs.abs(entryPath)]; ok {
		n.info.mode = n.info.mode.Type() | perm.Perm()
	}
}

// SetAttributes overrides the platform attributes reported for an entry.
func (mfs *MemoryFileSystem) SetAttributes(entryPath string, attrs Attributes) {
	if n, ok := mfs.nodes[mfs.abs(entryPath)]; ok {
		n.attrs = &attrs
	}
}

// FailStat makes Stat and Lstat of the entry fail as if it vanished.
func (mfs *MemoryFileSystem) FailStat(entryPath string) {
	if n, ok := mfs.nodes[mfs.abs(entryPath)]; ok {
		n.failStat = true
	}
}

// SetStatError makes Stat and ReadDir of the entry fail with err while
// Lstat keeps working, like Windows rejecting a file path that ends in a
// separator.
func (mfs *MemoryFileSystem) SetStatError(entryPath string, err error) {
	if n, ok := mfs.nodes[mfs.abs(entryPath)]; ok {
		n.statErr = err
	}
}

// DenyRead makes reading the directory fail with a permission error.
func (mfs *MemoryFileSystem) DenyRead(dirPath string) {
	if n, ok := mfs.nodes[mfs.abs(dirPath)]; ok {
		n.denyRead = true
	}
}

func (mfs *MemoryFileSystem) add(entryPath string, info *memoryFileInfo, target string) {
	abs := mfs.abs(entryPath)
	info.name = path.Base(abs)

	if existing, ok := mfs.nodes[abs]; ok {
		existing.info = info
		existing.target = target
		return
	}

	mfs.ensureDirectoriesExist(abs)
	mfs.nodes[abs] = &memoryNode{info: info, target: target}

	parent := mfs.nodes[path.Dir(abs)]
	parent.children = append(parent.children, info.name)
}

// abs calculates the absolute path within the virtual filesystem
func (mfs *MemoryFileSystem) abs(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(entryPath string) {
	dir := path.Dir(entryPath)
	if dir == entryPath {
		return
	}
	if _, exists := mfs.nodes[dir]; exists {
		return
	}

	mfs.ensureDirectoriesExist(dir)
	mfs.nodes[dir] = &memoryNode{info: &memoryFileInfo{
		name:    path.Base(dir),
		mode:    0755 | fs.ModeDir,
		modTime: time.Now(),
	}}
	parent := mfs.nodes[path.Dir(dir)]
	if parent != nil && parent != mfs.nodes[dir] {
		parent.children = append(parent.children, path.Base(dir))
	}
}

// Lstat implements FileSystemProvider.Lstat
func (mfs *MemoryFileSystem) Lstat(entryPath string) (FileInfo, error) {
	n, err := mfs.lookup("lstat", entryPath)
	if err != nil {
		return nil, err
	}
	return n.info, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(entryPath string) (FileInfo, error) {
	n, _, err := mfs.follow("stat", entryPath)
	if err != nil {
		return nil, err
	}
	return n.info, nil
}

// ReadDir implements FileSystemProvider.ReadDir
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]fs.DirEntry, error) {
	n, dir, err := mfs.follow("open", dirPath)
	if err != nil {
		return nil, err
	}
	if !n.info.IsDir() {
		return nil, &fs.PathError{Op: "readdirent", Path: dirPath, Err: syscall.ENOTDIR}
	}
	if n.denyRead {
		return nil, &fs.PathError{Op: "open", Path: dirPath, Err: fs.ErrPermission}
	}

	entries := make([]fs.DirEntry, 0, len(n.children))
	for _, name := range n.children {
		child := mfs.nodes[path.Join(dir, name)]
		entries = append(entries, fs.FileInfoToDirEntry(child.info))
	}
	return entries, nil
}

// Attributes implements FileSystemProvider.Attributes.
// Entries without explicit attributes follow the dotfile hidden rule and
// report no access or creation time.
func (mfs *MemoryFileSystem) Attributes(entryPath string, info FileInfo) Attributes {
	if n, ok := mfs.nodes[mfs.abs(entryPath)]; ok && n.attrs != nil {
		return *n.attrs
	}
	if info == nil {
		return Attributes{}
	}
	return Attributes{Hidden: IsDotfile(info.Name())}
}

func (mfs *MemoryFileSystem) lookup(op, entryPath string) (*memoryNode, error) {
	n, ok := mfs.nodes[mfs.abs(entryPath)]
	if !ok || n.failStat {
		return nil, &fs.PathError{Op: op, Path: entryPath, Err: fs.ErrNotExist}
	}
	return n, nil
}

// follow resolves symlinks, giving up after a fixed number of hops like the kernel does.
// It returns the node and its resolved absolute path.
func (mfs *MemoryFileSystem) follow(op, entryPath string) (*memoryNode, string, error) {
	abs := mfs.abs(entryPath)
	for hops := 0; ; hops++ {
		n, ok := mfs.nodes[abs]
		if !ok || n.failStat {
			return nil, "", &fs.PathError{Op: op, Path: entryPath, Err: fs.ErrNotExist}
		}
		if n.statErr != nil {
			return nil, "", &fs.PathError{Op: op, Path: entryPath, Err: n.statErr}
		}
		if n.info.mode&fs.ModeSymlink == 0 {
			return n, abs, nil
		}
		if hops >= 40 {
			return nil, "", &fs.PathError{Op: op, Path: entryPath, Err: syscall.ELOOP}
		}
		abs = n.target
	}
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)
