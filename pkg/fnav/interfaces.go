package fnav

// PathResolver expands user-facing path syntax into a canonical,
// separator-terminated path.
type PathResolver interface {
	Resolve(raw string) (string, error)
}

// DirectoryScanner enumerates the immediate children of a canonical path.
type DirectoryScanner interface {
	Scan(path string, includeHidden bool) ([]FileEntry, error)
}
