package fnav

import (
	"fmt"
	"strings"
	"time"
)

// FileType classifies a directory entry by kind and writability.
type FileType int

const (
	// Unknown is the zero value and marks an entry that could not be classified.
	Unknown FileType = iota
	WritableDirectory
	UnwritableDirectory
	WritableFile
	UnwritableFile
	WritableLink
	UnwritableLink
)

// Classify maps the three entry flags to a FileType.
// The link flag wins over the directory flag: a symlink pointing at a
// directory is reported as a link.
func Classify(isDir, writable, isLink bool) FileType {
	switch {
	case isLink && writable:
		return WritableLink
	case isLink:
		return UnwritableLink
	case isDir && writable:
		return WritableDirectory
	case isDir:
		return UnwritableDirectory
	case writable:
		return WritableFile
	default:
		return UnwritableFile
	}
}

// Marker returns the single-character type code used for display and sorting.
func (t FileType) Marker() string {
	switch t {
	case WritableDirectory:
		return MarkerWritableDirectory
	case UnwritableDirectory:
		return MarkerUnwritableDirectory
	case WritableFile:
		return MarkerWritableFile
	case UnwritableFile:
		return MarkerUnwritableFile
	case WritableLink:
		return MarkerWritableLink
	case UnwritableLink:
		return MarkerUnwritableLink
	default:
		return MarkerUnknown
	}
}

// Writable reports whether the type encodes a writable entry.
func (t FileType) Writable() bool {
	return t == WritableDirectory || t == WritableFile || t == WritableLink
}

func (t FileType) String() string {
	switch t {
	case WritableDirectory:
		return "writable directory"
	case UnwritableDirectory:
		return "directory"
	case WritableFile:
		return "writable file"
	case UnwritableFile:
		return "file"
	case WritableLink:
		return "writable link"
	case UnwritableLink:
		return "link"
	default:
		return "unknown"
	}
}

// FileEntry is one immediate child of a scanned directory.
// Entries are built fresh on every scan and never modified afterwards.
type FileEntry struct {
	Type     FileType
	Writable bool

	// Name holds the raw name bytes as reported by the filesystem.
	Name string

	Extension    string
	HasExtension bool

	SizeBytes uint64

	// Nil when the platform cannot report the timestamp.
	LastAccess   *time.Time
	LastModified *time.Time
	Created      *time.Time

	Hidden bool

	// IsDir is true for directories and for links that resolve to one.
	IsDir  bool
	IsLink bool
}

// NewFileEntry builds an entry from its flags, deriving Type and Extension.
func NewFileEntry(name string, isDir, writable, isLink bool) FileEntry {
	ext, ok := ExtensionOf(name)
	return FileEntry{
		Type:         Classify(isDir, writable, isLink),
		Writable:     writable,
		Name:         name,
		Extension:    ext,
		HasExtension: ok,
		IsDir:        isDir,
		IsLink:       isLink,
	}
}

// DisplayName returns the name with invalid UTF-8 sequences replaced.
func (e FileEntry) DisplayName() string {
	return strings.ToValidUTF8(e.Name, "�")
}

// ExtensionOf returns the last dot-delimited segment of name.
// ok is false when the name contains no dot. A leading dot counts, so
// dotfiles have an extension, unlike filepath.Ext-style stem rules.
//
//	"a.txt"      → ("txt", true)
//	"arch.tar.gz"→ ("gz", true)
//	".secret"    → ("secret", true)
//	"trailing."  → ("", true)
//	"README"     → ("", false)
func ExtensionOf(name string) (ext string, ok bool) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return "", false
	}
	return name[i+1:], true
}

// SortKey selects the attribute entries are ordered by.
type SortKey int

const (
	// SortNone keeps the filesystem-native scan order.
	SortNone SortKey = iota
	SortName
	SortType
	SortExtension
	SortCreated
	SortModified
	SortAccessed
	SortSize
)

var sortKeyNames = map[SortKey]string{
	SortNone:      "none",
	SortName:      "name",
	SortType:      "type",
	SortExtension: "ext",
	SortCreated:   "created",
	SortModified:  "modified",
	SortAccessed:  "accessed",
	SortSize:      "size",
}

// SortKeys lists every sort key in cycling order.
var SortKeys = []SortKey{SortNone, SortName, SortType, SortExtension, SortCreated, SortModified, SortAccessed, SortSize}

func (k SortKey) String() string {
	if name, ok := sortKeyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("SortKey(%d)", int(k))
}

// Next returns the key following k in SortKeys, wrapping around.
func (k SortKey) Next() SortKey {
	for i, key := range SortKeys {
		if key == k {
			return SortKeys[(i+1)%len(SortKeys)]
		}
	}
	return SortNone
}

// ParseSortKey parses a sort key name. The empty string means SortNone.
func ParseSortKey(s string) (SortKey, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SortNone, nil
	}
	switch s {
	case "extension":
		return SortExtension, nil
	case "marker":
		return SortType, nil
	}
	for key, name := range sortKeyNames {
		if name == s {
			return key, nil
		}
	}
	return SortNone, fmt.Errorf("%w: unknown sort key %q (valid: %s)", ErrInvalidConfig, s, strings.Join(SortKeyNames(), ", "))
}

// SortKeyNames returns the canonical names of all sort keys.
func SortKeyNames() []string {
	names := make([]string, 0, len(SortKeys))
	for _, k := range SortKeys {
		names = append(names, k.String())
	}
	return names
}

// DisplayOptions configures filtering, ordering and column visibility.
// The presentation layer owns it; the core only reads it.
type DisplayOptions struct {
	ShowHidden    bool
	ShowType      bool
	ShowExtension bool
	ShowSize      bool
	ShowAccessed  bool
	ShowModified  bool
	ShowCreated   bool

	SortBy     SortKey
	Descending bool

	// Pattern, when non-empty, keeps only entries whose name matches this glob.
	Pattern string
}

// DefaultDisplayOptions returns the options used when no configuration is present.
func DefaultDisplayOptions() DisplayOptions {
	return DisplayOptions{
		ShowHidden:    false,
		ShowType:      true,
		ShowExtension: true,
		ShowSize:      true,
		ShowAccessed:  false,
		ShowModified:  true,
		ShowCreated:   true,
		SortBy:        SortNone,
		Descending:    false,
	}
}

// Listing is the result of navigating to a directory.
type Listing struct {
	Path    string
	Entries []FileEntry
}
