package components

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vvka-141/fnav/internal/files/filesystem"
	"github.com/vvka-141/fnav/pkg/fnav"
)

// PathCompleter provides tab-completion and cycling for the raw text of
// the path bar. Completion keeps what the user typed before the last
// separator, so "~/Doc" completes to "~/Documents/" rather than to an
// expanded path.
//
// Usage:
//
//	completer := NewPathCompleter(resolver, fsProvider, true) // dirs only
//
//	// On Tab press:
//	completed := completer.Next(input.Value(), currentDir)
//	input.SetValue(completed)
//
//	// On any other keypress:
//	completer.Reset()
type PathCompleter struct {
	resolver fnav.PathResolver
	fs       filesystem.FileSystemProvider
	dirsOnly bool

	matches    []match
	cycleIndex int
	lastParent string
	lastResult string
}

type match struct {
	name  string
	isDir bool
}

// NewPathCompleter creates a path completer. If dirsOnly is true, only
// directories and links to directories are offered.
func NewPathCompleter(resolver fnav.PathResolver, fsProvider filesystem.FileSystemProvider, dirsOnly bool) *PathCompleter {
	if resolver == nil {
		panic("resolver cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &PathCompleter{resolver: resolver, fs: fsProvider, dirsOnly: dirsOnly}
}

// Next returns the next completion for input. Input without a separator
// completes against base, the directory currently displayed.
// Pressing Tab again on the returned text cycles through the matches.
func (c *PathCompleter) Next(input, base string) string {
	if len(c.matches) > 0 && input == c.lastResult {
		c.cycleIndex = (c.cycleIndex + 1) % len(c.matches)
		c.lastResult = c.lastParent + c.matches[c.cycleIndex].format()
		return c.lastResult
	}

	parent, prefix := splitInput(input)
	dir, ok := c.directory(parent, base)
	if !ok {
		c.Reset()
		return input
	}

	matches := c.findMatches(dir, prefix)
	switch len(matches) {
	case 0:
		c.Reset()
		return input
	case 1:
		// A unique match is final; the next Tab descends into it.
		c.Reset()
		return parent + matches[0].format()
	}

	c.matches = matches
	c.lastParent = parent
	c.cycleIndex = 0

	// First Tab: extend to the common prefix when that adds something.
	if common := longestCommonPrefix(matches); len(common) > len(prefix) {
		c.cycleIndex = -1
		c.lastResult = parent + common
		return c.lastResult
	}

	c.lastResult = parent + matches[0].format()
	return c.lastResult
}

// Candidates returns the names currently being cycled through.
func (c *PathCompleter) Candidates() []string {
	names := make([]string, len(c.matches))
	for i, m := range c.matches {
		names[i] = m.format()
	}
	return names
}

// Reset clears the cycle state. Call this when the user types a non-Tab key.
func (c *PathCompleter) Reset() {
	c.matches = nil
	c.cycleIndex = 0
	c.lastParent = ""
	c.lastResult = ""
}

func (c *PathCompleter) directory(parent, base string) (string, bool) {
	if parent == "" {
		if base != "" {
			return base, true
		}
		parent = "."
	}
	dir, err := c.resolver.Resolve(parent)
	if err != nil {
		return "", false
	}
	return dir, true
}

func (c *PathCompleter) findMatches(dir, prefix string) []match {
	entries, err := c.fs.ReadDir(dir)
	if err != nil {
		return nil
	}

	var matches []match
	lowPrefix := strings.ToLower(prefix)

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(strings.ToLower(name), lowPrefix) {
			continue
		}
		isDir := entry.IsDir()
		if entry.Type()&fs.ModeSymlink != 0 {
			if info, err := c.fs.Stat(filepath.Join(dir, name)); err == nil {
				isDir = info.IsDir()
			}
		}
		if c.dirsOnly && !isDir {
			continue
		}
		matches = append(matches, match{name: name, isDir: isDir})
	}

	slices.SortFunc(matches, func(a, b match) int { return strings.Compare(a.name, b.name) })
	return matches
}

// format appends "/" to directories. The resolver turns it into the
// native separator.
func (m match) format() string {
	if m.isDir {
		return m.name + "/"
	}
	return m.name
}

// splitInput splits raw input after its last separator.
//
//	"~/src/com" → ("~/src/", "com")
//	"~/src/"    → ("~/src/", "")
//	`C:\Us`     → (`C:\`, "Us")
//	"my"        → ("", "my")
func splitInput(input string) (parent, prefix string) {
	i := strings.LastIndexAny(input, `/\`)
	if i < 0 {
		return "", input
	}
	return input[:i+1], input[i+1:]
}

// longestCommonPrefix finds the longest common prefix among match names (case-insensitive).
func longestCommonPrefix(matches []match) string {
	if len(matches) == 0 {
		return ""
	}
	first := matches[0].name
	lowFirst := strings.ToLower(first)
	for i := 0; i < len(lowFirst) && i < len(first); i++ {
		for _, m := range matches[1:] {
			s := strings.ToLower(m.name)
			if i >= len(s) || s[i] != lowFirst[i] {
				return first[:i]
			}
		}
	}
	return first
}
