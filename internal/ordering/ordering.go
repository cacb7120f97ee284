package ordering

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/vvka-141/fnav/pkg/fnav"
)

// compareFunc orders two entries, returning a negative, zero or positive result.
type compareFunc func(a, b fnav.FileEntry) int

// Arrange sorts entries in place according to opts.SortBy and opts.Descending.
// SortNone leaves the slice untouched.
func Arrange(entries []fnav.FileEntry, opts fnav.DisplayOptions) {
	compare := comparator(opts.SortBy)
	if compare == nil {
		return
	}
	if opts.Descending {
		ascending := compare
		compare = func(a, b fnav.FileEntry) int { return ascending(b, a) }
	}
	slices.SortStableFunc(entries, compare)
}

// Filter returns the entries visible under opts: hidden entries are dropped
// unless opts.ShowHidden is set, and names must match opts.Pattern when one
// is given. The input slice is not modified.
func Filter(entries []fnav.FileEntry, opts fnav.DisplayOptions) []fnav.FileEntry {
	out := make([]fnav.FileEntry, 0, len(entries))
	for _, e := range entries {
		if e.Hidden && !opts.ShowHidden {
			continue
		}
		if opts.Pattern != "" && !matches(opts.Pattern, e.Name) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Apply filters entries and sorts the result.
func Apply(entries []fnav.FileEntry, opts fnav.DisplayOptions) []fnav.FileEntry {
	visible := Filter(entries, opts)
	Arrange(visible, opts)
	return visible
}

// ValidatePattern reports whether pattern is a usable name filter.
func ValidatePattern(pattern string) error {
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("%w: invalid name pattern %q", fnav.ErrInvalidConfig, pattern)
	}
	return nil
}

// matches treats a malformed pattern as matching nothing.
func matches(pattern, name string) bool {
	ok, err := doublestar.Match(pattern, name)
	return err == nil && ok
}

func comparator(key fnav.SortKey) compareFunc {
	switch key {
	case fnav.SortName:
		return func(a, b fnav.FileEntry) int { return strings.Compare(a.Name, b.Name) }
	case fnav.SortType:
		return func(a, b fnav.FileEntry) int { return strings.Compare(a.Type.Marker(), b.Type.Marker()) }
	case fnav.SortExtension:
		return compareExtension
	case fnav.SortCreated:
		return func(a, b fnav.FileEntry) int { return compareTimes(a.Created, b.Created) }
	case fnav.SortModified:
		return func(a, b fnav.FileEntry) int { return compareTimes(a.LastModified, b.LastModified) }
	case fnav.SortAccessed:
		return func(a, b fnav.FileEntry) int { return compareTimes(a.LastAccess, b.LastAccess) }
	case fnav.SortSize:
		return func(a, b fnav.FileEntry) int { return cmp.Compare(a.SizeBytes, b.SizeBytes) }
	default:
		return nil
	}
}

func compareExtension(a, b fnav.FileEntry) int {
	if c := comparePresence(a.HasExtension, b.HasExtension); c != 0 || !a.HasExtension {
		return c
	}
	return strings.Compare(a.Extension, b.Extension)
}

func compareTimes(a, b *time.Time) int {
	if c := comparePresence(a != nil, b != nil); c != 0 || a == nil {
		return c
	}
	return a.Compare(*b)
}

// comparePresence puts absent values first.
func comparePresence(aPresent, bPresent bool) int {
	switch {
	case aPresent == bPresent:
		return 0
	case !aPresent:
		return -1
	default:
		return 1
	}
}
