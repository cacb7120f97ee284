// Package navigator ties path resolution, scanning and ordering into one navigation step.
package navigator

import (
	"fmt"

	"github.com/vvka-141/fnav/internal/ordering"
	"github.com/vvka-141/fnav/pkg/fnav"
)

// Navigator turns a raw path typed by a user into an ordered listing.
type Navigator struct {
	resolver fnav.PathResolver
	scanner  fnav.DirectoryScanner
	logger   fnav.Logger
}

// New creates a navigator. Panics if any dependency is nil.
func New(resolver fnav.PathResolver, scanner fnav.DirectoryScanner, logger fnav.Logger) *Navigator {
	if resolver == nil {
		panic("resolver cannot be nil")
	}
	if scanner == nil {
		panic("scanner cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Navigator{resolver: resolver, scanner: scanner, logger: logger}
}

// Navigate resolves raw, scans the directory and applies opts.
// On failure nothing is returned; callers keep whatever they displayed before.
func (n *Navigator) Navigate(raw string, opts fnav.DisplayOptions) (fnav.Listing, error) {
	listing, err := n.Load(raw, opts.ShowHidden)
	if err != nil {
		return fnav.Listing{}, err
	}
	listing.Entries = ordering.Apply(listing.Entries, opts)
	return listing, nil
}

// Load resolves and scans raw without ordering the result.
// The TUI keeps this unordered listing so it can re-sort without rescanning.
func (n *Navigator) Load(raw string, includeHidden bool) (fnav.Listing, error) {
	path, err := n.resolver.Resolve(raw)
	if err != nil {
		return fnav.Listing{}, err
	}
	n.logger.Verbose("Resolved %q to %s", raw, path)

	entries, err := n.scanner.Scan(path, includeHidden)
	if err != nil {
		return fnav.Listing{}, fmt.Errorf("failed to list %q: %w", raw, err)
	}
	return fnav.Listing{Path: path, Entries: entries}, nil
}
