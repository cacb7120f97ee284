package pathresolve

import (
	"os"
	"runtime"
	"strings"

	"github.com/vvka-141/fnav/pkg/fnav"
)

// LookupFunc reads a variable by name, reporting whether it is set.
// os.LookupEnv satisfies it.
type LookupFunc func(name string) (string, bool)

// Platform describes the path conventions the resolver applies.
type Platform struct {
	// Separator is the native path separator.
	Separator string

	// HomeVar names the variable "~" expands to.
	HomeVar string

	// RootVar names the variable a leading separator expands to.
	// Empty means a leading separator is left alone.
	RootVar string

	// VarDelimiter surrounds variable names in placeholders.
	VarDelimiter string
}

var (
	// Windows expands "~" to %USERPROFILE% and "\" to %SYSTEMDRIVE%.
	Windows = Platform{Separator: `\`, HomeVar: "USERPROFILE", RootVar: "SYSTEMDRIVE", VarDelimiter: "%"}

	// Unix expands "~" to %HOME% and keeps a leading "/" as the root.
	Unix = Platform{Separator: "/", HomeVar: "HOME", VarDelimiter: "%"}
)

// NativePlatform returns the conventions for the running operating system.
func NativePlatform() Platform {
	if runtime.GOOS == "windows" {
		return Windows
	}
	return Unix
}

// Resolver turns raw path strings into canonical paths.
// A Resolver holds no mutable state and is safe for concurrent use.
type Resolver struct {
	platform Platform
	lookup   LookupFunc
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithPlatform overrides the platform conventions.
func WithPlatform(p Platform) Option {
	return func(r *Resolver) { r.platform = p }
}

// WithLookup replaces the process environment as the variable source.
func WithLookup(fn LookupFunc) Option {
	return func(r *Resolver) {
		if fn != nil {
			r.lookup = fn
		}
	}
}

// New creates a resolver for the native platform backed by the process environment.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		platform: NativePlatform(),
		lookup:   os.LookupEnv,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Platform returns the conventions the resolver applies.
func (r *Resolver) Platform() Platform {
	return r.platform
}

// Resolve expands raw into a canonical path terminated by a single separator.
// The only possible failure is a placeholder naming an unset variable,
// reported as *fnav.MissingVariableError.
func (r *Resolver) Resolve(raw string) (string, error) {
	sep := r.platform.Separator
	delim := r.platform.VarDelimiter

	path := strings.ReplaceAll(raw, "/", sep)

	if strings.HasPrefix(path, "~") {
		path = strings.Replace(path, "~", delim+r.platform.HomeVar+delim, 1)
	}

	if r.platform.RootVar != "" && strings.HasPrefix(path, sep) {
		path = strings.Replace(path, sep, delim+r.platform.RootVar+delim, 1)
	}

	if strings.HasPrefix(path, delim) {
		expanded, err := r.expand(path)
		if err != nil {
			return "", err
		}
		path = expanded
	}

	if !strings.HasSuffix(path, sep) {
		path += sep
	}

	return collapseSeparators(path, sep), nil
}

// expand substitutes the leading placeholder. Segments after the closing
// delimiter are appended literally, with the delimiters dropped.
func (r *Resolver) expand(path string) (string, error) {
	parts := strings.Split(path, r.platform.VarDelimiter)
	if len(parts) < 2 {
		return path, nil
	}

	name := parts[1]
	value, ok := r.lookup(name)
	if !ok {
		return "", &fnav.MissingVariableError{Name: name}
	}

	var b strings.Builder
	b.WriteString(value)
	b.WriteString(r.platform.Separator)
	for _, part := range parts[2:] {
		b.WriteString(part)
	}
	return b.String(), nil
}

func collapseSeparators(path, sep string) string {
	doubled := sep + sep
	for strings.Contains(path, doubled) {
		path = strings.ReplaceAll(path, doubled, sep)
	}
	return path
}

var _ fnav.PathResolver = (*Resolver)(nil)
