package vars

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/vvka-141/fnav/internal/pathresolve"
	"github.com/vvka-141/fnav/pkg/fnav"
)

// Read loads and merges the given env files. Later files override earlier ones.
// No files yields an empty map.
func Read(files ...string) (map[string]string, error) {
	if len(files) == 0 {
		return map[string]string{}, nil
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			return nil, fmt.Errorf("%w: env file %s: %w", fnav.ErrInvalidConfig, f, err)
		}
	}
	values, err := godotenv.Read(files...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse env files: %w", fnav.ErrInvalidConfig, err)
	}
	return values, nil
}

// Parse reads .env formatted content.
func Parse(content []byte) (map[string]string, error) {
	values, err := godotenv.Unmarshal(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", fnav.ErrInvalidConfig, err)
	}
	return values, nil
}

// Lookup consults values first and falls back to the process environment.
func Lookup(values map[string]string) pathresolve.LookupFunc {
	if len(values) == 0 {
		return pathresolve.EnvLookup()
	}
	return pathresolve.ChainLookup(pathresolve.MapLookup(values), pathresolve.EnvLookup())
}

// NewResolver reads files and returns a native resolver backed by them.
func NewResolver(files ...string) (*pathresolve.Resolver, error) {
	values, err := Read(files...)
	if err != nil {
		return nil, err
	}
	return pathresolve.New(pathresolve.WithLookup(Lookup(values))), nil
}
