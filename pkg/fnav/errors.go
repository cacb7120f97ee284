package fnav

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	entries, err := scanner.Scan(path, false)
//	if errors.Is(err, fnav.ErrNotFound) {
//	    // Offer to pick another directory
//	}
var (
	// ErrInvalidConfig indicates the provided configuration or flag value is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMissingVariable indicates a path placeholder named an unset variable.
	ErrMissingVariable = errors.New("environment variable not set")

	// ErrNotFound indicates the requested directory does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotADirectory indicates the requested path exists but is not a directory.
	ErrNotADirectory = errors.New("not a directory")

	// ErrPermissionDenied indicates the directory could not be opened or read.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrScanFailed covers every other directory-level scan failure.
	ErrScanFailed = errors.New("scan failed")

	// ErrNotInteractive indicates an interactive command was run without a terminal.
	ErrNotInteractive = errors.New("not running in an interactive terminal")
)

// MissingVariableError reports a %NAME% placeholder with no value.
type MissingVariableError struct {
	Name string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("cannot resolve path: environment variable %q is not set", e.Name)
}

func (e *MissingVariableError) Is(target error) bool {
	return target == ErrMissingVariable
}

// ScanError reports a directory that could not be enumerated.
// Kind is one of ErrNotFound, ErrNotADirectory, ErrPermissionDenied or ErrScanFailed.
type ScanError struct {
	Path string
	Kind error
	Err  error
}

func (e *ScanError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("cannot open folder %s: %v", e.Path, e.Kind)
	}
	return fmt.Sprintf("cannot open folder %s: %v: %v", e.Path, e.Kind, e.Err)
}

func (e *ScanError) Is(target error) bool {
	return target == e.Kind
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrMissingVariable):
		return ExitMissingVariable
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrNotADirectory):
		return ExitNotADirectory
	case errors.Is(err, ErrPermissionDenied):
		return ExitPermissionDenied
	case errors.Is(err, ErrNotInteractive):
		return ExitUsageError
	}

	// Cobra reports usage problems as plain errors
	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"arg(s), received",
	"required flag",
	"invalid argument",
	"missing required argument",
}
