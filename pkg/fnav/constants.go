package fnav

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // Command completed successfully
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid configuration or option values
	ExitMissingVariable  = 11 // Path placeholder names an unset variable
	ExitNotFound         = 12 // Directory does not exist
	ExitNotADirectory    = 13 // Path exists but is not a directory
	ExitPermissionDenied = 14 // Directory cannot be read
)

// Type markers, one character per FileType.
const (
	MarkerWritableDirectory   = "d"
	MarkerUnwritableDirectory = "D"
	MarkerWritableFile        = "f"
	MarkerUnwritableFile      = "F"
	MarkerWritableLink        = "l"
	MarkerUnwritableLink      = "L"
	MarkerUnknown             = "?"
)

const (
	// TimestampLayout formats entry timestamps for display.
	TimestampLayout = "2006-01-02 15:04:05"

	// MaxNameWidth is the number of characters of a name shown before it is truncated.
	MaxNameWidth = 30

	// TruncationSuffix is appended to names cut at MaxNameWidth.
	TruncationSuffix = "..."
)
