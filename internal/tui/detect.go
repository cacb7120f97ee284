package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents the interaction mode for fnav.
type Mode int

const (
	// ModeNonInteractive is used for CI/CD pipelines, scripts, and piped input.
	ModeNonInteractive Mode = iota
	// ModeInteractive is used when a human is at the terminal.
	ModeInteractive
)

// forcedPlain reports whether the environment asks for plain, unstyled output.
//   - FNAV_NON_INTERACTIVE=1
//   - CI set (common CI/CD convention)
//   - NO_COLOR set (accessibility/automation indicator)
func forcedPlain() bool {
	return os.Getenv("FNAV_NON_INTERACTIVE") == "1" ||
		os.Getenv("CI") != "" ||
		os.Getenv("NO_COLOR") != ""
}

// DetectMode determines whether the interactive browser can run.
// It needs both stdin and stdout attached to a terminal.
func DetectMode() Mode {
	if forcedPlain() {
		return ModeNonInteractive
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModeNonInteractive
	}
	return ModeInteractive
}

// DetectOutputMode decides how listings are printed. Only stdout matters
// here, so `fnav list < /dev/null` still gets a styled table.
func DetectOutputMode() Mode {
	if forcedPlain() {
		return ModeNonInteractive
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModeNonInteractive
	}
	return ModeInteractive
}

// IsInteractive is a convenience function that returns true if running in interactive mode.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
