package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequirePath validates that exactly one path argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequirePath(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <path>

Usage: %s

Example:
  %s ~/Documents
  %s %%USERPROFILE%%/Downloads`, cmd.UseLine(), cmd.CommandPath(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}

// OptionalPath accepts zero or one path argument.
func OptionalPath(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("accepts at most 1 arg(s), received %d", len(args))
	}
	return nil
}
