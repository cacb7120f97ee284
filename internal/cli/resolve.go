package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <path>",
	Short: "Print the canonical form of a path",
	Long: `Expands ~ and %NAME% placeholders, converts separators to the native
one and prints the result with a single trailing separator.

The path does not need to exist. Only an unset variable is an error.

Examples:
  fnav resolve ~
  fnav resolve %GOPATH%/pkg/mod
  fnav resolve --env-file paths.env %PROJECTS%`,
	Args: RequirePath,
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	resolved, err := s.resolver.Resolve(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), resolved)
	return nil
}
