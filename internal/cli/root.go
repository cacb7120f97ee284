package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fnav",
	Short: "Directory browser with %VAR% path expansion",
	Long: `fnav lists directories the way a file manager shows them: one row per
entry with a type marker, name, extension, size and timestamps.

Paths may use ~ for the home directory and %NAME% placeholders for
environment variables, on every platform:

  fnav list ~/projects
  fnav list %GOPATH%/src
  fnav browse %APPDATA%

Variables are read from --env-file files, the env_files list in fnav.yaml,
a .env file in the working directory, and the process environment.

Type markers:
  d / D  directory (writable / read-only)
  f / F  file      (writable / read-only)
  l / L  link      (writable / read-only)
  ?      unknown

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or option values
  11 - Path uses an environment variable that is not set
  12 - Directory not found
  13 - Path is not a directory
  14 - Permission denied`,
	SilenceUsage: true,
}

// envFileFlags holds the --env-file values in the order given.
var envFileFlags []string

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(rootCmd.OutOrStdout())
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for fnav")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().String("config", "",
		"Directory containing fnav.yaml\n"+
			"Precedence: --config > $FNAV_CONFIG_DIR > user config directory")
	rootCmd.PersistentFlags().StringSliceVar(&envFileFlags, "env-file", nil,
		"Read %VAR% values from a .env file (repeatable, later files win)")

	_ = rootCmd.MarkPersistentFlagDirname("config")
	_ = rootCmd.MarkPersistentFlagFilename("env-file", "env")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
