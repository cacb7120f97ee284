package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/fnav/internal/render"
	"github.com/vvka-141/fnav/internal/tui"
)

var listCmd = &cobra.Command{
	Use:     "list [path]",
	Aliases: []string{"ls"},
	Short:   "List the entries of a directory",
	Long: `Lists the immediate entries of a directory as a table.

The path is resolved before listing: ~ expands to the home directory and
%NAME% to the value of an environment variable. Without a path the
current directory is listed.

Output is a styled table on a terminal and tab separated text otherwise
(or with --plain), so it can be piped into other tools.

Examples:
  # Current directory, newest first
  fnav list --sort modified --desc

  # Hidden entries included, only Go and Markdown files
  fnav list -a --pattern '*.{go,md}' ~/src/fnav

  # Just names and sizes
  fnav list --columns name,size -H %TEMP%`,
	Args:              OptionalPath,
	RunE:              runList,
	ValidArgsFunction: completeDirectories,
}

type listFlagValues struct {
	display displayFlagValues
	plain   bool
}

var listFlags listFlagValues

func init() {
	rootCmd.AddCommand(listCmd)

	registerDisplayFlags(listCmd, &listFlags.display)
	listCmd.Flags().BoolVar(&listFlags.plain, "plain", false,
		"Tab separated output without styling, even on a terminal")
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	opts, err := applyDisplayFlags(cmd, listFlags.display, s.opts)
	if err != nil {
		return err
	}

	listing, err := s.navigator.Navigate(startPath(args, "."), opts)
	if err != nil {
		return err
	}

	ro := render.Options{
		Plain:      listFlags.plain || tui.DetectOutputMode() == tui.ModeNonInteractive,
		HumanSizes: listFlags.display.humanSizes,
	}
	return render.Listing(cmd.OutOrStdout(), listing, opts, ro)
}
