package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fnav/internal/tui"
	"github.com/vvka-141/fnav/internal/tui/components"
)

var browseCmd = &cobra.Command{
	Use:   "browse [path]",
	Short: "Browse directories interactively",
	Long: `Opens an interactive browser on a directory.

Without a path the browser starts at start_path from fnav.yaml (default ~).

Keys:
  ↑/↓ or j/k   move
  enter        open directory
  backspace    parent directory
  e            edit the path bar (tab completes, enter goes, esc cancels)
  s / r        cycle sort key / reverse direction
  .            show or hide hidden entries
  R            rescan
  q            quit

This command requires an interactive terminal. Use 'fnav list' in scripts.

Examples:
  fnav browse
  fnav browse %USERPROFILE%/Downloads --sort modified --desc

  # Print the last directory on exit, e.g. for: cd "$(fnav browse --print-path)"
  fnav browse --print-path`,
	Args:              OptionalPath,
	RunE:              runBrowse,
	ValidArgsFunction: completeDirectories,
}

type browseFlagValues struct {
	display   displayFlagValues
	printPath bool
}

var browseFlags browseFlagValues

func init() {
	rootCmd.AddCommand(browseCmd)

	registerDisplayFlags(browseCmd, &browseFlags.display)
	browseCmd.Flags().BoolVar(&browseFlags.printPath, "print-path", false,
		"Print the directory shown when the browser exits")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	opts, err := applyDisplayFlags(cmd, browseFlags.display, s.opts)
	if err != nil {
		return err
	}

	s.silence()

	completer := components.NewPathCompleter(s.resolver, s.fs, true)
	browser := tui.NewBrowser(s.navigator, completer, opts, startPath(args, s.cfg.StartPath)).
		WithHumanSizes(browseFlags.display.humanSizes)

	last, err := tui.RunBrowser(browser)
	if err != nil {
		return err
	}

	if browseFlags.printPath && last != "" {
		fmt.Fprintln(cmd.OutOrStdout(), last)
	}
	return nil
}
