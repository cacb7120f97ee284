package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fnav/internal/render"
	"github.com/vvka-141/fnav/pkg/fnav"
)

// completeSortKeys provides shell completion for --sort values.
func completeSortKeys(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, name := range fnav.SortKeyNames() {
		if strings.HasPrefix(name, toComplete) {
			matches = append(matches, name)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeColumns provides shell completion for the last element of a
// comma separated --columns value. Columns already listed are not offered again.
func completeColumns(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	done := ""
	current := toComplete
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		done = toComplete[:i+1]
		current = toComplete[i+1:]
	}

	used := make(map[string]bool)
	for _, c := range strings.Split(done, ",") {
		used[strings.TrimSpace(c)] = true
	}

	var matches []string
	for _, name := range render.ColumnNames() {
		if used[name] || !strings.HasPrefix(name, current) {
			continue
		}
		matches = append(matches, done+name)
	}
	return matches, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

// completeDirectories provides shell completion for directory paths.
func completeDirectories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	// Let the shell handle directory completion
	return nil, cobra.ShellCompDirectiveFilterDirs
}
