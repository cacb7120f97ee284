package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/fnav/internal/ordering"
	"github.com/vvka-141/fnav/internal/render"
	"github.com/vvka-141/fnav/pkg/fnav"
)

// displayFlagValues holds the listing flags shared by list and browse.
type displayFlagValues struct {
	all        bool
	sort       string
	desc       bool
	pattern    string
	columns    string
	humanSizes bool
}

func registerDisplayFlags(cmd *cobra.Command, v *displayFlagValues) {
	cmd.Flags().BoolVarP(&v.all, "all", "a", false,
		"Show hidden entries")
	cmd.Flags().StringVarP(&v.sort, "sort", "s", "",
		"Sort key: none, name, type, ext, created, modified, accessed, size")
	cmd.Flags().BoolVarP(&v.desc, "desc", "r", false,
		"Sort in descending order")
	cmd.Flags().StringVar(&v.pattern, "pattern", "",
		"Only show names matching a glob pattern (e.g. '*.{go,md}')")
	cmd.Flags().StringVar(&v.columns, "columns", "",
		"Comma separated columns to show: type, name, ext, size, accessed, created, modified")
	cmd.Flags().BoolVarP(&v.humanSizes, "human", "H", false,
		"Print sizes in decimal units (kB, MB)")

	_ = cmd.RegisterFlagCompletionFunc("sort", completeSortKeys)
	_ = cmd.RegisterFlagCompletionFunc("columns", completeColumns)
}

// applyDisplayFlags overrides configured options with flags the user set.
// Flags left at their defaults never override fnav.yaml.
func applyDisplayFlags(cmd *cobra.Command, v displayFlagValues, opts fnav.DisplayOptions) (fnav.DisplayOptions, error) {
	flags := cmd.Flags()

	if flags.Changed("all") {
		opts.ShowHidden = v.all
	}
	if flags.Changed("sort") {
		key, err := fnav.ParseSortKey(v.sort)
		if err != nil {
			return opts, err
		}
		opts.SortBy = key
	}
	if flags.Changed("desc") {
		opts.Descending = v.desc
	}
	if flags.Changed("pattern") {
		if err := ordering.ValidatePattern(v.pattern); err != nil {
			return opts, err
		}
		opts.Pattern = v.pattern
	}
	if flags.Changed("columns") {
		if err := render.ParseColumns(v.columns, &opts); err != nil {
			return opts, err
		}
	}
	return opts, nil
}
