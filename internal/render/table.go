package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vvka-141/fnav/pkg/fnav"
)

// Options controls how a listing is written.
type Options struct {
	// Plain disables borders and styling.
	Plain bool

	// HumanSizes prints sizes in decimal units instead of bytes.
	HumanSizes bool
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dirStyle    = cellStyle.Foreground(lipgloss.Color("39"))
	linkStyle   = cellStyle.Foreground(lipgloss.Color("214"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Rows formats entries into styled table cells for the given columns.
// Long names are truncated; see Column.PlainCell for untruncated output.
func Rows(entries []fnav.FileEntry, cols []Column, humanSizes bool) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		row := make([]string, len(cols))
		for i, c := range cols {
			row[i] = c.Cell(e, humanSizes)
		}
		rows = append(rows, row)
	}
	return rows
}

// Headers returns the titles of cols.
func Headers(cols []Column) []string {
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header()
	}
	return headers
}

// Table builds a styled lipgloss table for entries. Directories and links
// are coloured. selected highlights one row; pass -1 for none.
func Table(entries []fnav.FileEntry, opts fnav.DisplayOptions, humanSizes bool, selected int) *table.Table {
	cols := Columns(opts)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(Headers(cols)...).
		Rows(Rows(entries, cols, humanSizes)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row < 0 || row >= len(entries) {
				return cellStyle
			}
			style := cellStyle
			switch {
			case entries[row].IsLink:
				style = linkStyle
			case entries[row].IsDir:
				style = dirStyle
			}
			if row == selected {
				style = style.Reverse(true)
			}
			return style
		})
}

// Plain writes a tab separated header line followed by one line per entry.
// Cells come from Column.PlainCell, so names are written in full.
func Plain(w io.Writer, entries []fnav.FileEntry, opts fnav.DisplayOptions, humanSizes bool) error {
	cols := Columns(opts)
	if _, err := fmt.Fprintln(w, strings.Join(Headers(cols), "\t")); err != nil {
		return err
	}
	row := make([]string, len(cols))
	for _, e := range entries {
		for i, c := range cols {
			row[i] = c.PlainCell(e, humanSizes)
		}
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}

// Listing writes a listing with its resolved path as a heading.
func Listing(w io.Writer, listing fnav.Listing, opts fnav.DisplayOptions, ro Options) error {
	if ro.Plain {
		return Plain(w, listing.Entries, opts, ro.HumanSizes)
	}
	heading := headerStyle.UnsetPadding().Render(listing.Path)
	if _, err := fmt.Fprintln(w, heading); err != nil {
		return err
	}
	t := Table(listing.Entries, opts, ro.HumanSizes, -1)
	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d entries\n", len(listing.Entries))
	return err
}
