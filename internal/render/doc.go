// Package render formats directory listings as tables.
//
// Styled output uses lipgloss tables and is meant for terminals. Plain
// output is tab separated with no styling, one entry per line, so it
// can be piped into cut, awk or sort.
//
// Which columns appear is driven by fnav.DisplayOptions. The name column
// is always present. Names longer than fnav.MaxNameWidth characters are
// cut and suffixed with fnav.TruncationSuffix. Timestamps are shown in
// local time using fnav.TimestampLayout and absent timestamps are blank.
package render
