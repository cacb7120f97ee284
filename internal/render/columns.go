package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/docker/go-units"

	"github.com/vvka-141/fnav/pkg/fnav"
)

// Column identifies one table column.
type Column int

const (
	ColumnType Column = iota
	ColumnName
	ColumnExtension
	ColumnSize
	ColumnAccessed
	ColumnCreated
	ColumnModified
)

var columnNames = map[Column]string{
	ColumnType:      "type",
	ColumnName:      "name",
	ColumnExtension: "ext",
	ColumnSize:      "size",
	ColumnAccessed:  "accessed",
	ColumnCreated:   "created",
	ColumnModified:  "modified",
}

var columnHeaders = map[Column]string{
	ColumnType:      "",
	ColumnName:      "File Name",
	ColumnExtension: "File Type",
	ColumnSize:      "Size",
	ColumnAccessed:  "Last Access",
	ColumnCreated:   "Creation Date",
	ColumnModified:  "Modified Date",
}

// allColumns is the display order.
var allColumns = []Column{
	ColumnType, ColumnName, ColumnExtension, ColumnSize,
	ColumnAccessed, ColumnCreated, ColumnModified,
}

func (c Column) String() string { return columnNames[c] }

// Header returns the column title.
func (c Column) Header() string { return columnHeaders[c] }

// ColumnNames lists the names accepted by ParseColumns, in display order.
func ColumnNames() []string {
	names := make([]string, 0, len(allColumns))
	for _, c := range allColumns {
		names = append(names, c.String())
	}
	return names
}

// Columns returns the visible columns for opts.
func Columns(opts fnav.DisplayOptions) []Column {
	visible := map[Column]bool{
		ColumnType:      opts.ShowType,
		ColumnName:      true,
		ColumnExtension: opts.ShowExtension,
		ColumnSize:      opts.ShowSize,
		ColumnAccessed:  opts.ShowAccessed,
		ColumnCreated:   opts.ShowCreated,
		ColumnModified:  opts.ShowModified,
	}
	cols := make([]Column, 0, len(allColumns))
	for _, c := range allColumns {
		if visible[c] {
			cols = append(cols, c)
		}
	}
	return cols
}

// ParseColumns sets the column visibility flags of opts from a comma
// separated list such as "type,name,size". Columns not listed are hidden.
// The name column is always shown whether listed or not.
func ParseColumns(spec string, opts *fnav.DisplayOptions) error {
	selected := make(map[Column]bool)
	for _, raw := range strings.Split(spec, ",") {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		col, ok := columnByName(name)
		if !ok {
			return fmt.Errorf("%w: unknown column %q (valid: %s)",
				fnav.ErrInvalidConfig, name, strings.Join(ColumnNames(), ", "))
		}
		selected[col] = true
	}

	opts.ShowType = selected[ColumnType]
	opts.ShowExtension = selected[ColumnExtension]
	opts.ShowSize = selected[ColumnSize]
	opts.ShowAccessed = selected[ColumnAccessed]
	opts.ShowCreated = selected[ColumnCreated]
	opts.ShowModified = selected[ColumnModified]
	return nil
}

func columnByName(name string) (Column, bool) {
	if name == "extension" {
		return ColumnExtension, true
	}
	for c, n := range columnNames {
		if n == name {
			return c, true
		}
	}
	return 0, false
}

// Cell formats one field of e.
func (c Column) Cell(e fnav.FileEntry, humanSizes bool) string {
	switch c {
	case ColumnType:
		return e.Type.Marker()
	case ColumnName:
		return TruncateName(e.DisplayName())
	case ColumnExtension:
		return e.Extension
	case ColumnSize:
		return FormatSize(e.SizeBytes, humanSizes)
	case ColumnAccessed:
		return FormatTime(e.LastAccess)
	case ColumnCreated:
		return FormatTime(e.Created)
	case ColumnModified:
		return FormatTime(e.LastModified)
	}
	return ""
}

var plainEscaper = strings.NewReplacer(`\`, `\\`, "\t", `\t`, "\n", `\n`, "\r", `\r`)

// PlainCell formats one field of e for tab separated output. Names are
// never truncated; backslashes, tabs and line breaks are escaped so each
// entry stays on one line with the same number of fields.
func (c Column) PlainCell(e fnav.FileEntry, humanSizes bool) string {
	switch c {
	case ColumnName:
		return plainEscaper.Replace(e.DisplayName())
	case ColumnExtension:
		return plainEscaper.Replace(strings.ToValidUTF8(e.Extension, "\uFFFD"))
	}
	return c.Cell(e, humanSizes)
}

// TruncateName cuts names longer than fnav.MaxNameWidth characters.
func TruncateName(name string) string {
	if utf8.RuneCountInString(name) <= fnav.MaxNameWidth {
		return name
	}
	runes := []rune(name)
	return string(runes[:fnav.MaxNameWidth]) + fnav.TruncationSuffix
}

// FormatTime renders t in local time. A nil time renders empty.
func FormatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Local().Format(fnav.TimestampLayout)
}

// FormatSize renders a byte count, either exact or in decimal units.
func FormatSize(n uint64, human bool) string {
	if human {
		return units.HumanSize(float64(n))
	}
	return strconv.FormatUint(n, 10)
}
