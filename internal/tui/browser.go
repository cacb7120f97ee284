package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/fnav/internal/ordering"
	"github.com/vvka-141/fnav/internal/render"
	"github.com/vvka-141/fnav/internal/tui/components"
	"github.com/vvka-141/fnav/pkg/fnav"
)

// Loader resolves and scans a raw path. *navigator.Navigator satisfies it.
type Loader interface {
	Load(raw string, includeHidden bool) (fnav.Listing, error)
}

// loadedMsg carries the outcome of a background scan.
type loadedMsg struct {
	raw     string
	listing fnav.Listing
	err     error
}

// chromeLines is the number of screen lines used by everything but table rows:
// path bar (3), table borders and header (4), status (1), help (2).
const chromeLines = 10

// Browser is the interactive directory browser.
//
// Directories are always scanned with hidden entries included; the hidden
// toggle, sort key and direction are applied in memory so changing them
// never rescans.
type Browser struct {
	loader    Loader
	completer *components.PathCompleter
	keys      KeyMap
	help      help.Model

	opts       fnav.DisplayOptions
	humanSizes bool

	pathInput textinput.Model
	editing   bool

	listing fnav.Listing
	visible []fnav.FileEntry
	cursor  int
	offset  int

	err     error
	loading bool

	width  int
	height int
}

// NewBrowser creates a browser that opens start when it initializes.
func NewBrowser(loader Loader, completer *components.PathCompleter, opts fnav.DisplayOptions, start string) Browser {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "path, e.g. ~/Documents or %APPDATA%"
	input.CharLimit = 4096
	input.Width = 60
	input.SetValue(start)

	return Browser{
		loader:    loader,
		completer: completer,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		opts:      opts,
		pathInput: input,
		loading:   true,
		width:     80,
	}
}

// WithHumanSizes toggles decimal unit sizes in the size column.
func (b Browser) WithHumanSizes(on bool) Browser {
	b.humanSizes = on
	return b
}

// Path returns the directory currently displayed.
func (b Browser) Path() string {
	return b.listing.Path
}

// Options returns the current display options.
func (b Browser) Options() fnav.DisplayOptions {
	return b.opts
}

// Visible returns the entries as currently filtered and ordered.
func (b Browser) Visible() []fnav.FileEntry {
	return b.visible
}

// Err returns the error shown in the banner, if any.
func (b Browser) Err() error {
	return b.err
}

// Init implements tea.Model.
func (b Browser) Init() tea.Cmd {
	return b.load(b.pathInput.Value())
}

func (b Browser) load(raw string) tea.Cmd {
	loader := b.loader
	return func() tea.Msg {
		listing, err := loader.Load(raw, true)
		return loadedMsg{raw: raw, listing: listing, err: err}
	}
}

// Update implements tea.Model.
func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.help.Width = msg.Width
		b.clampOffset()
		return b, nil

	case loadedMsg:
		b.loading = false
		if msg.err != nil {
			// Keep the previous directory on screen.
			b.err = msg.err
			return b, nil
		}
		b.err = nil
		b.listing = msg.listing
		b.pathInput.SetValue(msg.listing.Path)
		b.pathInput.CursorEnd()
		b.cursor = 0
		b.offset = 0
		b.refresh()
		return b, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return b, tea.Quit
		}
		if b.err != nil {
			return b.updateError(msg)
		}
		if b.editing {
			return b.updatePathBar(msg)
		}
		return b.updateList(msg)
	}

	return b, nil
}

// updateError makes the banner modal until it is dismissed.
func (b Browser) updateError(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, b.keys.Cancel), key.Matches(msg, b.keys.Submit):
		b.err = nil
	case key.Matches(msg, b.keys.Quit):
		return b, tea.Quit
	}
	return b, nil
}

func (b Browser) updatePathBar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, b.keys.Submit):
		b.editing = false
		b.pathInput.Blur()
		b.completer.Reset()
		b.loading = true
		return b, b.load(b.pathInput.Value())

	case key.Matches(msg, b.keys.Cancel):
		b.editing = false
		b.pathInput.Blur()
		b.completer.Reset()
		b.pathInput.SetValue(b.listing.Path)
		return b, nil

	case key.Matches(msg, b.keys.Complete):
		completed := b.completer.Next(b.pathInput.Value(), b.listing.Path)
		b.pathInput.SetValue(completed)
		b.pathInput.CursorEnd()
		return b, nil
	}

	b.completer.Reset()
	var cmd tea.Cmd
	b.pathInput, cmd = b.pathInput.Update(msg)
	return b, cmd
}

func (b Browser) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, b.keys.Quit):
		return b, tea.Quit

	case key.Matches(msg, b.keys.Up):
		if b.cursor > 0 {
			b.cursor--
		}
	case key.Matches(msg, b.keys.Down):
		if b.cursor < len(b.visible)-1 {
			b.cursor++
		}
	case key.Matches(msg, b.keys.Top):
		b.cursor = 0
	case key.Matches(msg, b.keys.Bottom):
		b.cursor = max(len(b.visible)-1, 0)

	case key.Matches(msg, b.keys.Open):
		entry, ok := b.selected()
		if !ok || !entry.IsDir {
			return b, nil
		}
		b.loading = true
		return b, b.load(filepath.Join(b.listing.Path, entry.Name))

	case key.Matches(msg, b.keys.Parent):
		if b.listing.Path == "" {
			return b, nil
		}
		current := filepath.Clean(b.listing.Path)
		parent := filepath.Dir(current)
		if parent == current {
			return b, nil
		}
		b.loading = true
		return b, b.load(parent)

	case key.Matches(msg, b.keys.Refresh):
		target := b.listing.Path
		if target == "" {
			target = b.pathInput.Value()
		}
		b.loading = true
		return b, b.load(target)

	case key.Matches(msg, b.keys.EditPath):
		b.editing = true
		b.pathInput.CursorEnd()
		return b, b.pathInput.Focus()

	case key.Matches(msg, b.keys.Sort):
		b.opts.SortBy = b.opts.SortBy.Next()
		b.refreshKeepSelection()
	case key.Matches(msg, b.keys.Reverse):
		b.opts.Descending = !b.opts.Descending
		b.refreshKeepSelection()
	case key.Matches(msg, b.keys.Hidden):
		b.opts.ShowHidden = !b.opts.ShowHidden
		b.refreshKeepSelection()

	case key.Matches(msg, b.keys.Help):
		b.help.ShowAll = !b.help.ShowAll
	}

	b.clampOffset()
	return b, nil
}

func (b Browser) selected() (fnav.FileEntry, bool) {
	if b.cursor < 0 || b.cursor >= len(b.visible) {
		return fnav.FileEntry{}, false
	}
	return b.visible[b.cursor], true
}

// refresh recomputes the visible entries from the scanned listing.
func (b *Browser) refresh() {
	b.visible = ordering.Apply(b.listing.Entries, b.opts)
	if b.cursor >= len(b.visible) {
		b.cursor = max(len(b.visible)-1, 0)
	}
	b.clampOffset()
}

// refreshKeepSelection re-applies options and keeps the cursor on the
// same entry when it is still visible.
func (b *Browser) refreshKeepSelection() {
	name := ""
	if e, ok := b.selected(); ok {
		name = e.Name
	}
	b.refresh()
	for i, e := range b.visible {
		if e.Name == name {
			b.cursor = i
			break
		}
	}
	b.clampOffset()
}

func (b Browser) pageSize() int {
	if b.height <= 0 {
		return len(b.visible)
	}
	return max(b.height-chromeLines, 1)
}

func (b *Browser) clampOffset() {
	page := b.pageSize()
	if b.cursor < b.offset {
		b.offset = b.cursor
	}
	if page > 0 && b.cursor >= b.offset+page {
		b.offset = b.cursor - page + 1
	}
	if b.offset < 0 {
		b.offset = 0
	}
}

// View implements tea.Model.
func (b Browser) View() string {
	var s strings.Builder

	inputStyle := InputStyle
	if b.editing {
		inputStyle = FocusedInputStyle
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Center,
		TitleStyle.Render("fnav"),
		inputStyle.Render(b.pathInput.View()),
	)
	s.WriteString(bar)
	s.WriteString("\n")

	if b.err != nil {
		s.WriteString(ErrorBannerStyle.Render(SymbolCross + " " + b.err.Error() + "\n\n" + MutedStyle.Render("enter/esc dismiss")))
		s.WriteString("\n")
	}

	end := min(b.offset+b.pageSize(), len(b.visible))
	window := b.visible[b.offset:end]
	t := render.Table(window, b.opts, b.humanSizes, b.cursor-b.offset)
	s.WriteString(t.Render())
	s.WriteString("\n")

	s.WriteString(StatusStyle.Render(b.status()))
	s.WriteString("\n")

	if b.editing {
		s.WriteString(HelpStyle.Render(b.keys.InputHelpText()))
	} else {
		s.WriteString(HelpStyle.Render(b.help.View(b.keys)))
	}
	return s.String()
}

func (b Browser) status() string {
	direction := SymbolAscending
	if b.opts.Descending {
		direction = SymbolDescending
	}
	hidden := "off"
	if b.opts.ShowHidden {
		hidden = "on"
	}
	status := fmt.Sprintf("%d of %d entries • sort: %s %s • hidden: %s",
		len(b.visible), len(b.listing.Entries), b.opts.SortBy, direction, hidden)
	if b.loading {
		status += " • loading…"
	}
	return status
}
