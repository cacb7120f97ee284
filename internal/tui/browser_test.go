package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/fnav/internal/files/filesystem"
	"github.com/vvka-141/fnav/internal/files/scanner"
	"github.com/vvka-141/fnav/internal/logging"
	"github.com/vvka-141/fnav/internal/navigator"
	"github.com/vvka-141/fnav/internal/pathresolve"
	"github.com/vvka-141/fnav/internal/tui/components"
	"github.com/vvka-141/fnav/pkg/fnav"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// press sends a key and, when the browser answers with a scan, runs it
// and feeds the result back. Other commands, such as cursor blinking,
// are timers and are not run.
func press(t *testing.T, b Browser, k string) Browser {
	t.Helper()
	m, cmd := b.Update(keyMsg(k))
	b = m.(Browser)
	if cmd == nil || !b.loading {
		return b
	}
	msg, ok := cmd().(loadedMsg)
	require.True(t, ok, "expected a scan after %q", k)
	m, _ = b.Update(msg)
	return m.(Browser)
}

func typeText(t *testing.T, b Browser, text string) Browser {
	t.Helper()
	for _, r := range text {
		m, _ := b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		b = m.(Browser)
	}
	return b
}

func names(entries []fnav.FileEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

type fixture struct {
	mfs    *filesystem.MemoryFileSystem
	loader *countingLoader
}

type countingLoader struct {
	inner Loader
	calls int
}

func (c *countingLoader) Load(raw string, includeHidden bool) (fnav.Listing, error) {
	c.calls++
	return c.inner.Load(raw, includeHidden)
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mfs := filesystem.NewMemoryFileSystem("/home/me")
	mfs.AddFile("b.txt", "bb")
	mfs.AddFile("a.txt", "aaaa")
	mfs.AddFile(".secret", "s")
	mfs.AddDir("sub")
	mfs.AddFile("sub/inner.go", "package x")
	return &fixture{mfs: mfs}
}

func (f *fixture) browser(t *testing.T, opts fnav.DisplayOptions, start string) Browser {
	t.Helper()
	resolver := pathresolve.New(
		pathresolve.WithPlatform(pathresolve.Unix),
		pathresolve.WithLookup(pathresolve.MapLookup(map[string]string{"HOME": "/home/me"})),
	)
	logger := logging.NewNullLogger()
	nav := navigator.New(resolver, scanner.NewScannerWithFS(logger, f.mfs), logger)
	f.loader = &countingLoader{inner: nav}

	b := NewBrowser(f.loader, components.NewPathCompleter(resolver, f.mfs, true), opts, start)
	msg, ok := b.Init()().(loadedMsg)
	require.True(t, ok, "Init should scan the start directory")
	m, _ := b.Update(msg)
	return m.(Browser)
}

func nameSorted() fnav.DisplayOptions {
	opts := fnav.DefaultDisplayOptions()
	opts.SortBy = fnav.SortName
	return opts
}

func TestBrowser_InitialLoad(t *testing.T) {
	f := newFixture(t)
	b := f.browser(t, nameSorted(), "~")

	assert.Equal(t, "/home/me/", b.Path())
	assert.Equal(t, []string{"a.txt", "b.txt", "sub"}, names(b.Visible()))
	assert.NoError(t, b.Err())
}

func TestBrowser_OpenAndParent(t *testing.T) {
	f := newFixture(t)
	b := f.browser(t, nameSorted(), "~")

	b = press(t, b, "down")
	b = press(t, b, "down")
	b = press(t, b, "enter")
	assert.Equal(t, "/home/me/sub/", b.Path())
	assert.Equal(t, []string{"inner.go"}, names(b.Visible()))

	b = press(t, b, "backspace")
	assert.Equal(t, "/home/me/", b.Path())
}

func TestBrowser_OpenFileDoesNothing(t *testing.T) {
	f := newFixture(t)
	b := f.browser(t, nameSorted(), "~")
	calls := f.loader.calls

	b = press(t, b, "enter")
	assert.Equal(t, "/home/me/", b.Path())
	assert.Equal(t, calls, f.loader.calls)
}

func TestBrowser_SortAndReverseWithoutRescan(t *testing.T) {
	f := newFixture(t)
	b := f.browser(t, fnav.DefaultDisplayOptions(), "~")
	calls := f.loader.calls

	assert.Equal(t, []string{"b.txt", "a.txt", "sub"}, names(b.Visible()), "scan order when unsorted")

	b = press(t, b, "s")
	assert.Equal(t, fnav.SortName, b.Options().SortBy)
	assert.Equal(t, []string{"a.txt", "b.txt", "sub"}, names(b.Visible()))

	b = press(t, b, "r")
	assert.True(t, b.Options().Descending)
	assert.Equal(t, []string{"sub", "b.txt", "a.txt"}, names(b.Visible()))

	assert.Equal(t, calls, f.loader.calls, "reordering must not rescan")
}

func TestBrowser_ToggleHidden(t *testing.T) {
	f := newFixture(t)
	b := f.browser(t, nameSorted(), "~")
	calls := f.loader.calls

	b = press(t, b, ".")
	assert.True(t, b.Options().ShowHidden)
	assert.Equal(t, []string{".secret", "a.txt", "b.txt", "sub"}, names(b.Visible()))

	b = press(t, b, ".")
	assert.Equal(t, []string{"a.txt", "b.txt", "sub"}, names(b.Visible()))
	assert.Equal(t, calls, f.loader.calls)
}

func TestBrowser_SelectionFollowsEntryAcrossSort(t *testing.T) {
	f := newFixture(t)
	b := f.browser(t, nameSorted(), "~")

	b = press(t, b, "down") // b.txt
	b = press(t, b, "r")
	entry, ok := b.selected()
	require.True(t, ok)
	assert.Equal(t, "b.txt", entry.Name)
}

func TestBrowser_PathBarSubmit(t *testing.T) {
	f := newFixture(t)
	b := f.browser(t, nameSorted(), "~")

	b = press(t, b, "e")
	require.True(t, b.editing)
	b = press(t, b, "ctrl+u")
	b = typeText(t, b, "~/sub")
	b = press(t, b, "enter")

	assert.False(t, b.editing)
	assert.Equal(t, "/home/me/sub/", b.Path())
	assert.Equal(t, "/home/me/sub/", b.pathInput.Value())
}

func TestBrowser_PathBarTabCompletion(t *testing.T) {
	f := newFixture(t)
	b := f.browser(t, nameSorted(), "~")

	b = press(t, b, "e")
	b = press(t, b, "ctrl+u")
	b = typeText(t, b, "~/su")
	b = press(t, b, "tab")
	assert.Equal(t, "~/sub/", b.pathInput.Value())
}

func TestBrowser_PathBarCancelRestoresPath(t *testing.T) {
	f := newFixture(t)
	b := f.browser(t, nameSorted(), "~")

	b = press(t, b, "e")
	b = typeText(t, b, "junk")
	b = press(t, b, "esc")

	assert.False(t, b.editing)
	assert.Equal(t, "/home/me/", b.pathInput.Value())
}

func TestBrowser_FailedNavigationKeepsPreviousDirectory(t *testing.T) {
	tests := []struct {
		name string
		path string
		kind error
	}{
		{"missing directory", "~/nope", fnav.ErrNotFound},
		{"file", "~/a.txt", fnav.ErrNotADirectory},
		{"unset variable", "%NOT_SET%/x", fnav.ErrMissingVariable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			b := f.browser(t, nameSorted(), "~")

			b = press(t, b, "e")
			b = press(t, b, "ctrl+u")
			b = typeText(t, b, tt.path)
			b = press(t, b, "enter")

			require.Error(t, b.Err())
			assert.True(t, errors.Is(b.Err(), tt.kind), "got %v", b.Err())
			assert.Equal(t, "/home/me/", b.Path())
			assert.Equal(t, []string{"a.txt", "b.txt", "sub"}, names(b.Visible()))
			assert.Contains(t, b.View(), "enter/esc dismiss")

			// The banner is modal: navigation keys are ignored until dismissed.
			b = press(t, b, "down")
			assert.Equal(t, 0, b.cursor)

			b = press(t, b, "esc")
			assert.NoError(t, b.Err())
		})
	}
}

func TestBrowser_ParentAtRootIsNoop(t *testing.T) {
	f := newFixture(t)
	f.mfs.AddDir("/etc")
	b := f.browser(t, nameSorted(), "/")
	calls := f.loader.calls

	require.Equal(t, "/", b.Path())
	b = press(t, b, "backspace")
	assert.Equal(t, "/", b.Path())
	assert.Equal(t, calls, f.loader.calls)
}

func TestBrowser_CursorBounds(t *testing.T) {
	f := newFixture(t)
	b := f.browser(t, nameSorted(), "~")

	b = press(t, b, "up")
	assert.Equal(t, 0, b.cursor)

	b = press(t, b, "G")
	assert.Equal(t, 2, b.cursor)
	b = press(t, b, "down")
	assert.Equal(t, 2, b.cursor)

	b = press(t, b, "g")
	assert.Equal(t, 0, b.cursor)
}

func TestBrowser_ScrollWindow(t *testing.T) {
	f := newFixture(t)
	for _, n := range []string{"c", "d", "e", "f", "g", "h"} {
		f.mfs.AddFile(n+".log", "")
	}
	b := f.browser(t, nameSorted(), "~")

	m, _ := b.Update(tea.WindowSizeMsg{Width: 100, Height: chromeLines + 3})
	b = m.(Browser)
	assert.Equal(t, 3, b.pageSize())

	for i := 0; i < 5; i++ {
		b = press(t, b, "down")
	}
	assert.Equal(t, 5, b.cursor)
	assert.Equal(t, 3, b.offset)
	assert.Contains(t, b.View(), "f.log")
	assert.NotContains(t, b.View(), "a.txt")
}

func TestBrowser_ViewShowsStatus(t *testing.T) {
	f := newFixture(t)
	b := f.browser(t, nameSorted(), "~")

	view := b.View()
	assert.Contains(t, view, "fnav")
	assert.Contains(t, view, "a.txt")
	assert.Contains(t, view, "3 of 4 entries")
	assert.Contains(t, view, "sort: name "+SymbolAscending)
	assert.Contains(t, view, "hidden: off")
}

func TestBrowser_Quit(t *testing.T) {
	f := newFixture(t)
	b := f.browser(t, nameSorted(), "~")

	for _, k := range []string{"q", "ctrl+c"} {
		_, cmd := b.Update(keyMsg(k))
		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok, "%s should quit", k)
	}
}

func TestBrowser_HelpToggle(t *testing.T) {
	f := newFixture(t)
	b := f.browser(t, nameSorted(), "~")

	assert.False(t, b.help.ShowAll)
	b = press(t, b, "?")
	assert.True(t, b.help.ShowAll)
	assert.True(t, strings.Contains(b.View(), "refresh"))
}
