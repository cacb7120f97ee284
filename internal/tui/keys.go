package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the browser.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Open     key.Binding
	Parent   key.Binding
	EditPath key.Binding
	Complete key.Binding
	Submit   key.Binding
	Cancel   key.Binding
	Sort     key.Binding
	Reverse  key.Binding
	Hidden   key.Binding
	Refresh  key.Binding
	Quit     key.Binding
	Help     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "bottom"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", "right", "l"),
			key.WithHelp("enter", "open"),
		),
		Parent: key.NewBinding(
			key.WithKeys("backspace", "left", "h"),
			key.WithHelp("⌫", "parent"),
		),
		EditPath: key.NewBinding(
			key.WithKeys("e", "ctrl+l"),
			key.WithHelp("e", "edit path"),
		),
		Complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "go"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Reverse: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reverse"),
		),
		Hidden: key.NewBinding(
			key.WithKeys("."),
			key.WithHelp(".", "hidden"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("R", "f5"),
			key.WithHelp("R", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Parent, k.EditPath, k.Sort, k.Reverse, k.Hidden, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Open, k.Parent, k.Refresh},
		{k.EditPath, k.Complete, k.Submit, k.Cancel},
		{k.Sort, k.Reverse, k.Hidden},
		{k.Help, k.Quit},
	}
}

// InputHelpText returns help text for the path bar.
func (k KeyMap) InputHelpText() string {
	return "tab complete • enter go • esc cancel"
}
