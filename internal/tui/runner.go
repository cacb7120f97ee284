package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/fnav/pkg/fnav"
)

// RunBrowser runs the browser until the user quits and returns the
// directory that was on screen at that moment.
func RunBrowser(b Browser) (string, error) {
	if !IsInteractive() {
		return "", fmt.Errorf("%w: use 'fnav list' instead", fnav.ErrNotInteractive)
	}

	p := tea.NewProgram(b, tea.WithAltScreen())

	model, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("browser failed: %w", err)
	}

	return model.(Browser).Path(), nil
}
