// Package tui runs the arcade in a terminal: Bubble Tea models for playing,
// picking and scoring games, and a Wish SSH server hosting the same flow.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers a redraw. Engines tick on their own loops; the UI only
// samples their snapshots.
type TickMsg time.Time

// tickCmd returns a command that sends a TickMsg fps times a second.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 30
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
