// Package tui runs games in the terminal with Bubble Tea, locally or
// over SSH, and shows the stored high scores.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next simulation tick at tickRate steps per second.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
