// Package tui runs the game in a terminal using Bubble Tea.
// It handles the tick loop, key mapping and styled rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(core.FrameDuration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
