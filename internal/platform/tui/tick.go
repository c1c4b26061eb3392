// Package tui provides the Bubble Tea integration for the exploration
// game. It handles the terminal UI loop, input mapping, and journal
// persistence.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stardrift-dev/stardrift/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate. Non-positive rates fall back to the default.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
