// Package tui provides the Bubble Tea integration: the terminal UI loop,
// key mapping, tick scheduling, and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one game step. Gen identifies the tick run it belongs
// to; a message whose generation is stale (scheduled before a pause or
// game over) is dropped instead of advancing the session.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickCmd schedules the next tick of the given generation.
func tickCmd(gen uint64, period time.Duration) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
