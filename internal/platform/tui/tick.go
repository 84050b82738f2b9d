// Package tui provides the Bubble Tea integration for flapterm.
// It handles the terminal UI loop, input mapping, rendering, and the SSH
// serving mode. All simulation logic lives in internal/flappy.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate. Steps execute strictly sequentially: the next tick is
// only scheduled after the previous one was handled. The CLI rejects
// non-positive rates before a session starts; the fallback here keeps
// the loop sane for callers that skip that validation.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
