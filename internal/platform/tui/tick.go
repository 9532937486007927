// Package tui runs the snake game in a Bubble Tea program.
// It maps keys to actions, drives the fixed-rate tick loop and shows the
// scoreboard.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickInterval converts a tick rate into the delay between ticks.
// Non-positive rates fall back to one tick per second.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
