// Package tui provides the Bubble Tea integration for Rubik's Dungeon.
// Besides the game loop it hosts the stage selector, the per-stage clear
// scoreboard and the Wish server that gives each SSH connection its own run.
// Stage clears are written to the store as they happen, keyed by run id.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
