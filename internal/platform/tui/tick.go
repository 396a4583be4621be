// Package tui runs the labyrinth games in a terminal with Bubble Tea, both
// locally and for SSH sessions: game loop, key mapping, menus, the maze
// mode picker and the high score table.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-labyrinth/internal/core"
)

// TickMsg advances the running game by one simulation step.
type TickMsg time.Time

// tickInterval is the time between steps at rate ticks per second.
// Non-positive rates fall back to the default.
func tickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(rate)
}

func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
