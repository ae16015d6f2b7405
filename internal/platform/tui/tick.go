// Package tui runs games in a terminal with Bubble Tea, locally or over SSH
// via Wish. It maps keys to actions, drives games at a fixed tick rate and
// renders their screen buffers with lipgloss.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Loop names the game
// model that scheduled it; other models drop the tick.
type TickMsg struct {
	Time time.Time
	Loop uint64
}

// tickLoops hands every game model its own tick loop id.
var tickLoops atomic.Uint64

// tickCmd returns a command that sends one TickMsg for loop after a tick
// interval.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	interval := time.Second / time.Duration(max(1, tickRate))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
