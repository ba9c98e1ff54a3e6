// Package tui runs games in a terminal through Bubble Tea, locally or over SSH.
// It maps keys to actions, measures frame time and renders screen buffers.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/star-crossing/internal/core"
)

// TickMsg is sent to trigger a game simulation tick. It carries the wall
// clock time of the tick so the model can measure the frame delta.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the clamped time since the previous tick. The first
// tick uses the nominal frame duration.
func frameDelta(cfg core.RuntimeConfig, last, now time.Time) time.Duration {
	if last.IsZero() {
		return cfg.FrameDelta()
	}
	return cfg.ClampDelta(now.Sub(last))
}
