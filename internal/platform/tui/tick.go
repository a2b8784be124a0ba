// Package tui provides the Bubble Tea integration for the runner. It drives
// the engine's fixed-timestep loop from display frames, maps terminal keys
// onto game commands, and styles the engine's screen buffer for output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// displayFPS is how often the terminal repaints. Simulation steps stay fixed
// at 60 Hz inside the engine regardless of this rate.
const displayFPS = 60

// FrameMsg is sent once per display frame.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that emits the next display frame.
func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/displayFPS, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
