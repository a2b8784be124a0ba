package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pixelhop/runner-arcade/internal/render"
)

// colorStyles maps render.Color to lipgloss styles.
var colorStyles = map[render.Color]lipgloss.Style{
	render.ColorDefault:      lipgloss.NewStyle(),
	render.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	render.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	render.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	render.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	render.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	render.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	render.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	render.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	render.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	render.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	render.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	render.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	render.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *render.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with the same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[render.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
