package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ghost-catcher/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorGhost:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBomb:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorNet:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorFrost:     lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
	core.ColorWarning:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	core.ColorHighlight: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorDim:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
