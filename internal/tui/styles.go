package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"cubelife/internal/render"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00cccc"))

	statusRunning = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	statusStopped = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))

	metricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	metricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	keyName = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00aaaa")).
		Bold(true)

	keyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#555566"))

	gridBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466"))
)

// glyph picks a two-column block for a cell scaled by its wobble.
func glyph(a render.CellAttr) string {
	w := render.Wobble(a)
	switch {
	case w > 0.66:
		return "██"
	case w > 0.33:
		return "▓▓"
	case w > 0.01:
		return "░░"
	default:
		return "  "
	}
}

func cellStyle(a render.CellAttr) lipgloss.Style {
	c := render.CellColor(a, 1)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)))
}
