package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/greed/internal/core"
)

// styleCache memoizes one lipgloss style per color.
type styleCache map[core.Color]lipgloss.Style

func (c styleCache) style(col core.Color) lipgloss.Style {
	if s, ok := c[col]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(col.Hex()))
	c[col] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := make(styleCache)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
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

			// Blank runs need no escape codes
			if strings.TrimSpace(run.String()) == "" {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styles.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
