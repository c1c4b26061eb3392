package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/stardrift-dev/stardrift/internal/core"
)

// styleCache memoizes lipgloss styles per color. The nebula palette and
// star classes produce a small, stable set of distinct colors, so the
// cache stays tiny even on long sessions. The SSH server renders one
// session per goroutine, so access is guarded.
var (
	styleMu    sync.RWMutex
	styleCache = map[core.RGB]lipgloss.Style{}
)

func styleFor(c core.RGB) lipgloss.Style {
	styleMu.RLock()
	s, ok := styleCache[c]
	styleMu.RUnlock()
	if ok {
		return s
	}
	s = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	styleMu.Lock()
	styleCache[c] = s
	styleMu.Unlock()
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
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
			cell := s.GetCell(x, y)
			startColor := cell.Fg

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Fg != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
