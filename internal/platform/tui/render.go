package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/vonsh/internal/core"
)

// palette is a cell color pair.
type palette struct {
	fg, bg core.Color
}

// styles caches lipgloss styles per color pair. SSH sessions render
// concurrently.
var (
	stylesMu sync.Mutex
	styles   = map[palette]lipgloss.Style{}
)

func styleFor(p palette) lipgloss.Style {
	stylesMu.Lock()
	defer stylesMu.Unlock()
	if st, ok := styles[p]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if !p.fg.IsDefault() {
		st = st.Foreground(lipgloss.Color(p.fg.String()))
	}
	if !p.bg.IsDefault() {
		st = st.Background(lipgloss.Color(p.bg.String()))
	}
	styles[p] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := palette{cell.Fg, cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (palette{cell.Fg, cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.fg.IsDefault() && start.bg.IsDefault() {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
