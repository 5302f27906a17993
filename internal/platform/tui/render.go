package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bubble-pop/internal/core"
)

// Renderer turns screen buffers into styled terminal output.
// Each SSH session gets its own, so colour support follows the client's
// terminal instead of the server's.
type Renderer struct {
	lg     *lipgloss.Renderer
	styles map[core.Color]lipgloss.Style
}

// NewRenderer wraps a lipgloss renderer. A nil renderer uses the default one.
func NewRenderer(lg *lipgloss.Renderer) *Renderer {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	return &Renderer{
		lg:     lg,
		styles: make(map[core.Color]lipgloss.Style),
	}
}

func (r *Renderer) style(c core.Color) lipgloss.Style {
	if st, ok := r.styles[c]; ok {
		return st
	}
	st := r.lg.NewStyle()
	if c != core.ColorDefault {
		st = st.Foreground(lipgloss.Color(c))
	}
	r.styles[c] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (r *Renderer) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(r.style(color).Render(run.String()))
		}
	}
	return sb.String()
}
