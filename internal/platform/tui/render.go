package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/term-snake/internal/config"
	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/game"
)

// frame implements loop.Renderer on top of a core.Screen buffer.
// Present is a no-op: Bubble Tea prints the buffer from View.
type frame struct {
	screen *core.Screen
}

func newFrame(width, height int) *frame {
	return &frame{screen: core.NewScreen(width, height)}
}

func (f *frame) Clear() error {
	f.screen.Clear()
	return nil
}

// Draw stores the first rune of glyph; cells off screen are dropped.
func (f *frame) Draw(p game.Point, glyph string, role core.Color) error {
	r, _ := utf8.DecodeRuneInString(glyph)
	f.screen.SetCell(p.X, p.Y, r, role)
	return nil
}

func (f *frame) Present() error {
	return nil
}

// Styles maps cell roles to lipgloss styles.
type Styles map[core.Color]lipgloss.Style

// NewStyles builds the styles for the configured colors.
func NewStyles(display config.Display) Styles {
	styles := Styles{
		core.ColorDefault: lipgloss.NewStyle(),
		core.ColorSnake:   lipgloss.NewStyle(),
		core.ColorFood:    lipgloss.NewStyle(),
	}
	if display.SnakeColor != "" {
		styles[core.ColorSnake] = styles[core.ColorSnake].Foreground(lipgloss.Color(display.SnakeColor))
	}
	if display.FoodColor != "" {
		styles[core.ColorFood] = styles[core.ColorFood].Foreground(lipgloss.Color(display.FoodColor))
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same role to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, styles Styles) string {
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

			style, ok := styles[startColor]
			if !ok {
				style = styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
