package cell

import (
	"strconv"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/term-snake/internal/config"
	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/game"
)

// Renderer draws frames into a tcell screen buffer; Present shows them.
type Renderer struct {
	screen     tcell.Screen
	snakeStyle tcell.Style
	foodStyle  tcell.Style
}

// NewRenderer creates a renderer for screen.
func NewRenderer(screen tcell.Screen, display config.Display) *Renderer {
	return &Renderer{
		screen:     screen,
		snakeStyle: styleFor(display.SnakeColor),
		foodStyle:  styleFor(display.FoodColor),
	}
}

// styleFor accepts an ANSI palette index ("2"), a color name ("green")
// or a hex value ("#00ff00"). Anything else keeps the default foreground.
func styleFor(color string) tcell.Style {
	style := tcell.StyleDefault
	if color == "" {
		return style
	}
	if n, err := strconv.Atoi(color); err == nil && n >= 0 && n < 256 {
		return style.Foreground(tcell.PaletteColor(n))
	}
	if c := tcell.GetColor(color); c != tcell.ColorDefault {
		return style.Foreground(c)
	}
	return style
}

func (r *Renderer) Clear() error {
	r.screen.Clear()
	return nil
}

// Draw places the first rune of glyph at p. tcell clips cells off screen.
func (r *Renderer) Draw(p game.Point, glyph string, role core.Color) error {
	ch, _ := utf8.DecodeRuneInString(glyph)

	style := r.foodStyle
	if role == core.ColorSnake {
		style = r.snakeStyle
	}
	r.screen.SetContent(p.X, p.Y, ch, nil, style)
	return nil
}

func (r *Renderer) Present() error {
	r.screen.Show()
	return nil
}
