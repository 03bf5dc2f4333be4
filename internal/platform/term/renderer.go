package term

import (
	"bufio"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/term-snake/internal/config"
	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/game"
)

// Renderer writes frames as ANSI cursor moves and glyphs. Output is
// buffered and reaches the terminal on Present.
type Renderer struct {
	w      *bufio.Writer
	numBuf [20]byte // Scratch buffer for allocation-free integer formatting

	snakeStyle lipgloss.Style
	foodStyle  lipgloss.Style
}

// NewRenderer creates a renderer writing to out. Colors are rendered
// only if out supports them.
func NewRenderer(out io.Writer, display config.Display) *Renderer {
	lg := lipgloss.NewRenderer(out)

	return &Renderer{
		w:          bufio.NewWriterSize(out, 8192),
		snakeStyle: styleFor(lg, display.SnakeColor),
		foodStyle:  styleFor(lg, display.FoodColor),
	}
}

// styleFor returns a foreground style, or a plain one for an empty color.
func styleFor(lg *lipgloss.Renderer, color string) lipgloss.Style {
	style := lg.NewStyle()
	if color != "" {
		style = style.Foreground(lipgloss.Color(color))
	}
	return style
}

// Clear erases the whole screen.
func (r *Renderer) Clear() error {
	_, err := r.w.WriteString(seqClear)
	return err
}

// Draw moves the cursor to the 0-based cell p and writes glyph there in
// the colour of role.
func (r *Renderer) Draw(p game.Point, glyph string, role core.Color) error {
	r.moveCursor(p.X, p.Y)

	style := r.foodStyle
	if role == core.ColorSnake {
		style = r.snakeStyle
	}
	_, err := r.w.WriteString(style.Render(glyph))
	return err
}

// Present flushes the buffered frame to the terminal.
func (r *Renderer) Present() error {
	return r.w.Flush()
}

// moveCursor appends a CUP sequence; ANSI rows and columns are 1-based.
func (r *Renderer) moveCursor(x, y int) {
	r.w.WriteString("\033[")
	r.w.Write(strconv.AppendInt(r.numBuf[:0], int64(y+1), 10))
	r.w.WriteByte(';')
	r.w.Write(strconv.AppendInt(r.numBuf[:0], int64(x+1), 10))
	r.w.WriteByte('H')
}
