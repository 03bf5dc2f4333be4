package tui

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/term-snake/internal/game"
	"github.com/vovakirdan/term-snake/internal/loop"
	"github.com/vovakirdan/term-snake/internal/registry"
)

// Name is the registry identifier of this frontend.
const Name = "tui"

func init() {
	registry.Register(Name, func() registry.Frontend {
		return Frontend{}
	})
}

// Model is the Bubble Tea model running one snake session.
type Model struct {
	state    *game.State
	ctrl     *loop.Controller
	keys     KeyMap
	input    *keySlot
	frame    *frame
	styles   Styles
	quitting bool
	err      error
}

// NewModel creates a model with a screen buffer of the given size.
func NewModel(opts registry.Options, width, height int) Model {
	state := opts.NewState()
	input := &keySlot{}
	f := newFrame(width, height)

	return Model{
		state:  state,
		ctrl:   loop.New(state, input, f, opts.LoopOptions()...),
		keys:   DefaultKeyMap(),
		input:  input,
		frame:  f,
		styles: NewStyles(opts.Display),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.frame.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey stores arrows for the next tick; Ctrl+C ends the session.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if dir, ok := m.keys.Direction(msg); ok {
		m.input.Put(dir)
	}
	return m, nil
}

// handleTick runs one controller step and schedules the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if _, err := m.ctrl.Step(); err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	if m.state.Status == game.Terminated {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd()
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.frame.screen, m.styles)
}

// Err returns the render error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Frontend plays inside a Bubble Tea program.
type Frontend struct{}

// Name returns the frontend identifier.
func (Frontend) Name() string { return Name }

// Description returns a one-line summary.
func (Frontend) Description() string {
	return "Bubble Tea program on the alternate screen"
}

// Run plays one session. Bubble Tea restores the terminal when the
// program exits, including on context cancellation.
func (Frontend) Run(ctx context.Context, opts registry.Options) error {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	p := tea.NewProgram(
		NewModel(opts, width, height),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
