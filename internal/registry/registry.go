// Package registry provides a global registry for frontends.
// Frontends register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term-snake/internal/config"
	"github.com/vovakirdan/term-snake/internal/game"
	"github.com/vovakirdan/term-snake/internal/loop"
)

// Frontend binds the game loop to a concrete terminal library.
// Each frontend supplies the input source, the renderer and the scoped
// terminal mode; the simulation itself lives in the game and loop packages.
type Frontend interface {
	// Name returns the identifier used by --frontend (e.g., "term").
	Name() string

	// Description returns a one-line summary for listings.
	Description() string

	// Run plays one session until the wall is hit or ctx is cancelled.
	// The terminal must be restored on every return path.
	Run(ctx context.Context, opts Options) error
}

// Options carries the per-session settings handed to a frontend.
type Options struct {
	Seed    int64
	Display config.Display
	Logger  *log.Logger
}

// NewState creates the opening game state seeded from Seed.
func (o Options) NewState() *game.State {
	return game.NewState(rand.New(rand.NewSource(o.Seed)))
}

// LoopOptions returns the controller options derived from these settings.
func (o Options) LoopOptions() []loop.Option {
	opts := []loop.Option{
		loop.WithGlyphs(loop.Glyphs{
			Snake: o.Display.SnakeGlyph,
			Food:  o.Display.FoodGlyph,
		}),
	}
	if o.Logger != nil {
		opts = append(opts, loop.WithLogger(o.Logger))
	}
	return opts
}

// Info contains metadata about a registered frontend.
type Info struct {
	Name        string
	Description string
}

// Factory is a function that creates a new frontend instance.
type Factory func() Frontend

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Typically called from a frontend's init() function.
// Panics if a frontend with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = f().Description()
}

// List returns information about all registered frontends, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for name := range factories {
		result = append(result, Info{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a frontend by name.
// Returns an error if the name is not registered.
func Create(name string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", name)
	}

	return f(), nil
}

// Exists checks if a frontend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
