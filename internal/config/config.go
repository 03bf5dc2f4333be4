// Package config provides YAML-based configuration loading for the snake
// game: frontend choice, glyphs, colors and log output.
package config

// Config contains all user-tunable settings.
// The play field and tick rate are fixed and deliberately absent.
type Config struct {
	Frontend string  `yaml:"frontend"`
	Display  Display `yaml:"display"`
	Log      Log     `yaml:"log"`
}

// Display defines how the snake and food are drawn.
type Display struct {
	SnakeGlyph string `yaml:"snake_glyph"`
	FoodGlyph  string `yaml:"food_glyph"`
	SnakeColor string `yaml:"snake_color"` // ANSI index or #rrggbb
	FoodColor  string `yaml:"food_color"`
}

// Log defines where diagnostic logs go. An empty File discards logs,
// since the game owns the terminal while running.
type Log struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"` // debug, info, warn, error
}
