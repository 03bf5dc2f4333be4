package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		Frontend: "term",
		Display: Display{
			SnakeGlyph: "█",
			FoodGlyph:  "●",
			SnakeColor: "2",
			FoodColor:  "1",
		},
		Log: Log{
			File:  "",
			Level: "info",
		},
	}
}
