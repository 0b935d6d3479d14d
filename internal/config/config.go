// Package config provides YAML-based configuration loading: gameplay
// defaults, file locations, and the board theme.
package config

import (
	"time"

	"github.com/slithergame/slither/internal/game"
)

// Config is the full application configuration.
type Config struct {
	Game  GameConfig  `yaml:"game"`
	Files FilesConfig `yaml:"files"`
	Theme ThemeConfig `yaml:"theme"`
}

// GameConfig selects the gameplay options the menu starts from and the
// tick period.
type GameConfig struct {
	Wraparound bool   `yaml:"wraparound"`
	Obstacles  bool   `yaml:"obstacles"`
	Fruits     int    `yaml:"fruits"`
	Size       string `yaml:"size"` // "small", "medium", or "large"
	TickMillis int    `yaml:"tick_millis"`
}

// FilesConfig locates the database and log files.
type FilesConfig struct {
	DB                  string `yaml:"db"`
	Log                 string `yaml:"log"`
	IgnoreStorageErrors bool   `yaml:"ignore_storage_errors"`
}

// ThemeConfig sets the glyphs and colors used on the board. Glyph fields
// hold a single rune each; longer values are truncated to their first rune.
type ThemeConfig struct {
	HeadNorth string `yaml:"head_north"`
	HeadSouth string `yaml:"head_south"`
	HeadEast  string `yaml:"head_east"`
	HeadWest  string `yaml:"head_west"`
	Body      string `yaml:"body"`
	Fruit     string `yaml:"fruit"`
	Obstacle  string `yaml:"obstacle"`
	Collision string `yaml:"collision"`

	SnakeColor    string `yaml:"snake_color"`
	FruitColor    string `yaml:"fruit_color"`
	ObstacleColor string `yaml:"obstacle_color"`
	BorderColor   string `yaml:"border_color"`
}

// Options converts the configured gameplay fields into game options,
// falling back per field when a value is out of range. The returned
// notices describe every replacement made.
func (c Config) Options() (game.Options, []string) {
	var notices []string

	opts := game.Options{
		Wraparound: c.Game.Wraparound,
		Obstacles:  c.Game.Obstacles,
		Fruits:     c.Game.Fruits,
	}

	size, err := game.ParseLevelSize(c.Game.Size)
	if err != nil {
		notices = append(notices, err.Error()+"; using large")
		size = game.SizeLarge
	}
	opts.Size = size

	opts, sanitizeNotices := opts.Sanitize()
	return opts, append(notices, sanitizeNotices...)
}

// TickPeriod returns the configured tick period, or the default when the
// configured value is not positive.
func (c Config) TickPeriod() time.Duration {
	if c.Game.TickMillis <= 0 {
		return defaultTickMillis * time.Millisecond
	}
	return time.Duration(c.Game.TickMillis) * time.Millisecond
}

// Rune returns the first rune of a glyph field, or the fallback when the
// field is empty.
func Rune(glyph string, fallback rune) rune {
	for _, r := range glyph {
		return r
	}
	return fallback
}
