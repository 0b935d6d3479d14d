package config

import (
	_ "embed"
)

//go:embed defaults/slither.yaml
var defaultYAML []byte

const defaultTickMillis = 200

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			Wraparound: false,
			Obstacles:  false,
			Fruits:     1,
			Size:       "large",
			TickMillis: defaultTickMillis,
		},
		Files: FilesConfig{
			DB:  "~/.slither/slither.db",
			Log: "",
		},
		Theme: ThemeConfig{
			HeadNorth: "^",
			HeadSouth: "v",
			HeadEast:  ">",
			HeadWest:  "<",
			Body:      "⚬",
			Fruit:     "●",
			Obstacle:  "█",
			Collision: "×",

			SnakeColor:    "10",
			FruitColor:    "9",
			ObstacleColor: "8",
			BorderColor:   "7",
		},
	}
}
