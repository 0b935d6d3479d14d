// Package game implements the snake game engine: level generation, snake
// movement and growth, collision resolution, and the per-playthrough
// session. It is pure logic; rendering and input mapping live in the
// platform layer.
package game

import "fmt"

// MaxFruits is the largest fruit count the options allow.
const MaxFruits = 10

// LevelSize selects one of the fixed level presets.
type LevelSize int

const (
	SizeSmall LevelSize = iota
	SizeMedium
	SizeLarge
)

// Dims returns the grid dimensions for the preset.
func (s LevelSize) Dims() (w, h int) {
	switch s {
	case SizeSmall:
		return 38, 8
	case SizeMedium:
		return 53, 12
	default:
		return 76, 19
	}
}

func (s LevelSize) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	default:
		return "large"
	}
}

// ParseLevelSize converts a stored size name back to a preset.
func ParseLevelSize(name string) (LevelSize, error) {
	switch name {
	case "small":
		return SizeSmall, nil
	case "medium":
		return SizeMedium, nil
	case "large":
		return SizeLarge, nil
	default:
		return SizeLarge, fmt.Errorf("unknown level size %q", name)
	}
}

// Options are the gameplay settings a level is built from. The struct is a
// comparable value type; it doubles as the high-score bucket key.
type Options struct {
	Wraparound bool
	Obstacles  bool
	Fruits     int
	Size       LevelSize
}

// DefaultOptions returns the built-in defaults: a large level with one
// fruit, no wraparound, no obstacles.
func DefaultOptions() Options {
	return Options{Fruits: 1, Size: SizeLarge}
}

// Sanitize replaces out-of-range fields with their defaults, leaving valid
// fields untouched. It returns a notice string per replaced field.
func (o Options) Sanitize() (Options, []string) {
	var notices []string
	if o.Fruits < 1 || o.Fruits > MaxFruits {
		notices = append(notices,
			fmt.Sprintf("fruit count %d out of range [1,%d]; using 1", o.Fruits, MaxFruits))
		o.Fruits = 1
	}
	if o.Size < SizeSmall || o.Size > SizeLarge {
		notices = append(notices, "invalid level size; using large")
		o.Size = SizeLarge
	}
	return o, notices
}
