package game

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/slithergame/slither/internal/core"
)

func TestPlaceCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	placed, err := Place(rng, 5, nil, 10, 10)
	if err != nil {
		t.Fatalf("Place() error: %v", err)
	}
	if len(placed) != 5 {
		t.Errorf("placed %d cells, expected 5", len(placed))
	}
	for c := range placed {
		if c.X < 0 || c.X >= 10 || c.Y < 0 || c.Y >= 10 {
			t.Errorf("cell %v out of bounds", c)
		}
	}
}

func TestPlaceAvoidsExcluded(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	excluded := map[core.Coord]struct{}{}
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			if x != 3 || y != 3 {
				excluded[core.Coord{X: x, Y: y}] = struct{}{}
			}
		}
	}

	// Only (3,3) is free on a 4x4 grid.
	placed, err := Place(rng, 1, excluded, 4, 4)
	if err != nil {
		t.Fatalf("Place() error: %v", err)
	}
	if len(placed) != 1 {
		t.Fatalf("placed %d cells, expected 1", len(placed))
	}
	if _, ok := placed[core.Coord{X: 3, Y: 3}]; !ok {
		t.Errorf("expected (3,3), got %v", placed)
	}
}

func TestPlaceInsufficientSpace(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	excluded := map[core.Coord]struct{}{
		{X: 0, Y: 0}: {},
		{X: 1, Y: 0}: {},
	}

	placed, err := Place(rng, 5, excluded, 2, 2)
	if !errors.Is(err, ErrInsufficientSpace) {
		t.Fatalf("expected ErrInsufficientSpace, got %v", err)
	}
	// The two remaining free cells are still returned.
	if len(placed) != 2 {
		t.Errorf("placed %d cells, expected 2", len(placed))
	}
	for c := range excluded {
		if _, ok := placed[c]; ok {
			t.Errorf("excluded cell %v was placed", c)
		}
	}
}

func TestPlaceZeroCount(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	placed, err := Place(rng, 0, nil, 3, 3)
	if err != nil {
		t.Fatalf("Place() error: %v", err)
	}
	if len(placed) != 0 {
		t.Errorf("placed %d cells, expected 0", len(placed))
	}
}

func TestPlaceDistinct(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		placed, err := Place(rng, 20, nil, 8, 8)
		if err != nil {
			t.Fatalf("Place() error: %v", err)
		}
		if len(placed) != 20 {
			t.Fatalf("placed %d cells, expected 20 (set collapsed duplicates?)", len(placed))
		}
	}
}
