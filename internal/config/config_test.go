package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/slithergame/slither/internal/game"
)

func TestDefaultConfigOptions(t *testing.T) {
	opts, notices := DefaultConfig().Options()
	if len(notices) != 0 {
		t.Fatalf("defaults produced notices: %v", notices)
	}
	if opts != game.DefaultOptions() {
		t.Fatalf("default config options = %+v, want %+v", opts, game.DefaultOptions())
	}
}

func TestDefaultConfigMatchesEmbedded(t *testing.T) {
	cfg, err := Load(writeConfig(t, string(defaultYAML)))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("embedded defaults = %+v, want %+v", cfg, DefaultConfig())
	}
}

func TestOptionsSanitizesBadFields(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Game.Fruits = 99
	cfg.Game.Size = "colossal"

	opts, notices := cfg.Options()
	if len(notices) != 2 {
		t.Fatalf("notices = %v, want 2 of them", notices)
	}
	if opts.Fruits != 1 {
		t.Errorf("fruits = %d, want fallback 1", opts.Fruits)
	}
	if opts.Size != game.SizeLarge {
		t.Errorf("size = %v, want fallback large", opts.Size)
	}
}

func TestTickPeriod(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.TickPeriod(); got != 200*time.Millisecond {
		t.Errorf("default tick period = %v, want 200ms", got)
	}

	cfg.Game.TickMillis = 50
	if got := cfg.TickPeriod(); got != 50*time.Millisecond {
		t.Errorf("tick period = %v, want 50ms", got)
	}

	cfg.Game.TickMillis = -1
	if got := cfg.TickPeriod(); got != 200*time.Millisecond {
		t.Errorf("negative tick period = %v, want 200ms fallback", got)
	}
}

func TestRune(t *testing.T) {
	if got := Rune("●x", '?'); got != '●' {
		t.Errorf("Rune = %q, want first rune", got)
	}
	if got := Rune("", '?'); got != '?' {
		t.Errorf("Rune on empty = %q, want fallback", got)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadCustomPath(t *testing.T) {
	path := writeConfig(t, `
game:
  wraparound: true
  fruits: 3
  size: small
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	opts, notices := cfg.Options()
	if len(notices) != 0 {
		t.Fatalf("notices: %v", notices)
	}
	want := game.Options{Wraparound: true, Fruits: 3, Size: game.SizeSmall}
	if opts != want {
		t.Fatalf("options = %+v, want %+v", opts, want)
	}

	// Fields the file omits keep their defaults
	if cfg.Theme.Fruit != "●" {
		t.Errorf("partial config lost default theme: %q", cfg.Theme.Fruit)
	}
	if cfg.TickPeriod() != 200*time.Millisecond {
		t.Errorf("partial config lost default tick period: %v", cfg.TickPeriod())
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing explicit path")
	}
}

func TestLoadBadYAMLFails(t *testing.T) {
	path := writeConfig(t, "game: [not a map")
	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}
