package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the configuration.
// Search order: customPath -> ~/.slither/config.yaml -> ./config.yaml ->
// embedded default. A missing or broken file on the fallback paths is
// skipped silently; an explicit customPath that cannot be read or parsed
// is an error.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg := DefaultConfig()
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userPath := UserConfigPath(); userPath != "" {
		if cfg, ok := tryLoad(userPath); ok {
			return cfg, nil
		}
	}

	if cfg, ok := tryLoad("config.yaml"); ok {
		return cfg, nil
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads one candidate path, layering it over the defaults so a
// partial file only overrides the fields it names.
func tryLoad(path string) (Config, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, false
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, false
	}
	return cfg, true
}

// UserConfigPath returns the per-user config file path, or empty if home
// is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".slither", "config.yaml")
}
