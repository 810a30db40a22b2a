package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the search directories.
const FileName = "snake.yaml"

// Source describes where a loaded configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// Load loads and validates the snake configuration.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
//
// A custom path that cannot be read or parsed is an error. Broken files in
// the other locations are skipped. Fields missing from a file keep their
// default values.
func Load(customPath string) (SnakeConfig, Source, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := parseFile(customPath)
		if err != nil {
			return cfg, SourceCustom, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, SourceCustom, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	candidates := []struct {
		path   string
		source Source
	}{
		{userConfigPath(FileName), SourceUser},
		{filepath.Join("configs", FileName), SourceLocal},
	}
	for _, c := range candidates {
		if c.path == "" {
			continue
		}
		if cfg, err := parseFile(c.path); err == nil && cfg.Validate() == nil {
			return cfg, c.source, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultSnakeConfig(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

// parseFile decodes path on top of the defaults.
func parseFile(path string) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}
