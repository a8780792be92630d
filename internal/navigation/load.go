package navigation

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Candidate navigation config file names at the source root, in preference order.
var configNames = []string{"docs.json", "docs.yml", "docs.yaml"}

// ErrUnsupportedConfig indicates a navigation config file with an extension
// that is neither JSON nor YAML.
var ErrUnsupportedConfig = errors.New("unsupported navigation config file")

// FindConfig returns the path of the navigation config file at srcRoot, or
// "" when none exists. A missing config is not an error: source trees without
// navigation are built without one.
func FindConfig(srcRoot string) string {
	for _, name := range configNames {
		path := filepath.Join(srcRoot, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path
		}
	}
	return ""
}

// Load parses a navigation config file. Malformed input is always fatal for
// the build and is surfaced with the offending path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read navigation config %s: %w", path, err)
	}

	cfg := &Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON navigation config %s: %w", path, err)
		}
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML navigation config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfig, path)
	}
	return cfg, nil
}

// WriteJSON writes the config as JSON with two-space indentation. The output
// is always JSON regardless of the input dialect.
func WriteJSON(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode navigation config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write navigation config %s: %w", path, err)
	}
	return nil
}
