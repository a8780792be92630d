// Package config loads the pipeline configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Source Source `yaml:"source"`
	Output Output `yaml:"output"`
	Verify Verify `yaml:"verify,omitempty"`
}

// Source describes where the documentation tree comes from. Either a local
// directory or a git repository (shallow-cloned before the build).
type Source struct {
	Directory string `yaml:"directory,omitempty"`
	GitURL    string `yaml:"git_url,omitempty"`
	GitRef    string `yaml:"git_ref,omitempty"` // branch or tag, default branch when empty
}

// Output describes the build output location. The directory is fully replaced
// on every build.
type Output struct {
	Directory string `yaml:"directory"`
}

// Verify controls post-build link verification.
type Verify struct {
	Links bool `yaml:"links,omitempty"`
	Fatal bool `yaml:"fatal,omitempty"` // fail the build on unresolved links
}

// Load loads configuration from the specified file, expanding environment
// variables in the YAML content. A missing file returns defaults so the CLI
// works out of the box in a docs checkout.
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists; never fatal.
	if err := loadEnvFile(); err == nil {
		fmt.Fprintln(os.Stderr, "Loaded environment variables from .env")
	}

	cfg := defaults()

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", configPath, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Source: Source{Directory: "./docs"},
		Output: Output{Directory: "./build"},
	}
}

func (c *Config) validate() error {
	if c.Source.Directory == "" && c.Source.GitURL == "" {
		return fmt.Errorf("source.directory or source.git_url must be set")
	}
	if c.Output.Directory == "" {
		return fmt.Errorf("output.directory must not be empty")
	}
	if c.Source.Directory != "" {
		src, err := filepath.Abs(c.Source.Directory)
		if err != nil {
			return err
		}
		out, err := filepath.Abs(c.Output.Directory)
		if err != nil {
			return err
		}
		if src == out {
			return fmt.Errorf("output.directory must differ from source.directory (output is deleted on every build)")
		}
	}
	return nil
}
