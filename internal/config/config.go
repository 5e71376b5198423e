package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file name looked up when no path is given.
const DefaultFile = "topictree.yaml"

// DefaultLevels are the difficulty tiers used when a config lists none.
var DefaultLevels = []string{"starter", "beginner", "advanced", "expert"}

// Config is the content of topictree.yaml.
type Config struct {
	Root   string   `yaml:"root"`
	Levels []string `yaml:"levels"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Root:   ".",
		Levels: slices.Clone(DefaultLevels),
	}
}

// Load reads and parses the config at path. An empty root becomes "." and
// missing levels become DefaultLevels.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Root == "" {
		cfg.Root = "."
	}
	if cfg.Levels == nil {
		cfg.Levels = slices.Clone(DefaultLevels)
	}

	return &cfg, nil
}

// LoadOrDefault loads path, falling back to Default when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return out, nil
}

// HasLevel reports whether level is one of the configured levels.
func (c *Config) HasLevel(level string) bool {
	return slices.Contains(c.Levels, level)
}
