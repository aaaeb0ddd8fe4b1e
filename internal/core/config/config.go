// Package config handles configuration loading and validation for todolist.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/hay-kot/todolist/internal/core/styles"
	"github.com/hay-kot/todolist/internal/core/task"
)

// DefaultDataFile is the backing file name inside the data directory.
const DefaultDataFile = "tasks.json"

// Config holds the application configuration.
type Config struct {
	// DataFile overrides the backing file. Relative paths resolve against
	// DataDir.
	DataFile       string    `yaml:"data_file" toml:"data_file"`
	DuePlaceholder string    `yaml:"due_placeholder" toml:"due_placeholder"`
	TUI            TUIConfig `yaml:"tui" toml:"tui"`
	DataDir        string    `yaml:"-" toml:"-"` // set by caller, not from config file
}

// TUIConfig holds interactive interface settings.
type TUIConfig struct {
	Theme string `yaml:"theme" toml:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DuePlaceholder: task.DefaultDuePlaceholder,
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
	}
}

// Load reads configuration from the given path and sets the data directory,
// then validates the result. See Read for how the file is located.
func Load(configPath, dataDir string) (*Config, error) {
	cfg, err := Read(configPath, dataDir)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Read decodes the config file and applies defaults without validating. If
// configPath is empty or doesn't exist, returns defaults with the provided
// dataDir. Files ending in .toml are decoded as TOML, anything else as YAML.
func Read(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := decode(configPath, data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.DataDir = dataDir
	cfg.applyDefaults()

	return &cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.DuePlaceholder == "" {
		c.DuePlaceholder = defaults.DuePlaceholder
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
}

// TaskFile returns the resolved backing file path.
func (c *Config) TaskFile() string {
	switch {
	case c.DataFile == "":
		return filepath.Join(c.DataDir, DefaultDataFile)
	case filepath.IsAbs(c.DataFile):
		return c.DataFile
	default:
		return filepath.Join(c.DataDir, c.DataFile)
	}
}
