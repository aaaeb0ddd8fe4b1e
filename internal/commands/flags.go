package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/hay-kot/todolist/internal/core/config"
	"github.com/hay-kot/todolist/internal/core/task"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string
	DataFile   string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Store is the single task store opened in the Before hook
	Store task.Store
}

// TaskFile returns the backing file path. The --data-file flag wins over
// the config file; both fall back to tasks.json in the data directory.
func (f *Flags) TaskFile() string {
	if f.DataFile != "" {
		return f.DataFile
	}
	if f.Config != nil {
		return f.Config.TaskFile()
	}
	return filepath.Join(f.DataDir, config.DefaultDataFile)
}

// LoadConfig reads the config file into f.Config. Invalid values stop every
// command except doctor, which reports them as failed checks.
func (f *Flags) LoadConfig(command string) error {
	cfg, err := config.Read(f.ConfigPath, f.DataDir)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		if command != doctorCommandName {
			return fmt.Errorf("invalid config: %w", err)
		}
		log.Warn().Err(err).Msg("invalid config, continuing for doctor")
	}

	f.Config = cfg
	return nil
}

// DuePlaceholder returns the configured placeholder for absent due dates.
func (f *Flags) DuePlaceholder() string {
	if f.Config != nil && f.Config.DuePlaceholder != "" {
		return f.Config.DuePlaceholder
	}
	return task.DefaultDuePlaceholder
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "todolist", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "todolist")
}
