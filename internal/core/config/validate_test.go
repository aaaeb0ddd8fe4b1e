package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a Config with all required fields set for testing.
func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()
	return &cfg
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, validConfig(t).Validate())
}

func TestValidate_FieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		field  string
	}{
		{name: "empty data dir", mutate: func(c *Config) { c.DataDir = "" }, field: "data_dir"},
		{name: "blank placeholder", mutate: func(c *Config) { c.DuePlaceholder = "  " }, field: "due_placeholder"},
		{name: "unknown theme", mutate: func(c *Config) { c.TUI.Theme = "solarized" }, field: "tui.theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)

			err := cfg.Validate()

			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			require.Len(t, fieldErrs, 1)
			assert.Equal(t, tt.field, fieldErrs[0].Field)
		})
	}
}

func TestLoad_InvalidTheme(t *testing.T) {
	path := writeConfig(t, "config.yaml", "tui:\n  theme: neon\n")

	_, err := Load(path, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestValidateDeep_ValidConfig(t *testing.T) {
	cfg := validConfig(t)
	path := writeConfig(t, "config.yaml", "")

	assert.NoError(t, cfg.ValidateDeep(path))
}

func TestValidateDeep_ConfigFileIsDirectory(t *testing.T) {
	cfg := validConfig(t)

	err := cfg.ValidateDeep(t.TempDir())

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldNames(fieldErrs), "config_file")
}

func TestValidateDeep_DataDirIsFile(t *testing.T) {
	cfg := validConfig(t)
	file := filepath.Join(cfg.DataDir, "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	cfg.DataDir = file

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldNames(fieldErrs), "data_dir")
}

func TestValidateDeep_DataFileIsDirectory(t *testing.T) {
	cfg := validConfig(t)
	require.NoError(t, os.Mkdir(filepath.Join(cfg.DataDir, DefaultDataFile), 0o755))

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldNames(fieldErrs), "data_file")
}

func fieldNames(errs criterio.FieldErrors) []string {
	names := make([]string, len(errs))
	for i, e := range errs {
		names[i] = e.Field
	}
	return names
}
