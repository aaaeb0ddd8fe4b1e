package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/todolist/internal/core/config"
)

// ConfigCheck validates the config file and the paths it resolves to.
type ConfigCheck struct {
	cfg        *config.Config
	configPath string
}

// NewConfigCheck creates a new config check.
func NewConfigCheck(cfg *config.Config, configPath string) *ConfigCheck {
	return &ConfigCheck{cfg: cfg, configPath: configPath}
}

func (c *ConfigCheck) Name() string {
	return "Configuration"
}

func (c *ConfigCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	switch _, err := os.Stat(c.configPath); {
	case err == nil:
		result.Items = append(result.Items, CheckItem{Label: "config file", Status: StatusPass, Detail: c.configPath})
	case errors.Is(err, os.ErrNotExist):
		result.Items = append(result.Items, CheckItem{Label: "config file", Status: StatusPass, Detail: "not found, using defaults"})
	default:
		result.Items = append(result.Items, CheckItem{Label: "config file", Status: StatusFail, Detail: err.Error()})
	}

	if c.cfg == nil {
		result.Items = append(result.Items, CheckItem{Label: "settings", Status: StatusFail, Detail: "config not loaded"})
		return result
	}

	err := c.cfg.ValidateDeep(c.configPath)
	if err == nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "settings",
			Status: StatusPass,
			Detail: fmt.Sprintf("theme %s, placeholder %q", c.cfg.TUI.Theme, c.cfg.DuePlaceholder),
		})
		return result
	}

	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			result.Items = append(result.Items, CheckItem{Label: fe.Field, Status: StatusFail, Detail: fe.Err.Error()})
		}
		return result
	}

	result.Items = append(result.Items, CheckItem{Label: "settings", Status: StatusFail, Detail: err.Error()})
	return result
}
