package cli

import (
	"fmt"

	"github.com/pluqqy/drumroll/pkg/files"
	"github.com/pluqqy/drumroll/pkg/models"
)

// CommandContext resolves the settings file a command works with
type CommandContext struct {
	SettingsPath string
	Settings     *models.Settings
	explicit     bool
}

// NewCommandContext creates a context for configPath. An empty path means
// the project settings file, which may be missing.
func NewCommandContext(configPath string) *CommandContext {
	if configPath == "" {
		return &CommandContext{SettingsPath: files.SettingsPath()}
	}
	return &CommandContext{SettingsPath: configPath, explicit: true}
}

// LoadSettings reads the settings once. A file named with --config must
// exist; the project file falls back to the defaults.
func (c *CommandContext) LoadSettings() (*models.Settings, error) {
	if c.Settings != nil {
		return c.Settings, nil
	}

	var (
		settings *models.Settings
		err      error
	)
	if c.explicit {
		if err := ValidateFilePath(c.SettingsPath); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		settings, err = files.ReadSettingsFrom(c.SettingsPath)
	} else {
		settings, err = files.LoadSettings(c.SettingsPath)
	}
	if err != nil {
		return nil, err
	}

	c.Settings = settings
	return settings, nil
}
