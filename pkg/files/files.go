package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/drumroll/pkg/models"
)

const (
	DrumrollDir  = ".drumroll"
	SettingsFile = "settings.yaml"
)

// ErrNoSettings is returned when the settings file does not exist.
var ErrNoSettings = errors.New("settings file not found")

// SettingsPath is the default settings location, relative to the working directory.
func SettingsPath() string {
	return filepath.Join(DrumrollDir, SettingsFile)
}

func InitProjectStructure() error {
	if err := os.MkdirAll(DrumrollDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", DrumrollDir, err)
	}
	return nil
}

// ReadSettingsFrom reads settings from path. Keys missing from the file keep
// their default values.
func ReadSettingsFrom(path string) (*models.Settings, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoSettings, path)
		}
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML %s: %w", path, err)
	}
	settings.ApplyDefaults()

	return settings, nil
}

// LoadSettings reads settings from path, falling back to the defaults when
// the file does not exist. Any other error is returned.
func LoadSettings(path string) (*models.Settings, error) {
	settings, err := ReadSettingsFrom(path)
	if errors.Is(err, ErrNoSettings) {
		return models.DefaultSettings(), nil
	}
	return settings, err
}

// WriteSettingsTo writes settings as YAML to path, creating its directory.
func WriteSettingsTo(path string, settings *models.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for settings: %w", err)
	}

	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}

	return nil
}
