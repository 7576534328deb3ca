package testhelpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pluqqy/drumroll/pkg/files"
	"github.com/pluqqy/drumroll/pkg/models"
)

// TestEnvironment is a temporary working directory for tests that read or
// write the project settings
type TestEnvironment struct {
	t          *testing.T
	TempDir    string
	OriginalWd string
}

// NewTestEnvironment creates a new test environment with a temporary directory.
// The working directory is restored when the test ends.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}

	env := &TestEnvironment{
		t:          t,
		TempDir:    t.TempDir(),
		OriginalWd: originalWd,
	}
	t.Cleanup(func() {
		os.Chdir(originalWd)
	})
	return env
}

// ChangeToTempDir changes the working directory to the temp directory
func (e *TestEnvironment) ChangeToTempDir() {
	e.t.Helper()
	if err := os.Chdir(e.TempDir); err != nil {
		e.t.Fatalf("Failed to change to temp dir: %v", err)
	}
}

// SettingsPath is where the environment keeps its settings file
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.TempDir, files.DrumrollDir, files.SettingsFile)
}

// CreateSettings writes settings to the environment's settings file
func (e *TestEnvironment) CreateSettings(settings *models.Settings) string {
	e.t.Helper()

	path := e.SettingsPath()
	if err := files.WriteSettingsTo(path, settings); err != nil {
		e.t.Fatalf("Failed to write settings file: %v", err)
	}
	return path
}

// CreateRawSettings writes content verbatim to the settings file
func (e *TestEnvironment) CreateRawSettings(content string) string {
	e.t.Helper()

	path := e.SettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.t.Fatalf("Failed to create settings directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write settings file: %v", err)
	}
	return path
}
