package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/drumroll/pkg/tui/testhelpers"
)

func newTestApp(t *testing.T, cfg AppConfig) *App {
	t.Helper()

	if cfg.Settings == nil {
		cfg.Settings = testhelpers.TestSettings()
	}
	if cfg.Clock == nil {
		cfg.Clock = testhelpers.TestClock()
	}
	if cfg.Clipboard == nil {
		cfg.Clipboard = func(string) error { return nil }
	}
	app, err := NewApp(cfg)
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return app
}

func TestAppStatusMessages(t *testing.T) {
	tests := []struct {
		name           string
		status         string
		msg            func(a *App) tea.Msg
		expectStatus   string
		expectClearCmd bool
	}{
		{
			name:           "StatusMsg sets the status and schedules clear",
			msg:            func(*App) tea.Msg { return StatusMsg("Test status message") },
			expectStatus:   "Test status message",
			expectClearCmd: true,
		},
		{
			name:         "clearStatusMsg for the current status clears it",
			status:       "old",
			msg:          func(a *App) tea.Msg { return clearStatusMsg{seq: a.statusSeq} },
			expectStatus: "",
		},
		{
			name:         "clearStatusMsg for an older status keeps the new one",
			status:       "newer",
			msg:          func(a *App) tea.Msg { return clearStatusMsg{seq: a.statusSeq - 1} },
			expectStatus: "newer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, AppConfig{})
			if tt.status != "" {
				app.Update(StatusMsg(tt.status))
			}

			updatedApp, cmd := app.Update(tt.msg(app))
			a := updatedApp.(*App)

			if a.Status() != tt.expectStatus {
				t.Errorf("expected status %q, got %q", tt.expectStatus, a.Status())
			}
			if tt.expectClearCmd && cmd == nil {
				t.Error("expected a command to be returned for clearing status, got nil")
			}
			if !tt.expectClearCmd && cmd != nil {
				t.Error("expected no command, got a command")
			}
		})
	}
}

func TestAppStatusBarRendering(t *testing.T) {
	app := newTestApp(t, AppConfig{})

	testhelpers.AssertNotContains(t, app.View(), "Saved")

	app.Update(StatusMsg("Saved"))
	testhelpers.AssertContains(t, app.View(), "Saved")
}
