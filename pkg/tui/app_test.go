package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/drumroll/pkg/datepicker"
	"github.com/pluqqy/drumroll/pkg/models"
	"github.com/pluqqy/drumroll/pkg/tui/testhelpers"
)

const driveHorizon = 500 * time.Millisecond

// press sends a key and runs the commands it schedules
func press(t *testing.T, a *App, name string) {
	t.Helper()
	_, cmd := a.Update(testhelpers.KeyPress(name))
	testhelpers.Drive(t, a, cmd, driveHorizon)
}

func TestApp_InitialView(t *testing.T) {
	app := newTestApp(t, AppConfig{})

	assert.False(t, app.Picker().Active())
	assert.Empty(t, app.Display())
	_, ok := app.Result()
	assert.False(t, ok)

	view := app.View()
	testhelpers.AssertContains(t, view, "Select a date")
	testhelpers.AssertContains(t, view, "Pick")
}

func TestApp_OpenAndConfirmDefault(t *testing.T) {
	app := newTestApp(t, AppConfig{})

	press(t, app, "enter")
	require.True(t, app.Picker().Active())
	testhelpers.AssertDate(t, datepicker.Date{Year: 2026, Month: 1, Day: 1}, app.dialog.Snapshot())

	press(t, app, "enter")
	assert.False(t, app.Picker().Active())
	assert.Equal(t, "2026 / 1 / 1", app.Display())

	got, ok := app.Result()
	require.True(t, ok)
	testhelpers.AssertDate(t, datepicker.Date{Year: 2026, Month: 1, Day: 1}, got)
}

func TestApp_KeyScrollSettlesSelection(t *testing.T) {
	tests := []struct {
		name  string
		keys  []string
		field datepicker.Field
		want  int
	}{
		{name: "down scrolls one year", keys: []string{"down"}, field: datepicker.FieldYear, want: 2027},
		{name: "k scrolls back one year", keys: []string{"k"}, field: datepicker.FieldYear, want: 2025},
		{name: "pgdown scrolls half the window", keys: []string{"pgdown"}, field: datepicker.FieldYear, want: 2028},
		{name: "end taps the last year", keys: []string{"end"}, field: datepicker.FieldYear, want: 2100},
		{name: "home taps the first year", keys: []string{"home"}, field: datepicker.FieldYear, want: 1900},
		{name: "focus month then scroll", keys: []string{"right", "down", "down"}, field: datepicker.FieldMonth, want: 3},
		{name: "shift+tab wraps to day", keys: []string{"shift+tab", "j"}, field: datepicker.FieldDay, want: 2},
		{name: "top boundary clamps", keys: []string{"l", "up"}, field: datepicker.FieldMonth, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, AppConfig{})
			press(t, app, "enter")

			for _, k := range tt.keys {
				press(t, app, k)
			}

			picker := app.dialog.Picker(tt.field)
			require.NotNil(t, picker)
			assert.Equal(t, tt.want, picker.Selected())
			assert.False(t, picker.Scrolling())
			assert.Equal(t, tt.field, app.Picker().Focused())
		})
	}
}

func TestApp_ScrollHighlightsResolvedRow(t *testing.T) {
	app := newTestApp(t, AppConfig{})
	press(t, app, "enter")

	// Before the settle tick runs the selection does not move
	_, cmd := app.Update(testhelpers.KeyPress("down"))
	year := app.dialog.Picker(datepicker.FieldYear)
	assert.Equal(t, 2026, year.Selected())
	assert.True(t, year.Scrolling())

	testhelpers.Drive(t, app, cmd, driveHorizon)
	assert.Equal(t, 2027, year.Selected())

	band := app.Picker().Wheel(datepicker.FieldYear).bandRow()
	m := year.Metrics()
	assert.Equal(t, year.SelectedIndex(), m.FirstVisibleIndex+band)
}

func TestApp_StaleSettleIsIgnored(t *testing.T) {
	app := newTestApp(t, AppConfig{})
	press(t, app, "enter")

	_, first := app.Update(testhelpers.KeyPress("down"))
	_, second := app.Update(testhelpers.KeyPress("down"))

	year := app.dialog.Picker(datepicker.FieldYear)
	testhelpers.Drive(t, app, first, driveHorizon)
	assert.Equal(t, 0, year.Resolutions())
	assert.True(t, year.Scrolling())

	testhelpers.Drive(t, app, second, driveHorizon)
	assert.Equal(t, 1, year.Resolutions())
	assert.Equal(t, 2028, year.Selected())
}

func TestApp_SettleFromClosedSessionIsIgnored(t *testing.T) {
	app := newTestApp(t, AppConfig{})
	press(t, app, "enter")

	_, stale := app.Update(testhelpers.KeyPress("down"))
	press(t, app, "esc")
	press(t, app, "enter")

	testhelpers.Drive(t, app, stale, driveHorizon)

	year := app.dialog.Picker(datepicker.FieldYear)
	assert.Equal(t, 0, year.Resolutions())
	assert.Equal(t, 2026, year.Selected())
}

func TestApp_CancelLeavesDisplayUnchanged(t *testing.T) {
	app := newTestApp(t, AppConfig{})

	press(t, app, "enter")
	press(t, app, "enter")
	require.Equal(t, "2026 / 1 / 1", app.Display())

	press(t, app, "enter")
	press(t, app, "down")
	press(t, app, "esc")

	assert.False(t, app.Picker().Active())
	assert.Equal(t, "2026 / 1 / 1", app.Display())
	got, _ := app.Result()
	testhelpers.AssertDate(t, datepicker.Date{Year: 2026, Month: 1, Day: 1}, got)
}

func TestApp_CancelWithoutResult(t *testing.T) {
	app := newTestApp(t, AppConfig{})

	press(t, app, "enter")
	press(t, app, "down")
	press(t, app, "esc")

	assert.Empty(t, app.Display())
	_, ok := app.Result()
	assert.False(t, ok)
}

func TestApp_ReopenStartsFromConfirmedDate(t *testing.T) {
	app := newTestApp(t, AppConfig{})

	press(t, app, "enter")
	press(t, app, "down")
	press(t, app, "enter")

	press(t, app, "enter")
	testhelpers.AssertDate(t, datepicker.Date{Year: 2027, Month: 1, Day: 1}, app.dialog.Snapshot())
}

func TestApp_InitialAndOpenOnStart(t *testing.T) {
	initial := datepicker.Date{Year: 1999, Month: 12, Day: 31}
	app := newTestApp(t, AppConfig{Initial: &initial, OpenOnStart: true})

	require.True(t, app.Picker().Active())
	testhelpers.AssertDate(t, initial, app.dialog.Snapshot())

	press(t, app, "enter")
	assert.Equal(t, "1999 / 12 / 31", app.Display())
}

func TestApp_MouseClickTapsRow(t *testing.T) {
	tests := []struct {
		name   string
		policy string
		column int
		row    int
		field  datepicker.Field
		want   int
	}{
		{name: "center: last row of the day wheel", policy: "center", column: 2, row: 4, field: datepicker.FieldDay, want: 3},
		{name: "center: row above the band", policy: "center", column: 0, row: 1, field: datepicker.FieldYear, want: 2025},
		{name: "threshold: fourth row of the month wheel", policy: "threshold", column: 1, row: 3, field: datepicker.FieldMonth, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := testhelpers.TestSettings(func(s *models.Settings) { s.Picker.Policy = tt.policy })
			app := newTestApp(t, AppConfig{Settings: settings})
			press(t, app, "enter")

			x, y := wheelCellPosition(app, tt.column, tt.row)
			_, cmd := app.Update(testhelpers.MouseClick(x, y))
			testhelpers.Drive(t, app, cmd, driveHorizon)

			assert.Equal(t, tt.want, app.dialog.Picker(tt.field).Selected())
			assert.Equal(t, tt.field, app.Picker().Focused())
		})
	}
}

func TestApp_MouseClickTapThenConfirm(t *testing.T) {
	app := newTestApp(t, AppConfig{})
	press(t, app, "enter")

	x, y := wheelCellPosition(app, 2, 4)
	_, cmd := app.Update(testhelpers.MouseClick(x, y))
	testhelpers.Drive(t, app, cmd, driveHorizon)

	x, y = buttonPosition(app, buttonConfirm)
	_, cmd = app.Update(testhelpers.MouseClick(x, y))
	testhelpers.Drive(t, app, cmd, driveHorizon)

	assert.False(t, app.Picker().Active())
	got, ok := app.Result()
	require.True(t, ok)
	testhelpers.AssertDate(t, datepicker.Date{Year: 2026, Month: 1, Day: 3}, got)
}

func TestApp_MouseClickCancelButton(t *testing.T) {
	app := newTestApp(t, AppConfig{})
	press(t, app, "enter")

	x, y := buttonPosition(app, buttonCancel)
	app.Update(testhelpers.MouseClick(x, y))

	assert.False(t, app.Picker().Active())
	_, ok := app.Result()
	assert.False(t, ok)
}

func TestApp_MouseWheelScrollsColumnUnderPointer(t *testing.T) {
	app := newTestApp(t, AppConfig{})
	press(t, app, "enter")

	x, y := wheelCellPosition(app, 1, 0)
	_, first := app.Update(testhelpers.MouseWheel(x, y, true))
	_, second := app.Update(testhelpers.MouseWheel(x, y, true))
	testhelpers.Drive(t, app, tea.Batch(first, second), driveHorizon)

	month := app.dialog.Picker(datepicker.FieldMonth)
	assert.Equal(t, datepicker.FieldMonth, app.Picker().Focused())
	assert.Equal(t, 1, month.Resolutions())
	assert.Equal(t, 2, month.Selected())
}

func TestApp_MouseOutsideWheelsDoesNothing(t *testing.T) {
	app := newTestApp(t, AppConfig{})
	press(t, app, "enter")

	_, cmd := app.Update(testhelpers.MouseClick(0, 0))
	assert.Nil(t, cmd)
	assert.True(t, app.Picker().Active())
	assert.Equal(t, datepicker.FieldYear, app.Picker().Focused())
}

func TestApp_ClickOpenButton(t *testing.T) {
	app := newTestApp(t, AppConfig{})

	_, layout := app.render()
	app.Update(testhelpers.MouseClick(layout.buttonLeft, layout.buttonTop+1))
	assert.True(t, app.Picker().Active())
}

func TestApp_CopyOnConfirm(t *testing.T) {
	t.Run("copies the formatted date", func(t *testing.T) {
		var copied []string
		settings := testhelpers.TestSettings(func(s *models.Settings) { s.UI.CopyOnConfirm = true })
		app := newTestApp(t, AppConfig{
			Settings: settings,
			Clipboard: func(text string) error {
				copied = append(copied, text)
				return nil
			},
		})

		press(t, app, "enter")
		press(t, app, "enter")

		assert.Equal(t, []string{"2026 / 1 / 1"}, copied)
		assert.Equal(t, "Copied to clipboard: 2026 / 1 / 1", app.Status())
	})

	t.Run("clipboard failure becomes a status message", func(t *testing.T) {
		settings := testhelpers.TestSettings(func(s *models.Settings) { s.UI.CopyOnConfirm = true })
		app := newTestApp(t, AppConfig{
			Settings:  settings,
			Clipboard: func(string) error { return errors.New("no clipboard") },
		})

		press(t, app, "enter")
		press(t, app, "enter")

		assert.Equal(t, "2026 / 1 / 1", app.Display())
		assert.Equal(t, "Copy failed: no clipboard", app.Status())
	})

	t.Run("disabled by default", func(t *testing.T) {
		called := false
		app := newTestApp(t, AppConfig{Clipboard: func(string) error {
			called = true
			return nil
		}})

		press(t, app, "enter")
		press(t, app, "enter")

		assert.False(t, called)
		assert.Empty(t, app.Status())
	})
}

func TestApp_Quit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			app := newTestApp(t, AppConfig{})
			_, cmd := app.Update(testhelpers.KeyPress(k))
			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestApp_QKeyDoesNotQuitDialog(t *testing.T) {
	app := newTestApp(t, AppConfig{})
	press(t, app, "enter")

	_, cmd := app.Update(testhelpers.KeyPress("q"))
	assert.Nil(t, cmd)
	assert.True(t, app.Picker().Active())
}

func TestApp_LocalizedDisplay(t *testing.T) {
	settings := testhelpers.TestSettings(func(s *models.Settings) { s.UI.Language = "ja" })
	app := newTestApp(t, AppConfig{Settings: settings})

	press(t, app, "enter")
	press(t, app, "enter")
	assert.Equal(t, "2026 年 1 月 1 日", app.Display())
}

func TestApp_CustomDateFormat(t *testing.T) {
	settings := testhelpers.TestSettings(func(s *models.Settings) {
		s.UI.DateFormat = `{{printf "%04d-%02d-%02d" .Year .Month .Day}}`
	})
	app := newTestApp(t, AppConfig{Settings: settings})

	press(t, app, "enter")
	press(t, app, "enter")
	assert.Equal(t, "2026-01-01", app.Display())
}

func TestNewApp_InvalidSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Settings)
	}{
		{name: "unknown policy", mutate: func(s *models.Settings) { s.Picker.Policy = "nearest" }},
		{name: "unknown language", mutate: func(s *models.Settings) { s.UI.Language = "tlh" }},
		{name: "inverted year range", mutate: func(s *models.Settings) { s.Picker.YearMin, s.Picker.YearMax = 2100, 1900 }},
		{name: "bad date format", mutate: func(s *models.Settings) { s.UI.DateFormat = "{{.Year" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewApp(AppConfig{Settings: testhelpers.TestSettings(tt.mutate)})
			assert.Error(t, err)
		})
	}
}

func wheelCellPosition(a *App, column, row int) (int, int) {
	_, layout := a.picker.render()
	x := centerOffset(a.width, layout.frame.Width) + layout.frame.BlockLeft[blockWheels] +
		column*(wheelColumnWidth+wheelColumnGap) + wheelColumnWidth/2
	y := centerOffset(a.height, layout.frame.Height) + layout.frame.BlockTop[blockWheels] + 1 + row
	return x, y
}

func buttonPosition(a *App, button dialogButton) (int, int) {
	_, layout := a.picker.render()
	x := centerOffset(a.width, layout.frame.Width) + layout.frame.BlockLeft[blockButtons] + 1
	if button == buttonCancel {
		x += layout.confirmWidth + buttonGap
	}
	y := centerOffset(a.height, layout.frame.Height) + layout.frame.BlockTop[blockButtons]
	return x, y
}
