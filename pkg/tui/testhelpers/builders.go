package testhelpers

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/drumroll/pkg/datepicker"
	"github.com/pluqqy/drumroll/pkg/models"
)

// TestNow is the wall clock every TUI test runs at
var TestNow = time.Date(2026, time.October, 17, 9, 30, 0, 0, time.UTC)

// TestClock returns a clock fixed at TestNow
func TestClock() datepicker.Clock {
	return datepicker.FixedClock(TestNow)
}

// TestSettings returns default settings with English text and timers short
// enough to run in tests. Mutators are applied in order.
func TestSettings(mutators ...func(*models.Settings)) *models.Settings {
	s := models.DefaultSettings()
	s.UI.Language = "en"
	s.Picker.SettleDelayMs = 1
	s.Picker.FrameMs = 1
	for _, mutate := range mutators {
		mutate(s)
	}
	return s
}

var keyTypes = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"home":      tea.KeyHome,
	"end":       tea.KeyEnd,
	"pgup":      tea.KeyPgUp,
	"pgdown":    tea.KeyPgDown,
	"ctrl+c":    tea.KeyCtrlC,
	" ":         tea.KeySpace,
}

// KeyPress builds the key message bubbletea sends for name. Names that are
// not special keys are sent as runes.
func KeyPress(name string) tea.KeyMsg {
	if kt, ok := keyTypes[name]; ok {
		if kt == tea.KeySpace {
			return tea.KeyMsg{Type: kt, Runes: []rune(" ")}
		}
		return tea.KeyMsg{Type: kt}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

// MouseClick is a left button press at (x, y)
func MouseClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
}

// MouseWheel is one wheel notch at (x, y), down when down is set
func MouseWheel(x, y int, down bool) tea.MouseMsg {
	button := tea.MouseButtonWheelUp
	if down {
		button = tea.MouseButtonWheelDown
	}
	return tea.MouseMsg{X: x, Y: y, Button: button, Action: tea.MouseActionPress}
}

// Drive feeds the messages produced by cmd back into m until no command is
// left. A command that has not returned within horizon is dropped, so long
// timers such as status clearing never fire.
func Drive(t *testing.T, m tea.Model, cmd tea.Cmd, horizon time.Duration) tea.Model {
	t.Helper()

	const maxSteps = 10000
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > maxSteps {
			t.Fatalf("Drive did not go idle after %d steps", maxSteps)
		}
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		msg, ok := run(next, horizon)
		if !ok {
			continue
		}
		switch msg := msg.(type) {
		case nil, tea.QuitMsg:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		default:
			var follow tea.Cmd
			m, follow = m.Update(msg)
			queue = append(queue, follow)
		}
	}
	return m
}

func run(cmd tea.Cmd, horizon time.Duration) (tea.Msg, bool) {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		return msg, true
	case <-time.After(horizon):
		return nil, false
	}
}
