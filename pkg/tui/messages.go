package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/drumroll/pkg/datepicker"
)

// Messages for communication between views
type StatusMsg string

type clearStatusMsg struct {
	seq int
}

// settleMsg fires once scrolling of a wheel has been quiet for the settle delay
type settleMsg struct {
	session int
	field   datepicker.Field
	gen     uint64
}

// frameMsg advances a tap animation by one frame
type frameMsg struct {
	session int
	field   datepicker.Field
	gen     uint64
}

const statusDuration = 3 * time.Second

func settleAfter(delay time.Duration, session int, field datepicker.Field, gen uint64) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return settleMsg{session: session, field: field, gen: gen}
	})
}

func frameAfter(interval time.Duration, session int, field datepicker.Field, gen uint64) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return frameMsg{session: session, field: field, gen: gen}
	})
}

func clearStatusAfter(seq int) tea.Cmd {
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
