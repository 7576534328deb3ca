package tui

import (
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/drumroll/internal/logging"
	"github.com/pluqqy/drumroll/pkg/datepicker"
	"github.com/pluqqy/drumroll/pkg/wheel"
)

// WheelModel renders one picker column and turns key, mouse and timer
// messages into picker motion.
type WheelModel struct {
	field   datepicker.Field
	picker  *wheel.Picker[int]
	header  string
	color   string
	session int
}

func newWheelModel(field datepicker.Field, picker *wheel.Picker[int], header, color string, session int) *WheelModel {
	return &WheelModel{
		field:   field,
		picker:  picker,
		header:  header,
		color:   color,
		session: session,
	}
}

// Field returns which wheel this column shows
func (w *WheelModel) Field() datepicker.Field {
	return w.field
}

// Picker returns the underlying picker
func (w *WheelModel) Picker() *wheel.Picker[int] {
	return w.picker
}

// scroll moves the wheel by delta units and schedules the settle check
func (w *WheelModel) scroll(delta int, delay time.Duration) tea.Cmd {
	gen := w.picker.ScrollBy(delta)
	return settleAfter(delay, w.session, w.field, gen)
}

// tap starts the animation that brings index into the selection band
func (w *WheelModel) tap(index int, interval time.Duration) tea.Cmd {
	gen := w.picker.Tap(index)
	slog.Debug("tap",
		logging.KeyComponent, logging.CompTUI,
		logging.KeyWheel, w.field.String(),
		logging.KeyIndex, index,
		logging.KeyGen, gen,
	)
	return frameAfter(interval, w.session, w.field, gen)
}

// handleSettle ends the motion named by msg; stale generations do nothing
func (w *WheelModel) handleSettle(msg settleMsg) {
	old := w.picker.SelectedIndex()
	if !w.picker.Settle(msg.gen) {
		return
	}
	slog.Debug("settled",
		logging.KeyComponent, logging.CompTUI,
		logging.KeyWheel, w.field.String(),
		logging.KeyGen, msg.gen,
		logging.KeyOld, old,
		logging.KeyNew, w.picker.SelectedIndex(),
	)
}

// handleFrame steps the tap animation and settles when it arrives
func (w *WheelModel) handleFrame(msg frameMsg, interval time.Duration) tea.Cmd {
	if msg.gen != w.picker.Generation() {
		return nil
	}
	if !w.picker.Step() {
		return frameAfter(interval, w.session, w.field, msg.gen)
	}
	w.handleSettle(settleMsg{session: msg.session, field: msg.field, gen: msg.gen})
	return nil
}

// indexAtRow maps a viewport row to an item index
func (w *WheelModel) indexAtRow(row int) (int, bool) {
	m := w.picker.Metrics()
	if row < 0 || row >= m.VisibleCount {
		return 0, false
	}
	index := m.FirstVisibleIndex + row
	if index < 0 || index >= m.ItemCount {
		return 0, false
	}
	return index, true
}

// bandRow is the viewport row whose item the policy selects when aligned
func (w *WheelModel) bandRow() int {
	return -w.picker.Policy().Anchor(0, w.picker.VisibleCount())
}

// View renders the header and the visible rows
func (w *WheelModel) View(focused bool) string {
	cell := lipgloss.NewStyle().Width(wheelColumnWidth).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString(cell.Inherit(GetWheelHeaderStyle(focused)).Render(w.header))

	m := w.picker.Metrics()
	band := w.bandRow()
	selected := w.picker.SelectedIndex()
	for row := 0; row < m.VisibleCount; row++ {
		b.WriteString("\n")

		style := cell.Inherit(WheelItemStyle)
		label := ""
		if index := m.FirstVisibleIndex + row; index >= 0 && index < m.ItemCount {
			label = w.picker.Wheel().Label(index)
			if index == selected {
				style = cell.Inherit(GetHighlightStyle(w.color))
			}
		}
		if focused && row == band {
			style = style.Inherit(WheelBandStyle)
		}
		b.WriteString(style.Render(label))
	}
	return b.String()
}
