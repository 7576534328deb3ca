package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/drumroll/pkg/datepicker"
	"github.com/pluqqy/drumroll/pkg/locale"
	"github.com/pluqqy/drumroll/pkg/models"
)

// Block indexes inside the dialog frame
const (
	blockWheels = iota
	blockButtons
)

// DatePickerModel is the modal dialog with the year, month and day wheels
type DatePickerModel struct {
	dialog        *datepicker.Dialog
	tr            *locale.Translator
	keys          pickerKeyMap
	help          help.Model
	wheels        []*WheelModel
	colors        models.HighlightColors
	focus         int
	session       int
	width         int
	height        int
	settleDelay   time.Duration
	frameInterval time.Duration
	mouseStep     int
}

// NewDatePickerModel creates the dialog view over dialog
func NewDatePickerModel(dialog *datepicker.Dialog, tr *locale.Translator, settings *models.Settings) *DatePickerModel {
	return &DatePickerModel{
		dialog:        dialog,
		tr:            tr,
		keys:          newPickerKeyMap(tr),
		help:          help.New(),
		colors:        settings.UI.Colors,
		settleDelay:   time.Duration(settings.Picker.SettleDelayMs) * time.Millisecond,
		frameInterval: time.Duration(settings.Picker.FrameMs) * time.Millisecond,
		mouseStep:     settings.Picker.MouseStep,
	}
}

// Open starts a dialog session on initial (nil for the default date)
func (m *DatePickerModel) Open(initial *datepicker.Date) {
	m.dialog.Open(initial)
	m.session++
	m.focus = 0
	m.help.ShowAll = false
	m.wheels = m.wheels[:0]
	for _, field := range datepicker.Fields {
		m.wheels = append(m.wheels, newWheelModel(
			field,
			m.dialog.Picker(field),
			m.tr.WheelHeader(field),
			m.colorFor(field),
			m.session,
		))
	}
}

func (m *DatePickerModel) colorFor(field datepicker.Field) string {
	switch field {
	case datepicker.FieldYear:
		return m.colors.Year
	case datepicker.FieldMonth:
		return m.colors.Month
	default:
		return m.colors.Day
	}
}

// Active returns whether a session is running
func (m *DatePickerModel) Active() bool {
	return m.dialog.IsOpen()
}

// Focused returns the wheel that receives key input
func (m *DatePickerModel) Focused() datepicker.Field {
	return datepicker.Fields[m.focus]
}

// Wheel returns the column for field
func (m *DatePickerModel) Wheel(field datepicker.Field) *WheelModel {
	for _, w := range m.wheels {
		if w.field == field {
			return w
		}
	}
	return nil
}

// SetSize records the terminal size the dialog is centered in
func (m *DatePickerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages while the dialog is open
func (m *DatePickerModel) Update(msg tea.Msg) tea.Cmd {
	if !m.Active() {
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case settleMsg:
		if msg.session == m.session {
			if w := m.Wheel(msg.field); w != nil {
				w.handleSettle(msg)
			}
		}

	case frameMsg:
		if msg.session == m.session {
			if w := m.Wheel(msg.field); w != nil {
				return w.handleFrame(msg, m.frameInterval)
			}
		}
	}

	return nil
}

func (m *DatePickerModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	focused := m.wheels[m.focus]
	visible := focused.picker.VisibleCount()

	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.dialog.Confirm()
	case key.Matches(msg, m.keys.Cancel):
		m.dialog.Cancel()
	case key.Matches(msg, m.keys.Up):
		return focused.scroll(-focused.picker.ItemSize(), m.settleDelay)
	case key.Matches(msg, m.keys.Down):
		return focused.scroll(focused.picker.ItemSize(), m.settleDelay)
	case key.Matches(msg, m.keys.PageUp):
		return focused.scroll(-max(visible/2, 1)*focused.picker.ItemSize(), m.settleDelay)
	case key.Matches(msg, m.keys.PageDown):
		return focused.scroll(max(visible/2, 1)*focused.picker.ItemSize(), m.settleDelay)
	case key.Matches(msg, m.keys.First):
		return focused.tap(0, m.frameInterval)
	case key.Matches(msg, m.keys.Last):
		return focused.tap(focused.picker.Wheel().Len()-1, m.frameInterval)
	case key.Matches(msg, m.keys.Prev):
		m.focus = (m.focus + len(m.wheels) - 1) % len(m.wheels)
	case key.Matches(msg, m.keys.Next):
		m.focus = (m.focus + 1) % len(m.wheels)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

func (m *DatePickerModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	_, layout := m.render()
	originX := centerOffset(m.width, layout.frame.Width)
	originY := centerOffset(m.height, layout.frame.Height)
	x := msg.X - originX
	y := msg.Y - originY

	column, row, onWheel := layout.wheelCell(x, y)

	switch {
	case msg.Button == tea.MouseButtonWheelUp && onWheel:
		m.focus = column
		return m.wheels[column].scroll(-m.mouseStep, m.settleDelay)

	case msg.Button == tea.MouseButtonWheelDown && onWheel:
		m.focus = column
		return m.wheels[column].scroll(m.mouseStep, m.settleDelay)

	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		if onWheel {
			m.focus = column
			if index, ok := m.wheels[column].indexAtRow(row); ok {
				return m.wheels[column].tap(index, m.frameInterval)
			}
			return nil
		}
		switch layout.buttonAt(x, y) {
		case buttonConfirm:
			m.dialog.Confirm()
		case buttonCancel:
			m.dialog.Cancel()
		}
	}
	return nil
}

// View renders the dialog centered in the terminal
func (m *DatePickerModel) View() string {
	if !m.Active() {
		return ""
	}
	rendered, _ := m.render()
	if m.width == 0 || m.height == 0 {
		return rendered
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, rendered)
}

type dialogButton int

const (
	buttonNone dialogButton = iota
	buttonConfirm
	buttonCancel
)

// pickerLayout maps frame-relative coordinates to wheels and buttons
type pickerLayout struct {
	frame        frameLayout
	columns      int
	rows         int
	confirmWidth int
	cancelWidth  int
}

// wheelCell returns the column and viewport row under (x, y). The header
// line is not part of any row.
func (l pickerLayout) wheelCell(x, y int) (int, int, bool) {
	left := l.frame.BlockLeft[blockWheels]
	top := l.frame.BlockTop[blockWheels] + 1
	if y < top || y >= top+l.rows || x < left {
		return 0, 0, false
	}
	stride := wheelColumnWidth + wheelColumnGap
	column := (x - left) / stride
	if column >= l.columns || (x-left)%stride >= wheelColumnWidth {
		return 0, 0, false
	}
	return column, y - top, true
}

func (l pickerLayout) buttonAt(x, y int) dialogButton {
	if y != l.frame.BlockTop[blockButtons] {
		return buttonNone
	}
	left := l.frame.BlockLeft[blockButtons]
	switch {
	case x >= left && x < left+l.confirmWidth:
		return buttonConfirm
	case x >= left+l.confirmWidth+buttonGap && x < left+l.confirmWidth+buttonGap+l.cancelWidth:
		return buttonCancel
	}
	return buttonNone
}

func (m *DatePickerModel) render() (string, pickerLayout) {
	columns := make([]string, 0, len(m.wheels)*2)
	rows := 0
	for i, w := range m.wheels {
		if i > 0 {
			columns = append(columns, strings.Repeat(" ", wheelColumnGap))
		}
		columns = append(columns, w.View(i == m.focus))
		rows = w.picker.VisibleCount()
	}
	wheels := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	confirm := PrimaryButtonStyle.Render(m.tr.T(locale.MsgConfirm))
	cancel := ButtonStyle.Render(m.tr.T(locale.MsgCancel))
	buttons := confirm + strings.Repeat(" ", buttonGap) + cancel

	frame := dialogFrame{
		Title:  m.tr.T(locale.MsgTitle),
		Blocks: []string{wheels, buttons},
		Footer: m.help.View(m.keys),
	}
	rendered, layout := frame.render()

	return rendered, pickerLayout{
		frame:        layout,
		columns:      len(m.wheels),
		rows:         rows,
		confirmWidth: lipgloss.Width(confirm),
		cancelWidth:  lipgloss.Width(cancel),
	}
}
