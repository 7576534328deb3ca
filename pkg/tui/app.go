package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/drumroll/internal/logging"
	"github.com/pluqqy/drumroll/pkg/datepicker"
	"github.com/pluqqy/drumroll/pkg/locale"
	"github.com/pluqqy/drumroll/pkg/models"
	"github.com/pluqqy/drumroll/pkg/wheel"
)

// Host rows above the display field
const hostTitleRows = 2

// AppConfig configures the host screen
type AppConfig struct {
	Settings *models.Settings
	// Clock supplies the default year; nil uses the wall clock
	Clock datepicker.Clock
	// Initial is the date the first session opens on when nothing is confirmed yet
	Initial     *datepicker.Date
	OpenOnStart bool
	// Clipboard replaces clipboard.WriteAll
	Clipboard func(string) error
}

// App is the host screen: a read-only date field, a button that opens the
// picker dialog, and a status bar.
type App struct {
	settings  *models.Settings
	tr        *locale.Translator
	dialog    *datepicker.Dialog
	picker    *DatePickerModel
	display   textinput.Model
	keys      hostKeyMap
	help      help.Model
	copyDate  func(string) error
	initial   *datepicker.Date
	result    *datepicker.Date
	pending   []tea.Cmd
	width     int
	height    int
	statusMsg string
	statusSeq int
}

// NewApp builds the host screen from cfg
func NewApp(cfg AppConfig) (*App, error) {
	settings := cfg.Settings
	if settings == nil {
		settings = models.DefaultSettings()
	}
	settings.ApplyDefaults()

	tr, err := locale.New(settings.UI.Language)
	if err != nil {
		return nil, err
	}
	if err := tr.SetDateFormat(settings.UI.DateFormat); err != nil {
		return nil, err
	}

	policy, err := wheel.PolicyByName(settings.Picker.Policy)
	if err != nil {
		return nil, err
	}

	a := &App{
		settings: settings,
		tr:       tr,
		keys:     newHostKeyMap(tr),
		help:     help.New(),
		copyDate: cfg.Clipboard,
		initial:  cfg.Initial,
	}
	if a.copyDate == nil {
		a.copyDate = clipboard.WriteAll
	}

	dialog, err := datepicker.NewDialog(datepicker.Config{
		MinYear:      settings.Picker.YearMin,
		MaxYear:      settings.Picker.YearMax,
		VisibleCount: settings.Picker.VisibleItems,
		ItemSize:     settings.Picker.ItemSize,
		Policy:       policy,
		Snap:         settings.Picker.Snap,
		Clock:        cfg.Clock,
	}, datepicker.Callbacks{
		OnConfirm: a.handleConfirm,
		OnCancel:  a.handleCancel,
		OnChange:  a.handleChange,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create date picker: %w", err)
	}
	a.dialog = dialog
	a.picker = NewDatePickerModel(dialog, tr, settings)

	a.display = textinput.New()
	a.display.Prompt = ""
	a.display.Placeholder = tr.T(locale.MsgPlaceholder)
	a.display.PlaceholderStyle = PlaceholderStyle
	a.display.TextStyle = DisplayTextStyle
	a.display.Width = displayWidth
	a.display.Blur()

	if cfg.OpenOnStart {
		a.openPicker()
	}
	return a, nil
}

func (a *App) Init() tea.Cmd {
	return nil
}

// Result returns the last confirmed date
func (a *App) Result() (datepicker.Date, bool) {
	if a.result == nil {
		return datepicker.Date{}, false
	}
	return *a.result, true
}

// Display returns the text of the host date field
func (a *App) Display() string {
	return a.display.Value()
}

// Status returns the current status bar message
func (a *App) Status() string {
	return a.statusMsg
}

// Picker returns the dialog model
func (a *App) Picker() *DatePickerModel {
	return a.picker
}

func (a *App) openPicker() {
	initial := a.initial
	if a.result != nil {
		initial = a.result
	}
	a.picker.SetSize(a.width, a.height)
	a.picker.Open(initial)
	slog.Debug("dialog opened",
		logging.KeyComponent, logging.CompDialog,
		logging.KeyDate, a.dialog.Snapshot().String(),
	)
}

func (a *App) handleConfirm(d datepicker.Date) {
	a.result = &d
	text := a.tr.FormatDate(d)
	a.display.SetValue(text)
	slog.Info("date confirmed",
		logging.KeyComponent, logging.CompDialog,
		logging.KeyDate, d.String(),
	)

	if a.settings.UI.CopyOnConfirm {
		a.pending = append(a.pending, a.copyCmd(text))
	}
}

func (a *App) handleCancel() {
	slog.Debug("dialog cancelled", logging.KeyComponent, logging.CompDialog)
}

func (a *App) handleChange(field datepicker.Field, value int) {
	slog.Debug("wheel changed",
		logging.KeyComponent, logging.CompDialog,
		logging.KeyWheel, field.String(),
		logging.KeyValue, value,
	)
}

func (a *App) copyCmd(text string) tea.Cmd {
	write := a.copyDate
	tr := a.tr
	return func() tea.Msg {
		if err := write(text); err != nil {
			slog.Warn("clipboard write failed",
				logging.KeyComponent, logging.CompTUI,
				logging.KeyError, err,
			)
			return StatusMsg(tr.Tf(locale.MsgStatusCopyFailed, map[string]any{"Error": err.Error()}))
		}
		return StatusMsg(tr.Tf(locale.MsgStatusCopied, map[string]any{"Date": text}))
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.picker.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global keybindings
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		a.statusSeq++
		return a, clearStatusAfter(a.statusSeq)

	case clearStatusMsg:
		if msg.seq == a.statusSeq {
			a.statusMsg = ""
		}
		return a, nil
	}

	// Route updates to the dialog while it is open
	if a.picker.Active() {
		cmd := a.picker.Update(msg)
		return a, a.drain(cmd)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Open):
			a.openPicker()
		}

	case tea.MouseMsg:
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress {
			if _, layout := a.render(); layout.onButton(msg.X, msg.Y) {
				a.openPicker()
			}
		}
	}

	return a, nil
}

// drain batches cmd with the commands queued by dialog callbacks
func (a *App) drain(cmd tea.Cmd) tea.Cmd {
	if len(a.pending) == 0 {
		return cmd
	}
	cmds := append(a.pending, cmd)
	a.pending = nil
	return tea.Batch(cmds...)
}

func (a *App) View() string {
	if a.picker.Active() {
		return a.picker.View()
	}
	content, _ := a.render()

	// Add status bar if there's a message
	if a.statusMsg != "" {
		statusBar := StatusBarStyle.Render(a.statusMsg)
		content = lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
	}

	return content
}

// hostLayout is the button's cell range in the host view
type hostLayout struct {
	buttonLeft   int
	buttonRight  int
	buttonTop    int
	buttonBottom int
}

func (l hostLayout) onButton(x, y int) bool {
	return x >= l.buttonLeft && x < l.buttonRight && y >= l.buttonTop && y < l.buttonBottom
}

func (a *App) render() (string, hostLayout) {
	field := DisplayBorderStyle.Render(a.display.View())
	button := PrimaryButtonStyle.Render(a.tr.T(locale.MsgOpenButton))
	row := lipgloss.JoinHorizontal(lipgloss.Center, field, strings.Repeat(" ", buttonGap), button)

	var b strings.Builder
	b.WriteString(DialogTitleStyle.Render(a.tr.T(locale.MsgTitle)))
	b.WriteString("\n\n")
	b.WriteString(row)
	b.WriteString("\n\n")
	b.WriteString(a.help.View(a.keys))

	left := lipgloss.Width(field) + buttonGap
	return b.String(), hostLayout{
		buttonLeft:   left,
		buttonRight:  left + lipgloss.Width(button),
		buttonTop:    hostTitleRows,
		buttonBottom: hostTitleRows + lipgloss.Height(row),
	}
}
