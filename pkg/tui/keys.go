package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/pluqqy/drumroll/pkg/locale"
)

// pickerKeyMap holds the bindings of the date picker dialog
type pickerKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Prev     key.Binding
	Next     key.Binding
	First    key.Binding
	Last     key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
	Help     key.Binding
}

func newPickerKeyMap(tr *locale.Translator) pickerKeyMap {
	return pickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/↓", tr.T(locale.MsgKeyScroll)),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↑/↓", tr.T(locale.MsgKeyScroll)),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup/pgdn", tr.T(locale.MsgKeyPage)),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgup/pgdn", tr.T(locale.MsgKeyPage)),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/→", tr.T(locale.MsgKeyFocus)),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("←/→", tr.T(locale.MsgKeyFocus)),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/end", tr.T(locale.MsgKeyEnds)),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("home/end", tr.T(locale.MsgKeyEnds)),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", tr.T(locale.MsgKeyConfirm)),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", tr.T(locale.MsgKeyCancel)),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", tr.T(locale.MsgKeyHelp)),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k pickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Prev, k.Confirm, k.Cancel, k.Help}
}

// FullHelp implements help.KeyMap
func (k pickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.PageUp, k.First},
		{k.Prev, k.Confirm, k.Cancel, k.Help},
	}
}

// hostKeyMap holds the bindings of the host screen
type hostKeyMap struct {
	Open key.Binding
	Quit key.Binding
}

func newHostKeyMap(tr *locale.Translator) hostKeyMap {
	return hostKeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", tr.T(locale.MsgKeyOpen)),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", tr.T(locale.MsgKeyQuit)),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k hostKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Quit}
}

// FullHelp implements help.KeyMap
func (k hostKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
