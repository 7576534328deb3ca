package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorWarning  = "214" // Orange/yellow for titles
	ColorWhite    = "255" // White
	ColorPrimary  = "33"  // Blue for primary actions
	ColorStatusBg = "62"
	ColorStatusFg = "230"
)

// Layout constants
const (
	wheelColumnWidth = 8
	wheelColumnGap   = 2
	buttonGap        = 2
	displayWidth     = 28
)

var (
	// Dialog frame
	DialogBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive)).
				Padding(0, 1)

	DialogTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(ColorWarning))

	// Wheel columns
	WheelHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorInactive))

	WheelHeaderActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorActive)).
				Bold(true)

	WheelItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	// Selection band of the focused wheel
	WheelBandStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorSelected))

	// Buttons
	ButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal)).
			Border(lipgloss.NormalBorder(), false, true).
			BorderForeground(lipgloss.Color(ColorInactive)).
			Padding(0, 1)

	PrimaryButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorWhite)).
				Background(lipgloss.Color(ColorPrimary)).
				Bold(true).
				Border(lipgloss.NormalBorder(), false, true).
				BorderForeground(lipgloss.Color(ColorPrimary)).
				Padding(0, 1)

	// Host display field
	DisplayBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorInactive)).
				Padding(0, 1)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim)).
				Italic(true)

	DisplayTextStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorWhite)).
				Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorStatusBg)).
			Foreground(lipgloss.Color(ColorStatusFg)).
			Padding(0, 1)
)

// GetHighlightStyle is the style of a wheel's selected item
func GetHighlightStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true)
}

// GetWheelHeaderStyle highlights the header of the focused wheel
func GetWheelHeaderStyle(isActive bool) lipgloss.Style {
	if isActive {
		return WheelHeaderActiveStyle
	}
	return WheelHeaderStyle
}
