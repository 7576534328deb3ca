package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// Offsets of the content area inside the rounded border with padding (0, 1)
const (
	frameContentLeft = 2
	frameContentTop  = 1
)

// dialogFrame is a bordered dialog: a centered title, blocks separated by
// blank lines, and a footer wrapped to the dialog width.
type dialogFrame struct {
	Title  string
	Blocks []string
	Footer string
}

// frameLayout records where things landed in a rendered frame, relative to
// the frame's top-left corner.
type frameLayout struct {
	Width     int
	Height    int
	BlockTop  []int
	BlockLeft []int
}

func (f dialogFrame) render() (string, frameLayout) {
	title := DialogTitleStyle.Render(f.Title)

	contentWidth := lipgloss.Width(title)
	for _, block := range f.Blocks {
		contentWidth = max(contentWidth, lipgloss.Width(block))
	}

	var lines []string
	layout := frameLayout{
		BlockTop:  make([]int, len(f.Blocks)),
		BlockLeft: make([]int, len(f.Blocks)),
	}

	lines = append(lines, indentLines(title, (contentWidth-lipgloss.Width(title))/2)...)
	for i, block := range f.Blocks {
		lines = append(lines, "")
		left := (contentWidth - lipgloss.Width(block)) / 2
		layout.BlockTop[i] = frameContentTop + len(lines)
		layout.BlockLeft[i] = frameContentLeft + left
		lines = append(lines, indentLines(block, left)...)
	}

	if f.Footer != "" {
		lines = append(lines, "")
		lines = append(lines, strings.Split(wordwrap.String(f.Footer, contentWidth), "\n")...)
	}

	rendered := DialogBorderStyle.Render(strings.Join(lines, "\n"))
	layout.Width = lipgloss.Width(rendered)
	layout.Height = lipgloss.Height(rendered)
	return rendered, layout
}

func indentLines(block string, left int) []string {
	pad := strings.Repeat(" ", max(left, 0))
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return lines
}

// centerOffset is where lipgloss.Place puts inner inside outer when centering
func centerOffset(outer, inner int) int {
	if outer <= inner {
		return 0
	}
	return (outer - inner) / 2
}
