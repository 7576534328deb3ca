package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

const tableGap = "  "

// TableFormatter collects rows and writes them as aligned columns. Widths are
// terminal cells, so wide characters in values keep the columns straight.
type TableFormatter struct {
	w      io.Writer
	header []string
	rows   [][]string
}

// NewTableFormatter creates a table that writes to w on Flush
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{w: w}
}

// Header sets the column titles, underlined on output
func (t *TableFormatter) Header(columns ...string) {
	t.header = columns
}

// Row adds a row
func (t *TableFormatter) Row(values ...string) {
	t.rows = append(t.rows, values)
}

// Flush writes the header, a rule as wide as each column, and the rows
func (t *TableFormatter) Flush() error {
	widths := t.widths()

	var b strings.Builder
	if len(t.header) > 0 {
		t.writeLine(&b, widths, t.header)
		rule := make([]string, len(widths))
		for i, n := range widths {
			rule[i] = strings.Repeat("-", n)
		}
		t.writeLine(&b, widths, rule)
	}
	for _, row := range t.rows {
		t.writeLine(&b, widths, row)
	}

	_, err := io.WriteString(t.w, b.String())
	t.header, t.rows = nil, nil
	return err
}

func (t *TableFormatter) widths() []int {
	var widths []int
	measure := func(cells []string) {
		for i, cell := range cells {
			if i == len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	measure(t.header)
	for _, row := range t.rows {
		measure(row)
	}
	return widths
}

func (t *TableFormatter) writeLine(b *strings.Builder, widths []int, cells []string) {
	for i, cell := range cells {
		if i == len(cells)-1 {
			b.WriteString(cell)
			break
		}
		b.WriteString(runewidth.FillRight(cell, widths[i]))
		b.WriteString(tableGap)
	}
	b.WriteString("\n")
}

// OutputResults formats and outputs results based on the specified format.
// Text output goes through text when it is set, and through %v otherwise.
func OutputResults(w io.Writer, format string, data any, text func(io.Writer) error) error {
	switch OutputFormat(format) {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)

	case FormatYAML:
		yamlData, err := yaml.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		_, err = w.Write(yamlData)
		return err

	case FormatText, "":
		if text != nil {
			return text(w)
		}
		_, err := fmt.Fprintf(w, "%v\n", data)
		return err

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
