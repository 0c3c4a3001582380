package format

import (
	"fmt"
	"io"
	"strings"
)

// Align is the horizontal placement of a cell in its column.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Column describes one table column. Width is in visible cells.
type Column struct {
	Header string
	Width  int
	Align  Align
}

// Table writes fixed-width, space-separated report tables. Cells may carry
// color; widths are measured on visible text.
type Table struct {
	w       io.Writer
	columns []Column
	indent  string
}

// NewTable creates a table writing to w.
func NewTable(w io.Writer, indent string, columns ...Column) *Table {
	return &Table{w: w, columns: columns, indent: indent}
}

// Width is the total visible width of a row, indent excluded.
func (t *Table) Width() int {
	total := 0
	for i, c := range t.columns {
		if i > 0 {
			total++
		}
		total += c.Width
	}
	return total
}

// Header writes the header row, styled by style, and a rule beneath it.
func (t *Table) Header(style func(a ...interface{}) string) {
	cells := make([]string, len(t.columns))
	for i, c := range t.columns {
		cells[i] = c.Header
	}
	line := t.format(cells)
	if style != nil {
		line = style(line)
	}
	fmt.Fprintln(t.w, t.indent+line)
	fmt.Fprintln(t.w, t.indent+strings.Repeat("─", t.Width()))
}

// Row writes one row. Missing cells are blank; extra cells are ignored.
func (t *Table) Row(cells ...string) {
	fmt.Fprintln(t.w, t.indent+t.format(cells))
}

func (t *Table) format(cells []string) string {
	parts := make([]string, len(t.columns))
	for i, c := range t.columns {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		if c.Align == AlignRight {
			parts[i] = FitLeft(cell, c.Width)
		} else {
			parts[i] = Fit(cell, c.Width)
		}
	}
	return strings.TrimRight(strings.Join(parts, " "), " ")
}
