package format

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Ellipsis marks truncated cell content.
const Ellipsis = "…"

// VisibleLength returns the number of terminal cells value occupies,
// excluding ANSI escape sequences.
func VisibleLength(value string) int {
	return ansi.StringWidth(value)
}

// Strip removes ANSI escape sequences.
func Strip(value string) string {
	return ansi.Strip(value)
}

// Truncate shortens value to at most width visible cells. When it has to cut,
// the last visible cell becomes an ellipsis. Escape sequences are kept.
func Truncate(value string, width int) string {
	if width <= 0 {
		return ""
	}
	if VisibleLength(value) <= width {
		return value
	}
	return ansi.Truncate(value, width, Ellipsis)
}

// Clip cuts value to at most width visible cells without a marker.
func Clip(value string, width int) string {
	if width <= 0 {
		return ""
	}
	if VisibleLength(value) <= width {
		return value
	}
	return ansi.Truncate(value, width, "")
}

// PadRight appends spaces until value reaches width visible cells.
func PadRight(value string, width int) string {
	padding := width - VisibleLength(value)
	if padding <= 0 {
		return value
	}
	return value + strings.Repeat(" ", padding)
}

// PadLeft prepends spaces until value reaches width visible cells.
func PadLeft(value string, width int) string {
	padding := width - VisibleLength(value)
	if padding <= 0 {
		return value
	}
	return strings.Repeat(" ", padding) + value
}

// Fit truncates or right-pads value to exactly width visible cells.
func Fit(value string, width int) string {
	return PadRight(Truncate(value, width), width)
}

// FitLeft truncates or left-pads value to exactly width visible cells.
func FitLeft(value string, width int) string {
	return PadLeft(Truncate(value, width), width)
}
