package format

import (
	"github.com/fatih/color"

	"github.com/eliteGoblin/activity/internal/domain"
)

// Palette holds the colors used by the report commands.
type Palette struct {
	Title   *color.Color
	Header  *color.Color
	Muted   *color.Color
	Success *color.Color
	Warning *color.Color
	Danger  *color.Color
	Alert   *color.Color
	Accent  *color.Color
}

// NewPalette builds the report colors. When enabled is false all output is
// plain, matching a non-TTY stdout or NO_COLOR.
func NewPalette(enabled bool) *Palette {
	if !enabled {
		color.NoColor = true
	}

	return &Palette{
		Title:   color.New(color.Bold, color.FgHiWhite),
		Header:  color.New(color.Bold),
		Muted:   color.New(color.Faint),
		Success: color.New(color.FgGreen),
		Warning: color.New(color.FgYellow),
		Danger:  color.New(color.FgRed),
		Alert:   color.New(color.Bold, color.FgRed),
		Accent:  color.New(color.FgCyan),
	}
}

// Category colors a category label: green safe, yellow caution, red critical.
func (p *Palette) Category(c domain.Category) string {
	return p.ForCategory(c).Sprint(c.Label())
}

// Band colors text by pressure band.
func (p *Palette) Band(b domain.PressureBand, text string) string {
	switch b {
	case domain.PressureNormal:
		return p.Success.Sprint(text)
	case domain.PressureWarning:
		return p.Warning.Sprint(text)
	default:
		return p.Danger.Sprint(text)
	}
}

// ForCategory returns the color of a category.
func (p *Palette) ForCategory(c domain.Category) *color.Color {
	switch c {
	case domain.CategorySafe:
		return p.Success
	case domain.CategoryCaution:
		return p.Warning
	default:
		return p.Danger
	}
}
