package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eliteGoblin/activity/internal/domain"
	"github.com/eliteGoblin/activity/internal/format"
)

// Table geometry. The name column gets 2/5 of what is left after the fixed
// columns and gaps; the description gets the rest.
const (
	numWidth      = 4
	pidWidth      = 8
	memWidth      = 10
	catWidth      = 10
	fixedWidth    = numWidth + pidWidth + memWidth + catWidth + 12
	minFlexWidth  = 20
	headerBar     = 15
	columnGap     = "  "
	headerPadding = 20
)

// Render draws state as one frame. Every line is cleared to its end and
// the area under the footer is erased, so nothing from a longer previous
// frame survives.
func Render(s *State) string {
	list := s.DisplayList()

	var b strings.Builder
	b.WriteString(cursorHome)

	renderHeader(&b, s, len(list))
	renderTable(&b, s, list)
	renderFooter(&b, s)

	b.WriteString(clearEOL + clearEOS)
	return b.String()
}

// line writes one row clipped to the terminal width. Raw mode turns off
// output post-processing, so the carriage return is explicit.
func line(b *strings.Builder, width int, text string) {
	b.WriteString(format.Clip(text, width))
	b.WriteString(clearEOL + "\r\n")
}

func renderHeader(b *strings.Builder, s *State, count int) {
	title := sgrBoldWhite + " Activity Monitor" + sgrReset

	memInfo := ""
	if m := s.Memory; m != nil {
		band := m.Band()
		memInfo = "Memory: " + format.Bytes(m.UsedBytes) + "/" + format.Bytes(m.TotalBytes) +
			"  Pressure: " + bandColor(band) + format.Bar(m.Pressure, headerBar) +
			fmt.Sprintf(" %.0f%% ", m.Pressure) + band.Label() + sgrReset
	}
	gap := max(0, s.Width-headerPadding-format.VisibleLength(memInfo))
	line(b, s.Width, title+columnGap+strings.Repeat(" ", gap)+memInfo)

	status := " Showing: " + s.Filter.Label() +
		"  │  Sort: " + s.Sort.Label() +
		"  │  " + strconv.Itoa(count) + " processes"
	switch {
	case s.Mode == ModeSearch:
		status += "  Search: " + s.Search + "▌"
	case s.Search != "":
		status += "  Search: \"" + s.Search + "\""
	}
	line(b, s.Width, sgrDim+status+sgrReset)
}

// columns returns the name and description widths for a terminal width.
func columns(width int) (nameW, descW int) {
	remaining := max(minFlexWidth, width-fixedWidth)
	nameW = remaining * 2 / 5
	return nameW, remaining - nameW
}

func renderTable(b *strings.Builder, s *State, list []domain.ProcessEntry) {
	nameW, descW := columns(s.Width)

	header := " " +
		format.FitLeft("#", numWidth) + columnGap +
		format.FitLeft("PID", pidWidth) + columnGap +
		format.FitLeft("Memory", memWidth) + columnGap +
		format.Fit("Category", catWidth) + columnGap +
		format.Fit("Name", nameW) + columnGap +
		format.Fit("Description", descW)
	line(b, s.Width, sgrBoldWhite+header+sgrReset)

	ruleLen := min(s.Width-2, numWidth+pidWidth+memWidth+catWidth+nameW+descW+10)
	line(b, s.Width, sgrDim+" "+strings.Repeat("─", max(0, ruleLen))+sgrReset)

	rows := s.VisibleRows()
	drawn := 0
	for i := s.Scroll; i < len(list) && drawn < rows; i++ {
		line(b, s.Width, renderRow(list[i], i, i == s.Selected, nameW, descW))
		drawn++
	}
	for ; drawn < rows; drawn++ {
		line(b, s.Width, "")
	}
}

func renderRow(p domain.ProcessEntry, idx int, selected bool, nameW, descW int) string {
	row := " " +
		format.FitLeft(strconv.Itoa(idx+1), numWidth) + columnGap +
		format.FitLeft(strconv.Itoa(p.PID), pidWidth) + columnGap +
		format.FitLeft(format.Bytes(p.MemoryBytes), memWidth) + columnGap +
		categoryColor(p.Category) + format.Fit(p.Category.Label(), catWidth) + sgrReset + columnGap +
		format.Fit(p.Name, nameW) + columnGap +
		sgrDim + format.Fit(p.BundleInfo, descW) + sgrReset

	if selected {
		return sgrReverse + format.Strip(row) + sgrReset
	}
	return row
}

func renderFooter(b *strings.Builder, s *State) {
	switch s.Mode {
	case ModeConfirm:
		a := s.Pending
		if a == nil {
			return
		}
		var msg string
		if a.Kind == ActionKillSingle && len(a.Targets) == 1 {
			p := a.Targets[0]
			msg = fmt.Sprintf(" Kill %s (PID %d)? ", p.Name, p.PID)
		} else {
			msg = fmt.Sprintf(" Kill %d safe processes (~%s reclaimable)? ", len(a.Targets), format.Bytes(a.Reclaimable))
		}
		b.WriteString(format.Clip(sgrBoldWhite+msg+sgrBoldYellow+"[y/n]"+sgrReset, s.Width))

	case ModeSearch:
		b.WriteString(format.Clip(sgrDim+" Type to search, Esc to cancel"+sgrReset, s.Width))

	default:
		b.WriteString(format.Clip(sgrDim+" ↑↓:navigate  k:kill  f:filter  s:sort  /:search  c:cleanup  q:quit"+sgrReset, s.Width))
	}
}

func bandColor(b domain.PressureBand) string {
	switch b {
	case domain.PressureNormal:
		return sgrGreen
	case domain.PressureWarning:
		return sgrYellow
	default:
		return sgrRed
	}
}

func categoryColor(c domain.Category) string {
	switch c {
	case domain.CategorySafe:
		return sgrGreen
	case domain.CategoryCaution:
		return sgrYellow
	default:
		return sgrRed
	}
}
