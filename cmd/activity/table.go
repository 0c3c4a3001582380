package main

import (
	"io"
	"strconv"

	"github.com/eliteGoblin/activity/internal/domain"
	"github.com/eliteGoblin/activity/internal/format"
)

// printProcessTable writes the report table used by top and cleanup.
// Numbered tables lead with a 1-based index for selection prompts.
func printProcessTable(w io.Writer, p *format.Palette, procs []domain.ProcessEntry, numbered bool) {
	var cols []format.Column
	descWidth := 50
	if numbered {
		cols = append(cols, format.Column{Header: "#", Width: 4, Align: format.AlignRight})
		descWidth = 40
	}
	cols = append(cols,
		format.Column{Header: "PID", Width: 7, Align: format.AlignRight},
		format.Column{Header: "Memory", Width: 10, Align: format.AlignRight},
		format.Column{Header: "Category", Width: 10},
		format.Column{Header: "Name", Width: 30},
		format.Column{Header: "Description", Width: descWidth},
	)

	t := format.NewTable(w, "", cols...)
	t.Header(p.Title.Sprint)

	for i, proc := range procs {
		var cells []string
		if numbered {
			cells = append(cells, strconv.Itoa(i+1))
		}
		cells = append(cells,
			strconv.Itoa(proc.PID),
			p.Accent.Sprint(format.Bytes(proc.MemoryBytes)),
			p.Category(proc.Category),
			proc.Name,
			p.Muted.Sprint(proc.BundleInfo),
		)
		t.Row(cells...)
	}
}
