package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/eliteGoblin/activity/internal/domain"
	"github.com/eliteGoblin/activity/internal/format"
	"github.com/eliteGoblin/activity/internal/usecase"
)

const (
	statsBarWidth   = 30
	statsLabelWidth = 18
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show system memory overview",
	Long:  `Prints memory pressure, the breakdown of physical memory, and memory per safety tier.`,
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	svc := newServices()

	stats, err := svc.memory.MemoryStats(ctx)
	if err != nil || stats == nil {
		return newCLIError("Could not retrieve memory statistics").withCause(err)
	}

	procs, err := svc.snapshot(ctx)
	if err != nil {
		return err
	}
	summary := usecase.Summarize(procs)

	out := cmd.OutOrStdout()
	p := format.NewPalette(colorEnabled(out))
	band := stats.Band()

	fmt.Fprintln(out, p.Title.Sprint("System Memory Overview"))
	fmt.Fprintln(out)
	fmt.Fprintln(out, p.Header.Sprint("  Memory Pressure: ")+
		p.Band(band, format.Bar(stats.Pressure, statsBarWidth))+fmt.Sprintf(" %.1f%%", stats.Pressure))
	fmt.Fprintln(out, p.Header.Sprint("  Status:          ")+p.Band(band, band.Label()))
	fmt.Fprintln(out)

	row := func(label string, value uint64, c *color.Color) {
		fmt.Fprintln(out, "  "+p.Muted.Sprint(format.PadRight(label, statsLabelWidth))+c.Sprint(format.Bytes(value)))
	}

	row("Total Memory:", stats.TotalBytes, p.Title)
	row("Used Memory:", stats.UsedBytes, p.Warning)
	row("Free Memory:", stats.FreeBytes, p.Success)
	fmt.Fprintln(out)
	row("Active:", stats.ActiveBytes, p.Accent)
	row("Inactive:", stats.InactiveBytes, p.Muted)
	row("Wired:", stats.WiredBytes, p.Header)
	row("Compressed:", stats.CompressedBytes, p.Warning)
	fmt.Fprintln(out)
	row("App Memory:", stats.AppBytes, p.Accent)
	fmt.Fprintln(out)

	fmt.Fprintln(out, p.Header.Sprint("  Process Categories:"))
	for _, c := range []domain.Category{domain.CategorySafe, domain.CategoryCaution, domain.CategoryCritical} {
		t := summary.For(c)
		label := p.ForCategory(c).Sprint(format.PadRight(c.Label()+":", 10))
		fmt.Fprintf(out, "  %s%d processes, %s\n", label, t.Count, format.Bytes(t.Bytes))
	}
	fmt.Fprintln(out)
	return nil
}
