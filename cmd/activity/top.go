package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eliteGoblin/activity/internal/format"
	"github.com/eliteGoblin/activity/internal/usecase"
)

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Show top memory-consuming processes",
	Long:  `Prints a one-shot table of processes with their memory, safety tier and app description.`,
	Args:  cobra.NoArgs,
	RunE:  runTop,
}

var (
	topLimit    int
	topAll      bool
	topSort     string
	topCategory string
)

func init() {
	topCmd.Flags().IntVarP(&topLimit, "number", "n", 0, "Number of processes to show (default top.limit, 20)")
	topCmd.Flags().BoolVarP(&topAll, "all", "a", false, "Show all processes")
	topCmd.Flags().StringVar(&topSort, "sort", "memory", "Sort by: memory, pid, or name")
	topCmd.Flags().StringVar(&topCategory, "category", "all", "Filter by category: safe, caution, critical, or all")
}

func runTop(cmd *cobra.Command, args []string) error {
	sortKey, ok := usecase.ParseSortKey(topSort)
	if !ok {
		return newCLIError(fmt.Sprintf("Unknown sort field %q", topSort)).
			withHint("Use one of: memory, pid, name.")
	}
	filter, ok := usecase.ParseTierFilter(topCategory)
	if !ok {
		return newCLIError(fmt.Sprintf("Unknown category %q", topCategory)).
			withHint("Use one of: safe, caution, critical, all.")
	}

	cfg := loadConfig()
	limit := topLimit
	if limit <= 0 {
		limit = cfg.TopLimit()
	}

	procs, err := newServices().snapshot(commandContext(cmd))
	if err != nil {
		return err
	}
	procs = usecase.Select(procs, usecase.Query{Filter: filter, Sort: sortKey})
	if !topAll && len(procs) > limit {
		procs = procs[:limit]
	}

	out := cmd.OutOrStdout()
	p := format.NewPalette(colorEnabled(out))

	if len(procs) == 0 {
		fmt.Fprintln(out, p.Warning.Sprint("No processes found matching the criteria."))
		return nil
	}

	fmt.Fprintln(out, p.Title.Sprintf("Top %d Processes by Memory Usage", len(procs)))
	fmt.Fprintln(out)
	printProcessTable(out, p, procs, false)
	fmt.Fprintln(out)
	fmt.Fprintln(out, p.Muted.Sprint("Total memory (shown): ")+p.Accent.Sprint(format.Bytes(usecase.TotalMemory(procs))))
	return nil
}
