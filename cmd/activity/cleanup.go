package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eliteGoblin/activity/internal/domain"
	"github.com/eliteGoblin/activity/internal/format"
	"github.com/eliteGoblin/activity/internal/infra"
	"github.com/eliteGoblin/activity/internal/usecase"
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Interactive cleanup of safe-to-close processes",
	Long: `Lists safe-tier processes above a memory threshold and terminates the
ones you pick. Caution and critical processes are never offered.`,
	Args: cobra.NoArgs,
	RunE: runCleanup,
}

var (
	cleanupThreshold int
	cleanupDryRun    bool
	cleanupYes       bool
)

func init() {
	cleanupCmd.Flags().IntVarP(&cleanupThreshold, "threshold", "t", 0, "Minimum memory in MB to include a process (default cleanup.threshold_mb, 50)")
	cleanupCmd.Flags().BoolVar(&cleanupDryRun, "dry-run", false, "Show what would be killed without killing anything")
	cleanupCmd.Flags().BoolVarP(&cleanupYes, "yes", "y", false, "Skip prompts and terminate every candidate")
}

func runCleanup(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	logger := createLogger(cfg, infra.NewFileSystem())
	defer func() { _ = logger.Sync() }()

	threshold := cleanupThreshold
	if threshold <= 0 {
		threshold = cfg.CleanupThresholdMB()
	}

	ctx := commandContext(cmd)
	svc := newServices()
	procs, err := svc.snapshot(ctx)
	if err != nil {
		return err
	}
	candidates := usecase.CleanupCandidates(procs, uint64(threshold)*1024*1024, os.Getpid())

	out := cmd.OutOrStdout()
	p := format.NewPalette(colorEnabled(out))

	if len(candidates) == 0 {
		fmt.Fprintln(out, p.Warning.Sprintf("No safe-to-close processes found above %d MB threshold.", threshold))
		return nil
	}

	fmt.Fprintln(out, p.Title.Sprint("Memory Cleanup"))
	fmt.Fprintln(out, p.Muted.Sprintf("Showing safe-to-close processes using ≥ %d MB", threshold))
	fmt.Fprintln(out)
	printProcessTable(out, p, candidates, true)
	fmt.Fprintln(out)
	fmt.Fprintln(out, p.Muted.Sprint("Potentially reclaimable: ")+p.Accent.Sprint(format.Bytes(usecase.TotalMemory(candidates))))
	fmt.Fprintln(out)

	if cleanupDryRun {
		fmt.Fprintln(out, p.Warning.Sprint("Dry run mode: no processes were terminated."))
		return nil
	}

	selected := candidates
	if !cleanupYes {
		prompt := newPrompter(cmd.InOrStdin(), out)
		fmt.Fprintln(out, "Enter process numbers to kill (comma-separated), 'all' for all, or 'q' to quit:")
		answer, ok := prompt.ask("> ")
		if !ok || answer == "" || strings.EqualFold(answer, "q") {
			fmt.Fprintln(out, p.Muted.Sprint("Cancelled."))
			return nil
		}

		indices := usecase.ParseSelection(answer, len(candidates))
		if len(indices) == 0 {
			fmt.Fprintln(out, p.Warning.Sprint("No valid selections. Cancelled."))
			return nil
		}
		selected = make([]domain.ProcessEntry, 0, len(indices))
		for _, i := range indices {
			selected = append(selected, candidates[i])
		}

		fmt.Fprintln(out)
		if !prompt.confirm(fmt.Sprintf("About to terminate %d process(es). Continue? [y/N] ", len(selected))) {
			fmt.Fprintln(out, p.Muted.Sprint("Cancelled."))
			return nil
		}
	}

	reports := usecase.NewReaper(svc.terminator, logger).Terminate(ctx, selected, false)
	printCleanupResults(out, p, reports, svc.mode)
	return nil
}

func printCleanupResults(out io.Writer, p *format.Palette, reports []usecase.TerminationReport, mode *infra.ExecModeConfig) {
	failed, denied := 0, 0
	for _, r := range reports {
		who := fmt.Sprintf("%s (PID %d)", r.Process.Name, r.Process.PID)
		switch r.Result.Outcome {
		case domain.KillSucceeded:
			fmt.Fprintln(out, p.Success.Sprint("  Terminated: ")+who)
		case domain.KillPermissionDenied:
			failed++
			denied++
			fmt.Fprintln(out, p.Danger.Sprint("  Permission denied: ")+who)
		case domain.KillNoSuchProcess:
			fmt.Fprintln(out, p.Muted.Sprint("  Already exited: ")+who)
		default:
			failed++
			fmt.Fprintln(out, p.Danger.Sprint("  Failed: ")+who+": "+r.Result.Message)
		}
	}

	killed, freed := usecase.Succeeded(reports)
	line := p.Header.Sprint("Results: ") + p.Success.Sprintf("%d terminated", killed)
	if failed > 0 {
		line += ", " + p.Danger.Sprintf("%d failed", failed)
	}
	line += ", ~" + p.Accent.Sprint(format.Bytes(freed)) + " freed"

	fmt.Fprintln(out)
	fmt.Fprintln(out, line)
	if denied > 0 {
		fmt.Fprintln(out, p.Muted.Sprint(mode.PermissionHint()))
	}
}
