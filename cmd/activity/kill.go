package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/eliteGoblin/activity/internal/domain"
	"github.com/eliteGoblin/activity/internal/format"
	"github.com/eliteGoblin/activity/internal/infra"
	"github.com/eliteGoblin/activity/internal/usecase"
)

var killCmd = &cobra.Command{
	Use:   "kill PID",
	Short: "Terminate a process by PID",
	Long: `Shows what the process is, warns about system processes, asks for
confirmation and then sends SIGTERM (or SIGKILL with --force).`,
	Args: cobra.ExactArgs(1),
	RunE: runKill,
}

var (
	killForce bool
	killYes   bool
)

func init() {
	killCmd.Flags().BoolVarP(&killForce, "force", "f", false, "Force kill (SIGKILL instead of SIGTERM)")
	killCmd.Flags().BoolVarP(&killYes, "yes", "y", false, "Skip confirmation prompt")
}

func runKill(cmd *cobra.Command, args []string) error {
	pid, err := strconv.Atoi(args[0])
	if err != nil || pid <= 0 {
		return newCLIError(fmt.Sprintf("Invalid PID %q", args[0]))
	}

	cfg := loadConfig()
	logger := createLogger(cfg, infra.NewFileSystem())
	defer func() { _ = logger.Sync() }()

	ctx := commandContext(cmd)
	svc := newServices()

	found, err := svc.processes.GetProcess(ctx, pid)
	if err != nil || found == nil {
		return newCLIError(fmt.Sprintf("No process found with PID %d", pid)).withCause(err)
	}
	proc := *found
	proc.Category = svc.classifier.Classify(proc)

	out := cmd.OutOrStdout()
	p := format.NewPalette(colorEnabled(out))

	fmt.Fprintln(out, p.Header.Sprint("Process: ")+proc.Name)
	fmt.Fprintln(out, p.Header.Sprint("PID:     ")+strconv.Itoa(proc.PID))
	fmt.Fprintln(out, p.Header.Sprint("Memory:  ")+format.Bytes(proc.MemoryBytes))
	fmt.Fprintln(out, p.Header.Sprint("Category:")+" "+p.Category(proc.Category))
	if proc.Path != "" {
		fmt.Fprintln(out, p.Header.Sprint("Path:    ")+p.Muted.Sprint(proc.Path))
	}
	fmt.Fprintln(out)

	switch proc.Category {
	case domain.CategoryCritical:
		fmt.Fprintln(out, p.Alert.Sprint("WARNING: This is a system-critical process!"))
		fmt.Fprintln(out, p.Danger.Sprint("Killing it may cause system instability or crash."))
		fmt.Fprintln(out)
	case domain.CategoryCaution:
		fmt.Fprintln(out, p.Warning.Sprint("Note: This is an Apple system service. Proceed with caution."))
		fmt.Fprintln(out)
	}

	if !killYes {
		signal := "SIGTERM"
		if killForce {
			signal = "SIGKILL (force)"
		}
		question := fmt.Sprintf("Send %s to %s (PID %d)? [y/N] ", signal, proc.Name, proc.PID)
		if !newPrompter(cmd.InOrStdin(), out).confirm(question) {
			fmt.Fprintln(out, p.Muted.Sprint("Cancelled."))
			return nil
		}
	}

	reports := usecase.NewReaper(svc.terminator, logger).Terminate(ctx, []domain.ProcessEntry{proc}, killForce)
	if len(reports) == 0 {
		return fmt.Errorf("failed to terminate process %d: %w", pid, ctx.Err())
	}

	result := reports[0].Result
	switch result.Outcome {
	case domain.KillSucceeded:
		method := "Terminated"
		if killForce {
			method = "Force killed"
		}
		fmt.Fprintln(out, p.Success.Sprintf("%s %s (PID %d).", method, proc.Name, proc.PID))
		return nil
	case domain.KillPermissionDenied:
		return newCLIError("Permission denied").withHint(svc.mode.PermissionHint())
	case domain.KillNoSuchProcess:
		fmt.Fprintln(out, p.Warning.Sprint("Process no longer exists."))
		return nil
	default:
		return newCLIError(result.Message)
	}
}
