package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eliteGoblin/activity/internal/infra"
	"github.com/eliteGoblin/activity/internal/tui"
	"github.com/eliteGoblin/activity/internal/usecase"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Interactive view for browsing and managing processes",
	Long: `Opens a full-screen process list that refreshes every two seconds.

Keys: ↑/↓ move, k or Enter kill, f cycle tier filter, s cycle sort,
/ search by name, c clean up large safe processes, q quit.`,
	Args: cobra.NoArgs,
	RunE: runMonitor,
}

// The monitor's terminal. Tests swap in pipes.
var (
	terminalIn  = os.Stdin
	terminalOut = os.Stdout
)

func runMonitor(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	logger := createLogger(cfg, infra.NewFileSystem())
	defer func() { _ = logger.Sync() }()

	svc := newServices()
	runner := tui.NewExecutor(usecase.NewReaper(svc.terminator, logger))

	session := tui.NewSession(terminalIn, terminalOut)
	err := tui.WithSession(session, func() error {
		app := tui.NewApp(cfg.Monitor(), session, svc.processes, svc.memory, svc.classifier, runner, logger)
		return app.Run(commandContext(cmd))
	})
	if errors.Is(err, tui.ErrNotTerminal) {
		return newCLIError("Interactive monitor requires a terminal").
			withHint("Use 'activity top' for non-interactive output.").
			withCause(err)
	}
	if err != nil {
		logger.Error("monitor failed", zap.Error(err))
		return fmt.Errorf("failed to run monitor: %w", err)
	}
	return nil
}
