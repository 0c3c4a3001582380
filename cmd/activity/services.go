package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/eliteGoblin/activity/internal/config"
	"github.com/eliteGoblin/activity/internal/domain"
	"github.com/eliteGoblin/activity/internal/infra"
	"github.com/eliteGoblin/activity/internal/policy"
)

// services are the collaborators every command works with.
type services struct {
	processes  domain.ProcessSource
	memory     domain.MemorySource
	classifier domain.Classifier
	terminator domain.Terminator
	mode       *infra.ExecModeConfig
}

// newServices builds the live collaborators. Tests replace it.
var newServices = func() services {
	fs := infra.NewFileSystem()
	return services{
		processes:  infra.NewProcessSource(infra.NewBundleReader(fs)),
		memory:     infra.NewMemorySource(),
		classifier: policy.NewClassifier(),
		terminator: infra.NewTerminator(),
		mode:       infra.DetectExecMode(),
	}
}

// loadConfig reads configuration. Tests replace it.
var loadConfig = config.Load

// snapshot lists and classifies all processes.
func (s services) snapshot(ctx context.Context) ([]domain.ProcessEntry, error) {
	procs, err := s.processes.ListProcesses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}
	return policy.ClassifyAll(s.classifier, procs), nil
}

// colorEnabled reports whether w is a terminal that accepts color.
func colorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && !color.NoColor && term.IsTerminal(int(f.Fd()))
}
