package tui

import (
	"context"

	"github.com/eliteGoblin/activity/internal/usecase"
)

// ActionRunner applies a confirmed action. It never prompts.
type ActionRunner interface {
	Execute(ctx context.Context, a *Action)
}

// Executor sends graceful termination to every target of an action, in
// order. Outcomes are logged by the reaper; the view learns about them
// from the refresh that follows.
type Executor struct {
	reaper *usecase.Reaper
}

// NewExecutor creates an executor backed by reaper.
func NewExecutor(reaper *usecase.Reaper) *Executor {
	return &Executor{reaper: reaper}
}

// Execute signals the action's targets.
func (e *Executor) Execute(ctx context.Context, a *Action) {
	if a == nil {
		return
	}
	e.reaper.Terminate(ctx, a.Targets, false)
}

var _ ActionRunner = (*Executor)(nil)
