// Package tui implements the interactive process view: terminal session,
// key decoding, the Normal/Search/Confirm state machine, the tick loop and
// the renderer.
package tui

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/eliteGoblin/activity/internal/domain"
	"github.com/eliteGoblin/activity/internal/policy"
	"github.com/eliteGoblin/activity/internal/usecase"
)

// Config holds timing for the interactive loop.
type Config struct {
	// RefreshInterval is the time between process and memory snapshots.
	RefreshInterval time.Duration

	// InputTimeout bounds how long one input poll waits for a byte.
	InputTimeout time.Duration

	// TickSleep is the pause at the end of every tick.
	TickSleep time.Duration

	// CleanupThreshold is the minimum resident size for cleanup candidates.
	CleanupThreshold uint64
}

// DefaultConfig returns default loop timings.
func DefaultConfig() Config {
	return Config{
		RefreshInterval:  2 * time.Second,
		InputTimeout:     100 * time.Millisecond,
		TickSleep:        10 * time.Millisecond,
		CleanupThreshold: usecase.DefaultCleanupThreshold,
	}
}

// Terminal is what the loop needs from the screen. Session implements it;
// tests substitute a fake.
type Terminal interface {
	BytePoller
	Size() (int, int)
	WriteFrame(frame string) error
	Pending() Pending
}

// App runs the interactive loop.
type App struct {
	config     Config
	term       Terminal
	processes  domain.ProcessSource
	memory     domain.MemorySource
	classifier domain.Classifier
	logger     *zap.Logger

	state   *State
	decoder *Decoder
	machine *Machine

	lastRefresh time.Time
	now         func() time.Time
	sleep       func(time.Duration)
}

// NewApp wires the loop. The state starts empty; Run fetches the first
// snapshot before the first frame.
func NewApp(
	cfg Config,
	term Terminal,
	processes domain.ProcessSource,
	memory domain.MemorySource,
	classifier domain.Classifier,
	runner ActionRunner,
	logger *zap.Logger,
) *App {
	a := &App{
		config:     cfg,
		term:       term,
		processes:  processes,
		memory:     memory,
		classifier: classifier,
		logger:     logger,
		decoder:    NewDecoder(term, cfg.InputTimeout),
		now:        time.Now,
		sleep:      time.Sleep,
	}
	w, h := term.Size()
	a.state = NewState(w, h)
	a.machine = NewMachine(a.state, runner, a.Refresh, os.Getpid(), cfg.CleanupThreshold)
	return a
}

// State exposes the model, mainly for tests.
func (a *App) State() *State {
	return a.state
}

// Run refreshes once, then ticks until quit, interrupt or ctx cancellation.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("interactive session started",
		zap.Int("width", a.state.Width),
		zap.Int("height", a.state.Height))

	a.Refresh(ctx)
	for a.Tick(ctx) {
	}

	a.logger.Info("interactive session stopped")
	return nil
}

// Tick runs one loop iteration and reports whether to keep going.
func (a *App) Tick(ctx context.Context) bool {
	pending := a.term.Pending()
	if pending.Interrupt || ctx.Err() != nil {
		a.logger.Info("interrupt requested")
		return false
	}

	if pending.Resize {
		w, h := a.term.Size()
		a.state.Resize(w, h)
		a.logger.Debug("terminal resized", zap.Int("width", w), zap.Int("height", h))
	}

	quit := false
	if key, ok := a.decoder.Poll(); ok {
		quit = a.machine.Handle(ctx, key)
	}

	if a.now().Sub(a.lastRefresh) >= a.config.RefreshInterval {
		a.Refresh(ctx)
	}

	if err := a.term.WriteFrame(Render(a.state)); err != nil {
		a.logger.Warn("failed to write frame", zap.Error(err))
	}

	if quit {
		return false
	}
	a.sleep(a.config.TickSleep)
	return true
}

// Refresh replaces the snapshot. A failed process listing keeps the previous
// list; a failed memory query hides the memory summary.
func (a *App) Refresh(ctx context.Context) {
	a.lastRefresh = a.now()

	procs, err := a.processes.ListProcesses(ctx)
	if err != nil {
		a.logger.Warn("failed to list processes", zap.Error(err))
	} else {
		a.state.Processes = policy.ClassifyAll(a.classifier, procs)
	}

	stats, err := a.memory.MemoryStats(ctx)
	if err != nil {
		a.logger.Warn("failed to read memory stats", zap.Error(err))
		stats = nil
	}
	a.state.Memory = stats

	a.state.Clamp()
}
