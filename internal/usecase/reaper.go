package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/eliteGoblin/activity/internal/domain"
)

// TerminationReport is the outcome of signalling one process.
type TerminationReport struct {
	Process domain.ProcessEntry
	Result  domain.KillResult
}

// Reaper sends termination signals to a list of processes.
type Reaper struct {
	terminator domain.Terminator
	logger     *zap.Logger
}

// NewReaper creates a new reaper.
func NewReaper(t domain.Terminator, logger *zap.Logger) *Reaper {
	return &Reaper{
		terminator: t,
		logger:     logger,
	}
}

// Terminate signals procs in order. A failed signal is logged and the
// remaining processes are still attempted; only ctx cancellation stops early.
func (r *Reaper) Terminate(ctx context.Context, procs []domain.ProcessEntry, force bool) []TerminationReport {
	reports := make([]TerminationReport, 0, len(procs))

	for _, p := range procs {
		if err := ctx.Err(); err != nil {
			r.logger.Warn("termination batch cancelled",
				zap.Int("remaining", len(procs)-len(reports)),
				zap.Error(err))
			break
		}

		result := r.terminator.Terminate(p.PID, force)
		reports = append(reports, TerminationReport{Process: p, Result: result})

		if result.OK() {
			r.logger.Info("terminated process",
				zap.Int("pid", p.PID),
				zap.String("name", p.Name),
				zap.Bool("force", force))
		} else {
			r.logger.Warn("failed to terminate process",
				zap.Int("pid", p.PID),
				zap.String("name", p.Name),
				zap.Stringer("outcome", result))
		}
	}

	return reports
}

// Succeeded counts delivered signals and the bytes they cover.
func Succeeded(reports []TerminationReport) (count int, bytes uint64) {
	for _, r := range reports {
		if r.Result.OK() {
			count++
			bytes += r.Process.MemoryBytes
		}
	}
	return count, bytes
}
