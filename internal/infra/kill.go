package infra

import (
	"errors"

	"golang.org/x/sys/unix"

	"github.com/eliteGoblin/activity/internal/domain"
)

// TerminatorImpl implements domain.Terminator with kill(2).
type TerminatorImpl struct {
	kill func(pid int, sig unix.Signal) error
}

// NewTerminator creates a terminator that signals real processes.
func NewTerminator() domain.Terminator {
	return &TerminatorImpl{kill: unix.Kill}
}

// Terminate sends SIGTERM, or SIGKILL when force is set.
// Non-positive pids address process groups and are rejected.
func (t *TerminatorImpl) Terminate(pid int, force bool) domain.KillResult {
	if pid <= 0 {
		return domain.KillResult{Outcome: domain.KillNoSuchProcess}
	}
	sig := unix.SIGTERM
	if force {
		sig = unix.SIGKILL
	}
	return resultFromErr(t.kill(pid, sig))
}

// IsRunning checks if a PID exists.
// EPERM means the process exists but belongs to someone else.
func (t *TerminatorImpl) IsRunning(pid int) bool {
	if pid <= 0 {
		return false
	}
	err := t.kill(pid, 0)
	return err == nil || errors.Is(err, unix.EPERM)
}

func resultFromErr(err error) domain.KillResult {
	switch {
	case err == nil:
		return domain.KillResult{Outcome: domain.KillSucceeded}
	case errors.Is(err, unix.EPERM):
		return domain.KillResult{Outcome: domain.KillPermissionDenied}
	case errors.Is(err, unix.ESRCH):
		return domain.KillResult{Outcome: domain.KillNoSuchProcess}
	default:
		return domain.KillResult{Outcome: domain.KillFailed, Message: err.Error()}
	}
}

// Ensure TerminatorImpl implements domain.Terminator.
var _ domain.Terminator = (*TerminatorImpl)(nil)
