package domain

import "context"

// ProcessSource enumerates processes on the host.
// Implementation: uses gopsutil for cross-platform support.
type ProcessSource interface {
	// ListProcesses returns a full point-in-time snapshot. Entries carry no
	// category yet; the Classifier fills it in.
	ListProcesses(ctx context.Context) ([]ProcessEntry, error)

	// GetProcess returns a single entry, or an error if the pid does not exist.
	GetProcess(ctx context.Context, pid int) (*ProcessEntry, error)
}

// MemorySource reports aggregate host memory counters.
type MemorySource interface {
	// MemoryStats returns the current counters. Callers treat an error as
	// "no statistics this cycle", never as fatal.
	MemoryStats(ctx context.Context) (*MemoryStats, error)
}

// Classifier maps a process to its safety tier.
// Implementations are pure: no I/O, no state, no error case.
type Classifier interface {
	Classify(entry ProcessEntry) Category
}

// Terminator sends termination signals to processes.
type Terminator interface {
	// Terminate sends SIGTERM, or SIGKILL when force is set.
	Terminate(pid int, force bool) KillResult

	// IsRunning checks if a PID exists.
	IsRunning(pid int) bool
}
