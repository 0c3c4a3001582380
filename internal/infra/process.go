// Package infra implements infrastructure concerns (processes, memory, signals, filesystem).
package infra

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/eliteGoblin/activity/internal/domain"
)

// ProcessSourceImpl implements domain.ProcessSource using gopsutil.
type ProcessSourceImpl struct {
	bundles *BundleReader
}

// NewProcessSource creates a new process source.
// bundles may be nil, in which case BundleInfo stays empty.
func NewProcessSource(bundles *BundleReader) domain.ProcessSource {
	return &ProcessSourceImpl{bundles: bundles}
}

// ListProcesses returns every process with pid > 0 visible to the current user.
func (s *ProcessSourceImpl) ListProcesses(ctx context.Context) ([]domain.ProcessEntry, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate processes: %w", err)
	}

	entries := make([]domain.ProcessEntry, 0, len(procs))
	for _, p := range procs {
		if p.Pid <= 0 {
			continue
		}
		entries = append(entries, s.makeEntry(ctx, p))
	}

	return entries, nil
}

// GetProcess looks up a single pid.
func (s *ProcessSourceImpl) GetProcess(ctx context.Context, pid int) (*domain.ProcessEntry, error) {
	p, err := process.NewProcessWithContext(ctx, int32(pid))
	if err != nil {
		return nil, fmt.Errorf("no process with pid %d: %w", pid, err)
	}
	entry := s.makeEntry(ctx, p)
	return &entry, nil
}

// makeEntry builds an entry field by field. A process may exit or deny access
// halfway through; each failed field keeps its zero value.
func (s *ProcessSourceImpl) makeEntry(ctx context.Context, p *process.Process) domain.ProcessEntry {
	entry := domain.ProcessEntry{PID: int(p.Pid)}

	if name, err := p.NameWithContext(ctx); err == nil && name != "" {
		entry.Name = name
	} else {
		entry.Name = "unknown"
	}

	if exe, err := p.ExeWithContext(ctx); err == nil {
		entry.Path = exe
	}

	if mem, err := p.MemoryInfoWithContext(ctx); err == nil && mem != nil {
		entry.MemoryBytes = mem.RSS
	}

	if uids, err := p.UidsWithContext(ctx); err == nil && len(uids) > 0 {
		// [real, effective, ...] on linux; single uid elsewhere
		uid := uids[0]
		if len(uids) > 1 {
			uid = uids[1]
		}
		entry.UID = uint32(uid)
	}

	if s.bundles != nil {
		entry.BundleInfo = s.bundles.Describe(entry.Path)
	}

	return entry
}

// Ensure ProcessSourceImpl implements domain.ProcessSource.
var _ domain.ProcessSource = (*ProcessSourceImpl)(nil)
