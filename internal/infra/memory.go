package infra

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/mem"

	"github.com/eliteGoblin/activity/internal/domain"
)

// MemorySourceImpl implements domain.MemorySource using gopsutil.
type MemorySourceImpl struct {
	// compressed reports bytes held by the memory compressor; platform specific.
	compressed func() uint64
}

// NewMemorySource creates a new memory source.
func NewMemorySource() domain.MemorySource {
	return &MemorySourceImpl{compressed: compressedBytes}
}

// MemoryStats queries host memory counters and derives pressure.
func (s *MemorySourceImpl) MemoryStats(ctx context.Context) (*domain.MemoryStats, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read virtual memory stats: %w", err)
	}

	var compressed uint64
	if s.compressed != nil {
		compressed = s.compressed()
	}

	stats := BuildMemoryStats(vm.Total, vm.Free, vm.Active, vm.Inactive, vm.Wired, compressed)
	return &stats, nil
}

// BuildMemoryStats derives used, app and pressure figures from raw counters.
// Pressure counts active, wired and compressed pages as in use; inactive
// pages are reclaimable cache.
func BuildMemoryStats(total, free, active, inactive, wired, compressed uint64) domain.MemoryStats {
	used := subFloor(total, free)

	var pressure float64
	if total > 0 {
		pressure = float64(active+wired+compressed) / float64(total) * 100
	}
	if pressure > 100 {
		pressure = 100
	}

	return domain.MemoryStats{
		TotalBytes:      total,
		UsedBytes:       used,
		FreeBytes:       free,
		ActiveBytes:     active,
		InactiveBytes:   inactive,
		WiredBytes:      wired,
		CompressedBytes: compressed,
		AppBytes:        subFloor(used, wired+compressed),
		Pressure:        pressure,
	}
}

func subFloor(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return 0
}

// Ensure MemorySourceImpl implements domain.MemorySource.
var _ domain.MemorySource = (*MemorySourceImpl)(nil)
