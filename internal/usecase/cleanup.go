package usecase

import (
	"sort"
	"strconv"
	"strings"

	"github.com/eliteGoblin/activity/internal/domain"
)

// DefaultCleanupThreshold is the smallest resident size suggested for cleanup.
const DefaultCleanupThreshold uint64 = 50 * 1024 * 1024

// CleanupCandidates returns safe-tier processes using at least threshold bytes,
// excluding selfPID, largest first.
func CleanupCandidates(procs []domain.ProcessEntry, threshold uint64, selfPID int) []domain.ProcessEntry {
	var out []domain.ProcessEntry
	for _, p := range procs {
		if p.Category != domain.CategorySafe || p.MemoryBytes < threshold || p.IsSelf(selfPID) {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MemoryBytes > out[j].MemoryBytes
	})
	return out
}

// TotalMemory sums resident bytes.
func TotalMemory(procs []domain.ProcessEntry) uint64 {
	var total uint64
	for _, p := range procs {
		total += p.MemoryBytes
	}
	return total
}

// ParseSelection interprets a cleanup prompt answer against n numbered items.
// "all" selects everything; otherwise a comma-separated list of 1-based
// indices is read, dropping invalid and repeated entries. Returned indices
// are 0-based in the order given.
func ParseSelection(input string, n int) []int {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "all" {
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}
		return all
	}

	seen := make(map[int]bool)
	var picked []int
	for _, field := range strings.Split(input, ",") {
		idx, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || idx < 1 || idx > n || seen[idx] {
			continue
		}
		seen[idx] = true
		picked = append(picked, idx-1)
	}
	return picked
}
