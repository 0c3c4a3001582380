// Package usecase contains application business logic.
package usecase

import (
	"sort"
	"strings"

	"github.com/eliteGoblin/activity/internal/domain"
)

// SortKey selects the display ordering.
type SortKey int

const (
	SortMemory SortKey = iota
	SortPID
	SortName
)

// Next cycles memory → pid → name → memory.
func (k SortKey) Next() SortKey {
	return (k + 1) % 3
}

// Label names the key with its direction.
func (k SortKey) Label() string {
	switch k {
	case SortPID:
		return "PID ↑"
	case SortName:
		return "Name ↑"
	default:
		return "Memory ↓"
	}
}

// ParseSortKey accepts memory, pid or name.
func ParseSortKey(s string) (SortKey, bool) {
	switch strings.ToLower(s) {
	case "memory", "mem":
		return SortMemory, true
	case "pid":
		return SortPID, true
	case "name":
		return SortName, true
	default:
		return SortMemory, false
	}
}

// TierFilter restricts the display to one category, or none.
type TierFilter int

const (
	FilterAll TierFilter = iota
	FilterSafe
	FilterCaution
	FilterCritical
)

// Next cycles all → safe → caution → critical → all.
func (f TierFilter) Next() TierFilter {
	return (f + 1) % 4
}

// Label returns the status line name.
func (f TierFilter) Label() string {
	switch f {
	case FilterSafe:
		return "Safe"
	case FilterCaution:
		return "Caution"
	case FilterCritical:
		return "Critical"
	default:
		return "All"
	}
}

// Matches reports whether a category passes the filter.
func (f TierFilter) Matches(c domain.Category) bool {
	switch f {
	case FilterSafe:
		return c == domain.CategorySafe
	case FilterCaution:
		return c == domain.CategoryCaution
	case FilterCritical:
		return c == domain.CategoryCritical
	default:
		return true
	}
}

// ParseTierFilter accepts all, safe, caution or critical.
func ParseTierFilter(s string) (TierFilter, bool) {
	switch strings.ToLower(s) {
	case "", "all":
		return FilterAll, true
	case "safe":
		return FilterSafe, true
	case "caution":
		return FilterCaution, true
	case "critical":
		return FilterCritical, true
	default:
		return FilterAll, false
	}
}

// Query describes a display list: tier filter, then name search, then sort.
type Query struct {
	Filter TierFilter
	Search string
	Sort   SortKey
}

// Select applies q to procs and returns a new slice. The input is not
// modified, and equal inputs always yield the same order.
func Select(procs []domain.ProcessEntry, q Query) []domain.ProcessEntry {
	needle := strings.ToLower(q.Search)

	out := make([]domain.ProcessEntry, 0, len(procs))
	for _, p := range procs {
		if !q.Filter.Matches(p.Category) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		out = append(out, p)
	}

	SortProcesses(out, q.Sort)
	return out
}

// SortProcesses orders procs in place. Ties fall back to ascending pid.
func SortProcesses(procs []domain.ProcessEntry, key SortKey) {
	sort.SliceStable(procs, func(i, j int) bool {
		a, b := procs[i], procs[j]
		switch key {
		case SortPID:
			return a.PID < b.PID
		case SortName:
			an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
			if an != bn {
				return an < bn
			}
		default:
			if a.MemoryBytes != b.MemoryBytes {
				return a.MemoryBytes > b.MemoryBytes
			}
		}
		return a.PID < b.PID
	})
}
