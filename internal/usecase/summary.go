package usecase

import "github.com/eliteGoblin/activity/internal/domain"

// TierTotals is the count and resident size of one category.
type TierTotals struct {
	Count int
	Bytes uint64
}

// CategorySummary groups a snapshot by category.
type CategorySummary struct {
	Safe     TierTotals
	Caution  TierTotals
	Critical TierTotals
}

// Summarize tallies procs per category.
func Summarize(procs []domain.ProcessEntry) CategorySummary {
	var s CategorySummary
	for _, p := range procs {
		t := s.For(p.Category)
		t.Count++
		t.Bytes += p.MemoryBytes
	}
	return s
}

// For returns the totals bucket of c.
func (s *CategorySummary) For(c domain.Category) *TierTotals {
	switch c {
	case domain.CategorySafe:
		return &s.Safe
	case domain.CategoryCaution:
		return &s.Caution
	default:
		return &s.Critical
	}
}
