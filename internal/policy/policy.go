// Package policy decides how dangerous it is to terminate a process.
// Rules are static name lists and path prefixes; nothing here performs I/O.
package policy

import (
	"strings"

	"github.com/eliteGoblin/activity/internal/domain"
)

// Rules holds the static lists a Classifier consults.
type Rules struct {
	CriticalNames map[string]struct{}
	CautionNames  map[string]struct{}

	// CriticalPaths are system prefixes. CautionPaths are sub-prefixes of
	// CriticalPaths that are downgraded to caution.
	CriticalPaths []string
	CautionPaths  []string

	// SafePaths are prefixes of user-installed software.
	SafePaths []string
}

// Classifier implements domain.Classifier.
type Classifier struct {
	rules Rules
}

// NewClassifier creates a classifier with the default macOS rules.
func NewClassifier() *Classifier {
	return &Classifier{rules: DefaultRules()}
}

// NewClassifierWithRules creates a classifier with custom rules (for testing).
func NewClassifierWithRules(rules Rules) *Classifier {
	return &Classifier{rules: rules}
}

// Classify returns the safety tier of entry. Rules are evaluated in order and
// the first match wins; anything unrecognized is caution.
func (c *Classifier) Classify(entry domain.ProcessEntry) domain.Category {
	// kernel_task and launchd
	if entry.PID <= 1 {
		return domain.CategoryCritical
	}

	if entry.UID == 0 {
		return domain.CategoryCritical
	}

	if _, ok := c.rules.CriticalNames[entry.Name]; ok {
		return domain.CategoryCritical
	}
	if _, ok := c.rules.CautionNames[entry.Name]; ok {
		return domain.CategoryCaution
	}

	if entry.Path == "" {
		return domain.CategoryCaution
	}

	if hasAnyPrefix(entry.Path, c.rules.CriticalPaths) {
		if hasAnyPrefix(entry.Path, c.rules.CautionPaths) {
			return domain.CategoryCaution
		}
		return domain.CategoryCritical
	}

	if hasAnyPrefix(entry.Path, c.rules.SafePaths) || strings.Contains(entry.Path, ".app/") {
		return domain.CategorySafe
	}

	return domain.CategoryCaution
}

// ClassifyAll returns a copy of entries with Category filled in.
func ClassifyAll(c domain.Classifier, entries []domain.ProcessEntry) []domain.ProcessEntry {
	out := make([]domain.ProcessEntry, len(entries))
	for i, e := range entries {
		e.Category = c.Classify(e)
		out[i] = e
	}
	return out
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// Ensure Classifier implements domain.Classifier.
var _ domain.Classifier = (*Classifier)(nil)
