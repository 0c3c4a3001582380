// Package domain contains core business entities and interfaces.
// This is the innermost layer - no external dependencies.
package domain

import "fmt"

// Category is the safety tier of a process. It decides whether the process
// may be targeted for termination from the interactive view.
type Category int

const (
	CategorySafe Category = iota
	CategoryCaution
	CategoryCritical
)

// Label returns the short display name.
func (c Category) Label() string {
	switch c {
	case CategorySafe:
		return "Safe"
	case CategoryCaution:
		return "Caution"
	case CategoryCritical:
		return "Critical"
	default:
		return "Unknown"
	}
}

// Description explains what the tier means to the user.
func (c Category) Description() string {
	switch c {
	case CategorySafe:
		return "User application, safe to close"
	case CategoryCaution:
		return "Apple user-space service, close with care"
	case CategoryCritical:
		return "System-critical process, do not close"
	default:
		return ""
	}
}

func (c Category) String() string {
	return c.Label()
}

// ProcessEntry is one row of a process snapshot.
// Entries are produced fresh on every refresh and never mutated in place.
type ProcessEntry struct {
	PID         int
	Name        string
	Path        string
	MemoryBytes uint64 // resident set size
	UID         uint32
	Category    Category
	BundleInfo  string // human-readable app bundle description, may be empty
}

// IsSelf reports whether the entry describes the process with selfPID.
func (p ProcessEntry) IsSelf(selfPID int) bool {
	return p.PID == selfPID
}

// MemoryStats is an aggregate snapshot of host memory counters.
type MemoryStats struct {
	TotalBytes      uint64
	UsedBytes       uint64
	FreeBytes       uint64
	ActiveBytes     uint64
	InactiveBytes   uint64
	WiredBytes      uint64
	CompressedBytes uint64
	AppBytes        uint64
	Pressure        float64 // percent, 0..100
}

// PressureBand is one of the three severity bands applied wherever
// memory pressure is displayed.
type PressureBand int

const (
	PressureNormal PressureBand = iota
	PressureWarning
	PressureCritical
)

// BandFor maps a pressure percentage to its band (<50, <80, >=80).
func BandFor(pressure float64) PressureBand {
	switch {
	case pressure < 50:
		return PressureNormal
	case pressure < 80:
		return PressureWarning
	default:
		return PressureCritical
	}
}

// Label returns the display name of the band.
func (b PressureBand) Label() string {
	switch b {
	case PressureNormal:
		return "Normal"
	case PressureWarning:
		return "Warning"
	default:
		return "Critical"
	}
}

// Band returns the severity band of the current pressure.
func (m MemoryStats) Band() PressureBand {
	return BandFor(m.Pressure)
}

// KillOutcome classifies the result of a termination attempt.
type KillOutcome int

const (
	KillSucceeded KillOutcome = iota
	KillPermissionDenied
	KillNoSuchProcess
	KillFailed
)

func (o KillOutcome) String() string {
	switch o {
	case KillSucceeded:
		return "succeeded"
	case KillPermissionDenied:
		return "permission denied"
	case KillNoSuchProcess:
		return "no such process"
	default:
		return "failed"
	}
}

// KillResult is returned by a Terminator. Message is set for KillFailed.
type KillResult struct {
	Outcome KillOutcome
	Message string
}

// OK reports whether the signal was delivered.
func (r KillResult) OK() bool {
	return r.Outcome == KillSucceeded
}

func (r KillResult) String() string {
	if r.Outcome == KillFailed && r.Message != "" {
		return fmt.Sprintf("failed: %s", r.Message)
	}
	return r.Outcome.String()
}
