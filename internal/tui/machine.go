package tui

import (
	"context"

	"github.com/eliteGoblin/activity/internal/domain"
	"github.com/eliteGoblin/activity/internal/usecase"
)

// Machine routes key events to the handler of the current mode.
type Machine struct {
	state     *State
	runner    ActionRunner
	refresh   func(ctx context.Context)
	selfPID   int
	threshold uint64
}

// NewMachine creates a state machine over state. refresh is called after a
// confirmed action so its effect shows up immediately; it may be nil.
func NewMachine(state *State, runner ActionRunner, refresh func(ctx context.Context), selfPID int, threshold uint64) *Machine {
	return &Machine{
		state:     state,
		runner:    runner,
		refresh:   refresh,
		selfPID:   selfPID,
		threshold: threshold,
	}
}

// Handle applies one key event and reports whether the program should quit.
func (m *Machine) Handle(ctx context.Context, key Key) bool {
	switch m.state.Mode {
	case ModeSearch:
		m.handleSearch(key)
		return false
	case ModeConfirm:
		m.handleConfirm(ctx, key)
		return false
	default:
		return m.handleNormal(key)
	}
}

func (m *Machine) handleNormal(key Key) bool {
	s := m.state

	switch {
	case key.Kind == KeyQuit || key.Is('q'):
		return true

	case key.Kind == KeyUp:
		s.Selected--
		s.Clamp()

	case key.Kind == KeyDown:
		s.Selected++
		s.Clamp()

	case key.Kind == KeyEnter || key.Is('k'):
		p, ok := s.SelectedProcess()
		if !ok || p.Category == domain.CategoryCritical {
			break
		}
		s.Confirm(KillSingle(p))

	case key.Is('f'):
		s.Filter = s.Filter.Next()
		s.ResetSelection()

	case key.Is('s'):
		s.Sort = s.Sort.Next()
		s.Clamp()

	case key.Is('/'):
		s.Mode = ModeSearch
		s.Search = ""

	case key.Is('c'):
		candidates := usecase.CleanupCandidates(s.Processes, m.threshold, m.selfPID)
		if len(candidates) > 0 {
			s.Confirm(CleanupBatch(candidates))
		}
	}

	return false
}

func (m *Machine) handleSearch(key Key) {
	s := m.state

	switch key.Kind {
	case KeyEscape:
		s.Mode = ModeNormal
		s.Search = ""
		s.ResetSelection()

	case KeyEnter:
		s.Mode = ModeNormal
		s.ResetSelection()

	case KeyBackspace:
		if s.Search != "" {
			s.Search = s.Search[:len(s.Search)-1]
			s.ResetSelection()
		}

	case KeyChar:
		s.Search += string(key.Char)
		s.ResetSelection()
	}
}

func (m *Machine) handleConfirm(ctx context.Context, key Key) {
	s := m.state

	switch {
	case key.Is('y') || key.Is('Y'):
		if s.Pending != nil {
			m.runner.Execute(ctx, s.Pending)
			if m.refresh != nil {
				m.refresh(ctx)
			}
		}
		s.Dismiss()

	case key.Is('n') || key.Is('N') || key.Kind == KeyEscape:
		s.Dismiss()
	}
}
