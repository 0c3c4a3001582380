package tui

import (
	"github.com/eliteGoblin/activity/internal/domain"
	"github.com/eliteGoblin/activity/internal/usecase"
)

// Mode is the input mode of the interactive view.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeConfirm
)

func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "search"
	case ModeConfirm:
		return "confirm"
	default:
		return "normal"
	}
}

// ActionKind distinguishes the two confirmable actions.
type ActionKind int

const (
	ActionKillSingle ActionKind = iota
	ActionCleanupBatch
)

// Action is a termination waiting for confirmation.
type Action struct {
	Kind        ActionKind
	Targets     []domain.ProcessEntry
	Reclaimable uint64
}

// KillSingle targets one process.
func KillSingle(p domain.ProcessEntry) *Action {
	return &Action{Kind: ActionKillSingle, Targets: []domain.ProcessEntry{p}, Reclaimable: p.MemoryBytes}
}

// CleanupBatch targets several processes at once.
func CleanupBatch(procs []domain.ProcessEntry) *Action {
	return &Action{Kind: ActionCleanupBatch, Targets: procs, Reclaimable: usecase.TotalMemory(procs)}
}

// Rows taken by everything except the table body: title, status,
// table header, separator and footer.
const chromeRows = 5

// State is the single mutable model of the interactive view.
// Pending is non-nil exactly when Mode is ModeConfirm.
type State struct {
	Processes []domain.ProcessEntry
	Memory    *domain.MemoryStats

	Sort   usecase.SortKey
	Filter usecase.TierFilter
	Search string
	Mode   Mode

	Selected int
	Scroll   int
	Pending  *Action

	Width  int
	Height int
}

// NewState returns the startup state: memory sort, all tiers, normal mode.
func NewState(width, height int) *State {
	return &State{
		Sort:   usecase.SortMemory,
		Filter: usecase.FilterAll,
		Mode:   ModeNormal,
		Width:  width,
		Height: height,
	}
}

// Query is the current filter, search and sort.
func (s *State) Query() usecase.Query {
	return usecase.Query{Filter: s.Filter, Search: s.Search, Sort: s.Sort}
}

// DisplayList recomputes the visible process list from the snapshot.
func (s *State) DisplayList() []domain.ProcessEntry {
	return usecase.Select(s.Processes, s.Query())
}

// VisibleRows is the number of table rows the terminal can show.
func (s *State) VisibleRows() int {
	return max(1, s.Height-chromeRows)
}

// Clamp restores the selection and scroll invariants against the current
// display list and terminal height.
func (s *State) Clamp() {
	n := len(s.DisplayList())
	if n == 0 {
		s.Selected = 0
		s.Scroll = 0
		return
	}

	s.Selected = max(0, min(s.Selected, n-1))
	rows := s.VisibleRows()
	if s.Selected < s.Scroll {
		s.Scroll = s.Selected
	}
	if s.Selected >= s.Scroll+rows {
		s.Scroll = s.Selected - rows + 1
	}
	s.Scroll = max(0, s.Scroll)
}

// ResetSelection moves to the top of the list.
func (s *State) ResetSelection() {
	s.Selected = 0
	s.Scroll = 0
	s.Clamp()
}

// Resize records new terminal dimensions.
func (s *State) Resize(width, height int) {
	s.Width = width
	s.Height = height
	s.Clamp()
}

// SelectedProcess returns the highlighted row, if any.
func (s *State) SelectedProcess() (domain.ProcessEntry, bool) {
	list := s.DisplayList()
	if s.Selected < 0 || s.Selected >= len(list) {
		return domain.ProcessEntry{}, false
	}
	return list[s.Selected], true
}

// Confirm enters confirm mode for a.
func (s *State) Confirm(a *Action) {
	s.Pending = a
	s.Mode = ModeConfirm
}

// Dismiss leaves confirm mode without acting.
func (s *State) Dismiss() {
	s.Pending = nil
	s.Mode = ModeNormal
}
