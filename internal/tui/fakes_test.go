package tui

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/eliteGoblin/activity/internal/domain"
	"github.com/eliteGoblin/activity/internal/usecase"
)

const (
	mib = uint64(1024 * 1024)
	gib = 1024 * mib
)

// fakeTerminal implements Terminal for testing
type fakeTerminal struct {
	input    []byte
	timeouts []time.Duration
	width    int
	height   int
	frames   []string
	pending  []Pending
	writeErr error
}

func newFakeTerminal(width, height int, input string) *fakeTerminal {
	return &fakeTerminal{width: width, height: height, input: []byte(input)}
}

func (f *fakeTerminal) PollByte(timeout time.Duration) (byte, bool) {
	f.timeouts = append(f.timeouts, timeout)
	if len(f.input) == 0 {
		return 0, false
	}
	b := f.input[0]
	f.input = f.input[1:]
	return b, true
}

func (f *fakeTerminal) Size() (int, int) {
	return f.width, f.height
}

func (f *fakeTerminal) WriteFrame(frame string) error {
	f.frames = append(f.frames, frame)
	return f.writeErr
}

func (f *fakeTerminal) Pending() Pending {
	if len(f.pending) == 0 {
		return Pending{}
	}
	p := f.pending[0]
	f.pending = f.pending[1:]
	return p
}

func (f *fakeTerminal) lastFrame() string {
	if len(f.frames) == 0 {
		return ""
	}
	return f.frames[len(f.frames)-1]
}

// fakeProcessSource implements domain.ProcessSource for testing
type fakeProcessSource struct {
	procs []domain.ProcessEntry
	err   error
	calls int
}

func (f *fakeProcessSource) ListProcesses(ctx context.Context) ([]domain.ProcessEntry, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.ProcessEntry, len(f.procs))
	copy(out, f.procs)
	return out, nil
}

func (f *fakeProcessSource) GetProcess(ctx context.Context, pid int) (*domain.ProcessEntry, error) {
	for _, p := range f.procs {
		if p.PID == pid {
			return &p, nil
		}
	}
	return nil, errors.New("no such process")
}

// fakeMemorySource implements domain.MemorySource for testing
type fakeMemorySource struct {
	stats *domain.MemoryStats
	err   error
}

func (f *fakeMemorySource) MemoryStats(ctx context.Context) (*domain.MemoryStats, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.stats, nil
}

// keepCategory is a classifier that trusts the category already on the entry.
type keepCategory struct{}

func (keepCategory) Classify(e domain.ProcessEntry) domain.Category {
	return e.Category
}

// recordingTerminator implements domain.Terminator for testing
type recordingTerminator struct {
	killedPIDs []int
	onKill     func(pid int)
}

func (r *recordingTerminator) Terminate(pid int, force bool) domain.KillResult {
	r.killedPIDs = append(r.killedPIDs, pid)
	if r.onKill != nil {
		r.onKill(pid)
	}
	return domain.KillResult{Outcome: domain.KillSucceeded}
}

func (r *recordingTerminator) IsRunning(pid int) bool {
	return false
}

// manualClock is a controllable time source.
type manualClock struct {
	t time.Time
}

func (c *manualClock) now() time.Time {
	return c.t
}

func (c *manualClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

// harness bundles an App with its fakes.
type harness struct {
	app   *App
	term  *fakeTerminal
	procs *fakeProcessSource
	mem   *fakeMemorySource
	kills *recordingTerminator
	clock *manualClock
}

// newHarness builds an app over fakes and loads the first snapshot.
func newHarness(procs []domain.ProcessEntry, width, height int, input string) *harness {
	h := &harness{
		term:  newFakeTerminal(width, height, input),
		procs: &fakeProcessSource{procs: procs},
		mem: &fakeMemorySource{stats: &domain.MemoryStats{
			TotalBytes: 16 * gib,
			UsedBytes:  8 * gib,
			Pressure:   42,
		}},
		kills: &recordingTerminator{},
		clock: &manualClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)},
	}

	logger := zap.NewNop()
	runner := NewExecutor(usecase.NewReaper(h.kills, logger))
	h.app = NewApp(DefaultConfig(), h.term, h.procs, h.mem, keepCategory{}, runner, logger)
	h.app.now = h.clock.now
	h.app.sleep = func(time.Duration) {}
	h.app.Refresh(context.Background())
	return h
}

// press feeds keys to the machine directly, bypassing the decoder.
func (h *harness) press(keys ...Key) {
	for _, k := range keys {
		h.app.machine.Handle(context.Background(), k)
	}
}

func scenarioProcs() []domain.ProcessEntry {
	return []domain.ProcessEntry{
		{PID: 100, Name: "A", MemoryBytes: 2 * gib, Category: domain.CategorySafe},
		{PID: 1, Name: "launchd", MemoryBytes: 0, Category: domain.CategoryCritical},
	}
}

// manyProcs returns n safe processes with distinct, descending memory.
func manyProcs(n int) []domain.ProcessEntry {
	out := make([]domain.ProcessEntry, n)
	for i := range out {
		out[i] = domain.ProcessEntry{
			PID:         1000 + i,
			Name:        "proc",
			MemoryBytes: uint64(n-i) * mib,
			Category:    domain.CategorySafe,
		}
	}
	return out
}
