//go:build integration

package integration

import (
	"context"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/eliteGoblin/activity/internal/infra"
	"github.com/eliteGoblin/activity/internal/policy"
	"github.com/eliteGoblin/activity/internal/tui"
)

// scriptedTerminal feeds fixed input to the loop and keeps every frame.
type scriptedTerminal struct {
	input  []byte
	frames []string
}

func (s *scriptedTerminal) PollByte(timeout time.Duration) (byte, bool) {
	if len(s.input) == 0 {
		return 0, false
	}
	b := s.input[0]
	s.input = s.input[1:]
	return b, true
}

func (s *scriptedTerminal) Size() (int, int) { return 120, 30 }

func (s *scriptedTerminal) WriteFrame(frame string) error {
	s.frames = append(s.frames, frame)
	return nil
}

func (s *scriptedTerminal) Pending() tui.Pending { return tui.Pending{} }

var _ = Describe("Monitor loop", func() {
	var (
		processes = infra.NewProcessSource(infra.NewBundleReader(infra.NewFileSystem()))
		memory    = infra.NewMemorySource()
	)

	newApp := func(term tui.Terminal) *tui.App {
		return tui.NewApp(tui.DefaultConfig(), term, processes, memory, policy.NewClassifier(), nil, zap.NewNop())
	}

	Context("with live process and memory sources", func() {
		It("renders a snapshot and quits on q", func() {
			term := &scriptedTerminal{input: []byte("q")}
			app := newApp(term)

			Expect(app.Run(context.Background())).To(Succeed())

			Expect(term.frames).To(HaveLen(1))
			Expect(term.frames[0]).To(ContainSubstring("Activity Monitor"))
			Expect(term.frames[0]).To(ContainSubstring("Memory:"))
			Expect(term.frames[0]).To(ContainSubstring("processes"))

			s := app.State()
			Expect(s.Processes).NotTo(BeEmpty())
			Expect(s.Memory).NotTo(BeNil())
			Expect(s.Memory.TotalBytes).To(BeNumerically(">", 0))
			Expect(s.Memory.Pressure).To(BeNumerically("<=", 100))
		})

		It("finds its own process by name search", func() {
			self, err := processes.GetProcess(context.Background(), os.Getpid())
			Expect(err).NotTo(HaveOccurred())

			input := "/" + self.Name + "\r" + "q"
			term := &scriptedTerminal{input: []byte(input)}
			app := newApp(term)

			Expect(app.Run(context.Background())).To(Succeed())

			s := app.State()
			Expect(s.Mode).To(Equal(tui.ModeNormal))
			Expect(s.Search).To(Equal(self.Name))

			var pids []int
			for _, p := range s.DisplayList() {
				pids = append(pids, p.PID)
			}
			Expect(pids).To(ContainElement(os.Getpid()))
			Expect(term.frames).To(HaveLen(len(input)))
		})

		It("stops when the context is cancelled", func() {
			term := &scriptedTerminal{}
			app := newApp(term)
			ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
			defer cancel()

			Expect(app.Run(ctx)).To(Succeed())
			Expect(term.frames).NotTo(BeEmpty())
		})
	})
})
