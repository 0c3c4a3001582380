//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"syscall"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/eliteGoblin/activity/internal/domain"
	"github.com/eliteGoblin/activity/internal/infra"
	"github.com/eliteGoblin/activity/internal/usecase"
	"github.com/eliteGoblin/activity/test/fixtures"
)

// exitSignal waits for cmd and returns the signal that ended it.
func exitSignal(cmd *exec.Cmd) syscall.Signal {
	err := cmd.Wait()
	var exitErr *exec.ExitError
	Expect(errors.As(err, &exitErr)).To(BeTrue(), "expected the child to die from a signal, got %v", err)
	status, ok := exitErr.Sys().(syscall.WaitStatus)
	Expect(ok).To(BeTrue())
	Expect(status.Signaled()).To(BeTrue())
	return status.Signal()
}

var _ = Describe("Terminator", func() {
	var terminator domain.Terminator

	BeforeEach(func() {
		terminator = infra.NewTerminator()
	})

	Context("with a running child process", func() {
		var cmd *exec.Cmd

		BeforeEach(func() {
			var err error
			cmd, err = fixtures.StartSleeper("", 60)
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			if cmd.ProcessState == nil {
				_ = cmd.Process.Kill()
				_ = cmd.Wait()
			}
		})

		It("sends SIGTERM by default", func() {
			pid := cmd.Process.Pid
			Expect(terminator.IsRunning(pid)).To(BeTrue())

			Expect(terminator.Terminate(pid, false).Outcome).To(Equal(domain.KillSucceeded))
			Expect(exitSignal(cmd)).To(Equal(syscall.SIGTERM))

			Expect(terminator.IsRunning(pid)).To(BeFalse())
			Expect(terminator.Terminate(pid, false).Outcome).To(Equal(domain.KillNoSuchProcess))
		})

		It("sends SIGKILL when forced", func() {
			Expect(terminator.Terminate(cmd.Process.Pid, true).Outcome).To(Equal(domain.KillSucceeded))
			Expect(exitSignal(cmd)).To(Equal(syscall.SIGKILL))
		})
	})

	Context("with a process owned by another user", func() {
		It("reports permission denied", func() {
			if os.Geteuid() == 0 {
				Skip("running as root")
			}
			Expect(terminator.Terminate(1, false).Outcome).To(Equal(domain.KillPermissionDenied))
			Expect(terminator.IsRunning(1)).To(BeTrue())
		})
	})

	Describe("batch termination", func() {
		It("terminates every target and counts the freed memory", func() {
			var cmds []*exec.Cmd
			var targets []domain.ProcessEntry
			for i := 0; i < 3; i++ {
				cmd, err := fixtures.StartSleeper("", 60)
				Expect(err).NotTo(HaveOccurred())
				cmds = append(cmds, cmd)
				targets = append(targets, domain.ProcessEntry{PID: cmd.Process.Pid, Name: "sleep", MemoryBytes: 1024})
			}

			reaper := usecase.NewReaper(terminator, zap.NewNop())
			reports := reaper.Terminate(context.Background(), targets, false)

			count, bytes := usecase.Succeeded(reports)
			Expect(count).To(Equal(3))
			Expect(bytes).To(Equal(uint64(3 * 1024)))
			for _, cmd := range cmds {
				Expect(exitSignal(cmd)).To(Equal(syscall.SIGTERM))
			}
		})
	})
})
