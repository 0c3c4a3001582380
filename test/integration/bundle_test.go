//go:build integration

package integration

import (
	"context"
	"os"
	"os/exec"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/eliteGoblin/activity/internal/domain"
	"github.com/eliteGoblin/activity/internal/infra"
	"github.com/eliteGoblin/activity/internal/policy"
	"github.com/eliteGoblin/activity/test/fixtures"
)

var _ = Describe("App bundle descriptions", func() {
	var (
		tmpDir string
		bundle *fixtures.FakeAppBundle
		reader *infra.BundleReader
	)

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "activity-integration-*")
		Expect(err).NotTo(HaveOccurred())

		bundle = fixtures.NewFakeAppBundle(tmpDir, "FixtureApp")
		reader = infra.NewBundleReader(infra.NewFileSystem())
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	Describe("Describe", func() {
		It("prefers the get-info string", func() {
			Expect(bundle.Create(fixtures.BundleInfo{
				GetInfoString: "FixtureApp 1.0, test build",
				Copyright:     "Copyright 2026 Example",
				Identifier:    "com.example.fixture",
			})).To(Succeed())

			Expect(reader.Describe(bundle.ExecutablePath())).To(Equal("FixtureApp 1.0, test build"))
		})

		It("falls back to the copyright, then the identifier", func() {
			Expect(bundle.Create(fixtures.BundleInfo{Copyright: "Copyright 2026 Example", Identifier: "com.example.fixture"})).To(Succeed())
			Expect(reader.Describe(bundle.ExecutablePath())).To(Equal("Copyright 2026 Example"))

			other := fixtures.NewFakeAppBundle(tmpDir, "Other")
			Expect(other.Create(fixtures.BundleInfo{Identifier: "com.example.other"})).To(Succeed())
			Expect(reader.Describe(other.ExecutablePath())).To(Equal("com.example.other"))
		})

		It("is empty without any of the keys", func() {
			Expect(bundle.Create(fixtures.BundleInfo{Executable: "FixtureApp"})).To(Succeed())
			Expect(reader.Describe(bundle.ExecutablePath())).To(BeEmpty())
		})
	})

	Context("with a process started from the bundle", func() {
		It("reports the bundle description in the snapshot", func() {
			Expect(bundle.Create(fixtures.BundleInfo{GetInfoString: "FixtureApp 1.0, test build"})).To(Succeed())
			sleepPath, err := exec.LookPath("sleep")
			Expect(err).NotTo(HaveOccurred())
			Expect(bundle.InstallExecutable(sleepPath)).To(Succeed())

			cmd, err := fixtures.StartSleeper(bundle.ExecutablePath(), 60)
			Expect(err).NotTo(HaveOccurred())
			defer func() {
				_ = cmd.Process.Kill()
				_ = cmd.Wait()
			}()

			source := infra.NewProcessSource(reader)
			var entry *domain.ProcessEntry
			Eventually(func() string {
				entry, err = source.GetProcess(context.Background(), cmd.Process.Pid)
				if err != nil {
					return ""
				}
				return entry.Path
			}, "2s", "50ms").Should(ContainSubstring("FixtureApp.app/Contents/MacOS"))

			Expect(entry.BundleInfo).To(Equal("FixtureApp 1.0, test build"))
			Expect(entry.MemoryBytes).To(BeNumerically(">", 0))

			if os.Geteuid() != 0 {
				Expect(policy.NewClassifier().Classify(*entry)).To(Equal(domain.CategorySafe))
			}
		})
	})
})
