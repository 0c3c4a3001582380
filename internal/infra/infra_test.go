package infra

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/eliteGoblin/activity/internal/domain"
)

const testPlist = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>CFBundleIdentifier</key>
	<string>com.example.editor</string>
%s
</dict>
</plist>
`

// writeBundle creates name.app with an Info.plist and returns the executable path.
func writeBundle(t *testing.T, dir, name, extra string) string {
	t.Helper()
	root := filepath.Join(dir, name+".app")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Contents", "MacOS"), 0755))
	content := []byte(fmt.Sprintf(testPlist, extra))
	require.NoError(t, os.WriteFile(filepath.Join(root, "Contents", "Info.plist"), content, 0644))
	return filepath.Join(root, "Contents", "MacOS", name)
}

// TestBundleRoot verifies bundle root detection.
func TestBundleRoot(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/Applications/Editor.app/Contents/MacOS/Editor", "/Applications/Editor.app"},
		{"/Applications/Outer.app/Contents/Helpers/Inner.app/Contents/MacOS/x", "/Applications/Outer.app"},
		{"/Applications/Editor.app", "/Applications/Editor.app"},
		{"/usr/bin/top", ""},
		{"", ""},
		{"/opt/apps/thing.application/bin", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BundleRoot(tt.path), tt.path)
	}
}

// TestBundleReader_PrefersGetInfoString verifies the key precedence.
func TestBundleReader_PrefersGetInfoString(t *testing.T) {
	dir := t.TempDir()
	reader := NewBundleReader(NewFileSystemWithHome(dir))

	full := writeBundle(t, dir, "Full", `	<key>CFBundleGetInfoString</key>
	<string>Editor 2.1, a text editor</string>
	<key>NSHumanReadableCopyright</key>
	<string>Copyright 2024 Example</string>`)
	copyrightOnly := writeBundle(t, dir, "Copy", `	<key>NSHumanReadableCopyright</key>
	<string>Copyright 2024 Example</string>`)
	idOnly := writeBundle(t, dir, "Bare", "")

	assert.Equal(t, "Editor 2.1, a text editor", reader.Describe(full))
	assert.Equal(t, "Copyright 2024 Example", reader.Describe(copyrightOnly))
	assert.Equal(t, "com.example.editor", reader.Describe(idOnly))
}

// TestBundleReader_Misses verifies paths without a readable plist describe as empty.
func TestBundleReader_Misses(t *testing.T) {
	dir := t.TempDir()
	reader := NewBundleReader(NewFileSystemWithHome(dir))

	assert.Empty(t, reader.Describe("/usr/bin/top"))
	assert.Empty(t, reader.Describe(filepath.Join(dir, "Missing.app", "Contents", "MacOS", "Missing")))

	broken := filepath.Join(dir, "Broken.app")
	require.NoError(t, os.MkdirAll(filepath.Join(broken, "Contents"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(broken, "Contents", "Info.plist"), []byte(`<plist version="1.0"><array><string>x</string></array></plist>`), 0644))
	assert.Empty(t, reader.Describe(filepath.Join(broken, "Contents", "MacOS", "Broken")))
}

// TestBundleReader_CachesPerRoot verifies a bundle is read once.
func TestBundleReader_CachesPerRoot(t *testing.T) {
	dir := t.TempDir()
	reader := NewBundleReader(NewFileSystemWithHome(dir))
	exe := writeBundle(t, dir, "Cached", "")

	require.Equal(t, "com.example.editor", reader.Describe(exe))

	// Removing the plist must not change the cached answer.
	require.NoError(t, os.RemoveAll(filepath.Join(dir, "Cached.app")))
	assert.Equal(t, "com.example.editor", reader.Describe(exe))
	assert.Len(t, reader.cache, 1)
}

// TestBuildMemoryStats verifies derived memory figures.
func TestBuildMemoryStats(t *testing.T) {
	const gib = uint64(1 << 30)

	stats := BuildMemoryStats(16*gib, 4*gib, 4*gib, 2*gib, 2*gib, 2*gib)

	assert.Equal(t, 16*gib, stats.TotalBytes)
	assert.Equal(t, 12*gib, stats.UsedBytes)
	assert.Equal(t, 8*gib, stats.AppBytes)
	assert.InDelta(t, 50.0, stats.Pressure, 0.001)
	assert.Equal(t, domain.PressureWarning, stats.Band())
}

// TestBuildMemoryStats_Bounds verifies clamping and zero-total handling.
func TestBuildMemoryStats_Bounds(t *testing.T) {
	over := BuildMemoryStats(100, 0, 80, 0, 40, 40)
	assert.Equal(t, 100.0, over.Pressure)
	assert.Equal(t, uint64(20), over.AppBytes)

	floored := BuildMemoryStats(100, 90, 5, 0, 20, 0)
	assert.Equal(t, uint64(10), floored.UsedBytes)
	assert.Equal(t, uint64(0), floored.AppBytes)

	empty := BuildMemoryStats(0, 0, 0, 0, 0, 0)
	assert.Equal(t, 0.0, empty.Pressure)
}

// TestMemorySource_Live verifies the host query returns sane numbers.
func TestMemorySource_Live(t *testing.T) {
	stats, err := NewMemorySource().MemoryStats(context.Background())
	require.NoError(t, err)
	assert.Greater(t, stats.TotalBytes, uint64(0))
	assert.GreaterOrEqual(t, stats.Pressure, 0.0)
	assert.LessOrEqual(t, stats.Pressure, 100.0)
}

// TestTerminator_Outcomes verifies errno mapping.
func TestTerminator_Outcomes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want domain.KillOutcome
	}{
		{"delivered", nil, domain.KillSucceeded},
		{"not permitted", unix.EPERM, domain.KillPermissionDenied},
		{"gone", unix.ESRCH, domain.KillNoSuchProcess},
		{"other errno", unix.EINVAL, domain.KillFailed},
		{"wrapped", errors.Join(errors.New("ctx"), unix.ESRCH), domain.KillNoSuchProcess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term := &TerminatorImpl{kill: func(int, unix.Signal) error { return tt.err }}
			result := term.Terminate(4242, false)
			assert.Equal(t, tt.want, result.Outcome)
			if tt.want == domain.KillFailed {
				assert.NotEmpty(t, result.Message)
			}
		})
	}
}

// TestTerminator_Signals verifies SIGTERM by default and SIGKILL when forced.
func TestTerminator_Signals(t *testing.T) {
	var sent []unix.Signal
	term := &TerminatorImpl{kill: func(_ int, sig unix.Signal) error {
		sent = append(sent, sig)
		return nil
	}}

	term.Terminate(10, false)
	term.Terminate(10, true)

	assert.Equal(t, []unix.Signal{unix.SIGTERM, unix.SIGKILL}, sent)
}

// TestTerminator_RejectsGroupPIDs verifies pid 0 and negatives are never signalled.
func TestTerminator_RejectsGroupPIDs(t *testing.T) {
	called := false
	term := &TerminatorImpl{kill: func(int, unix.Signal) error {
		called = true
		return nil
	}}

	assert.Equal(t, domain.KillNoSuchProcess, term.Terminate(0, false).Outcome)
	assert.Equal(t, domain.KillNoSuchProcess, term.Terminate(-1, true).Outcome)
	assert.False(t, term.IsRunning(0))
	assert.False(t, called)
}

// TestTerminator_IsRunning verifies liveness against the test process itself.
func TestTerminator_IsRunning(t *testing.T) {
	term := NewTerminator()
	assert.True(t, term.IsRunning(os.Getpid()))

	eperm := &TerminatorImpl{kill: func(int, unix.Signal) error { return unix.EPERM }}
	assert.True(t, eperm.IsRunning(1))

	gone := &TerminatorImpl{kill: func(int, unix.Signal) error { return unix.ESRCH }}
	assert.False(t, gone.IsRunning(99999))
}

// TestProcessSource_ListIncludesSelf verifies enumeration finds the test binary.
func TestProcessSource_ListIncludesSelf(t *testing.T) {
	src := NewProcessSource(nil)

	entries, err := src.ListProcesses(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	found := false
	for _, e := range entries {
		assert.Greater(t, e.PID, 0)
		assert.NotEmpty(t, e.Name)
		if e.IsSelf(os.Getpid()) {
			found = true
			assert.Greater(t, e.MemoryBytes, uint64(0))
		}
	}
	assert.True(t, found, "own pid missing from snapshot")
}

// TestProcessSource_GetProcess verifies single lookups.
func TestProcessSource_GetProcess(t *testing.T) {
	src := NewProcessSource(nil)

	self, err := src.GetProcess(context.Background(), os.Getpid())
	require.NoError(t, err)
	assert.Equal(t, os.Getpid(), self.PID)
	assert.Equal(t, uint32(os.Geteuid()), self.UID)
}

// TestFileSystem_ExpandHome verifies tilde expansion.
func TestFileSystem_ExpandHome(t *testing.T) {
	fs := NewFileSystemWithHome("/home/tester")

	assert.Equal(t, "/home/tester/logs/a.log", fs.ExpandHome("~/logs/a.log"))
	assert.Equal(t, "/home/tester", fs.ExpandHome("~"))
	assert.Equal(t, "/var/tmp/a.log", fs.ExpandHome("/var/tmp/a.log"))
	assert.Equal(t, "~other/x", fs.ExpandHome("~other/x"))
}

// TestExecModeFor verifies root and user detection.
func TestExecModeFor(t *testing.T) {
	root := execModeFor(0)
	assert.Equal(t, ExecModeSystem, root.Mode)
	assert.True(t, root.IsRoot)
	assert.Equal(t, "root", root.User)
	assert.Contains(t, root.PermissionHint(), "protected by the system")

	nobody := execModeFor(2147483000)
	assert.Equal(t, ExecModeUser, nobody.Mode)
	assert.False(t, nobody.IsRoot)
	assert.Equal(t, "2147483000", nobody.User, "unknown uids fall back to the number")
	assert.Equal(t, "Try running with sudo.", nobody.PermissionHint())

	assert.Equal(t, "system (root)", ExecModeSystem.String())
	assert.Equal(t, "user (non-root)", ExecModeUser.String())
}

// TestDetectExecMode verifies detection follows the effective uid.
func TestDetectExecMode(t *testing.T) {
	mode := DetectExecMode()
	assert.Equal(t, os.Geteuid() == 0, mode.IsRoot)
	assert.NotEmpty(t, mode.User)
}

// TestRealUserHome verifies SUDO_USER is honored and ignored when unknown.
func TestRealUserHome(t *testing.T) {
	t.Setenv("SUDO_USER", "")
	home, _ := os.UserHomeDir()
	assert.Equal(t, home, RealUserHome())

	t.Setenv("SUDO_USER", "no-such-user-activity-test")
	assert.Equal(t, home, RealUserHome())

	t.Setenv("SUDO_USER", "root")
	if u, err := user.Lookup("root"); err == nil {
		assert.Equal(t, u.HomeDir, RealUserHome())
	}
}
