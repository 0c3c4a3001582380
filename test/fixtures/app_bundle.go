// Package fixtures provides test helpers for integration tests.
package fixtures

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"howett.net/plist"
)

// BundleInfo is the subset of Info.plist keys a fake bundle carries.
// Empty fields are left out of the plist.
type BundleInfo struct {
	GetInfoString string `plist:"CFBundleGetInfoString,omitempty"`
	Copyright     string `plist:"NSHumanReadableCopyright,omitempty"`
	Identifier    string `plist:"CFBundleIdentifier,omitempty"`
	Executable    string `plist:"CFBundleExecutable,omitempty"`
}

// FakeAppBundle creates a directory structure mimicking a macOS .app bundle.
type FakeAppBundle struct {
	Dir  string
	Name string
}

// NewFakeAppBundle creates a bundle generator for dir/<name>.app.
func NewFakeAppBundle(dir, name string) *FakeAppBundle {
	return &FakeAppBundle{Dir: dir, Name: name}
}

// Root is the bundle directory.
func (f *FakeAppBundle) Root() string {
	return filepath.Join(f.Dir, f.Name+".app")
}

// ExecutablePath is where the bundle's main executable lives.
func (f *FakeAppBundle) ExecutablePath() string {
	return filepath.Join(f.Root(), "Contents", "MacOS", f.Name)
}

// Create writes Contents/Info.plist (XML) and an empty executable.
func (f *FakeAppBundle) Create(info BundleInfo) error {
	if err := os.MkdirAll(filepath.Dir(f.ExecutablePath()), 0755); err != nil {
		return err
	}

	data, err := plist.MarshalIndent(info, plist.XMLFormat, "\t")
	if err != nil {
		return fmt.Errorf("failed to encode Info.plist: %w", err)
	}
	if err := os.WriteFile(filepath.Join(f.Root(), "Contents", "Info.plist"), data, 0644); err != nil {
		return err
	}

	if _, err := os.Stat(f.ExecutablePath()); os.IsNotExist(err) {
		return os.WriteFile(f.ExecutablePath(), nil, 0755)
	}
	return nil
}

// InstallExecutable copies the binary at src into the bundle as its main
// executable, so a process started from it reports a path inside the bundle.
func (f *FakeAppBundle) InstallExecutable(src string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(f.ExecutablePath()), 0755); err != nil {
		return err
	}
	out, err := os.OpenFile(f.ExecutablePath(), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0755)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Cleanup removes the bundle.
func (f *FakeAppBundle) Cleanup() error {
	return os.RemoveAll(f.Root())
}

// StartSleeper runs `sleep seconds` from path (or the system sleep when
// path is empty) and returns the running command. Callers must Wait on it.
func StartSleeper(path string, seconds int) (*exec.Cmd, error) {
	if path == "" {
		var err error
		if path, err = exec.LookPath("sleep"); err != nil {
			return nil, err
		}
	}
	cmd := exec.Command(path, fmt.Sprint(seconds))
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", path, err)
	}
	return cmd, nil
}
