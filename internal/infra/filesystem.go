package infra

import (
	"os"
	"path/filepath"
	"strings"
)

// FileSystem wraps the few filesystem lookups the app needs.
type FileSystem struct {
	homeDir string
}

// NewFileSystem creates a filesystem helper rooted at the invoking user's home.
func NewFileSystem() *FileSystem {
	return &FileSystem{homeDir: RealUserHome()}
}

// NewFileSystemWithHome creates a filesystem helper with custom home (for testing).
func NewFileSystemWithHome(home string) *FileSystem {
	return &FileSystem{homeDir: home}
}

// Exists checks if a path exists.
func (fs *FileSystem) Exists(path string) bool {
	_, err := os.Stat(fs.ExpandHome(path))
	return err == nil
}

// ExpandHome expands ~ to the user's home directory.
func (fs *FileSystem) ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(fs.homeDir, path[2:])
	}
	if path == "~" {
		return fs.homeDir
	}
	return path
}
