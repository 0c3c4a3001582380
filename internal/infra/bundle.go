package infra

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"howett.net/plist"
)

// bundleInfo holds the Info.plist keys used for process descriptions.
type bundleInfo struct {
	GetInfoString string `plist:"CFBundleGetInfoString"`
	Copyright     string `plist:"NSHumanReadableCopyright"`
	Identifier    string `plist:"CFBundleIdentifier"`
}

// BundleReader derives a human-readable description for executables that
// live inside an application bundle. Results are cached per bundle root,
// including misses, so repeated refreshes do not re-read plists.
type BundleReader struct {
	fs *FileSystem

	mu    sync.Mutex
	cache map[string]string
}

// NewBundleReader creates a bundle reader.
func NewBundleReader(fs *FileSystem) *BundleReader {
	return &BundleReader{
		fs:    fs,
		cache: make(map[string]string),
	}
}

// Describe returns the description for the bundle containing exePath, or ""
// when the path is not inside a bundle or the plist has none of the keys.
func (b *BundleReader) Describe(exePath string) string {
	root := BundleRoot(exePath)
	if root == "" {
		return ""
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if desc, ok := b.cache[root]; ok {
		return desc
	}

	desc := b.read(root)
	b.cache[root] = desc
	return desc
}

func (b *BundleReader) read(root string) string {
	plistPath := filepath.Join(root, "Contents", "Info.plist")
	if !b.fs.Exists(plistPath) {
		return ""
	}

	data, err := os.ReadFile(plistPath)
	if err != nil {
		return ""
	}

	var info bundleInfo
	if _, err := plist.Unmarshal(data, &info); err != nil {
		return ""
	}

	switch {
	case info.GetInfoString != "":
		return info.GetInfoString
	case info.Copyright != "":
		return info.Copyright
	default:
		return info.Identifier
	}
}

// BundleRoot returns the path up to and including the first ".app"
// component of exePath, or "" if there is none.
func BundleRoot(exePath string) string {
	if i := strings.Index(exePath, ".app/"); i >= 0 {
		return exePath[:i+len(".app")]
	}
	if strings.HasSuffix(exePath, ".app") {
		return exePath
	}
	return ""
}
