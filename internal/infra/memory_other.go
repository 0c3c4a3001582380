//go:build !darwin

package infra

// compressedBytes is zero: only macOS exposes a memory compressor counter.
func compressedBytes() uint64 {
	return 0
}
