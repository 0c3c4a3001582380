//go:build darwin

package infra

import "golang.org/x/sys/unix"

// compressedBytes reads the compressor's resident size. Zero if unavailable.
func compressedBytes() uint64 {
	n, err := unix.SysctlUint64("vm.compressor_bytes_used")
	if err != nil {
		return 0
	}
	return n
}
