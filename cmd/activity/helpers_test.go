package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// pipeFiles returns the two ends of a pipe, closed at test end.
func pipeFiles(t *testing.T) (*os.File, *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = r.Close()
		_ = w.Close()
	})
	return r, w
}
