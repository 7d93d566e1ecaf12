//go:build !windows

package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithStartRetry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		attempts int
		want     int
	}{
		{name: "zero clamps to one", attempts: 0, want: 1},
		{name: "negative clamps to one", attempts: -3, want: 1},
		{name: "kept", attempts: 4, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := New(WithStartRetry(tt.attempts, 2*time.Millisecond))
			assert.Equal(t, tt.want, r.startAttempts)
			assert.Equal(t, 2*time.Millisecond, r.startDelay)
		})
	}
}

func TestIsTextBusy(t *testing.T) {
	t.Parallel()

	assert.True(t, isTextBusy(syscall.ETXTBSY))
	assert.True(t, isTextBusy(&os.PathError{Op: "fork/exec", Path: "/tmp/x", Err: syscall.ETXTBSY}))
	assert.True(t, isTextBusy(fmt.Errorf("start: %w", syscall.ETXTBSY)))

	assert.False(t, isTextBusy(nil))
	assert.False(t, isTextBusy(syscall.ENOENT))
	assert.False(t, isTextBusy(&os.PathError{Op: "fork/exec", Path: "/tmp/x", Err: syscall.EACCES}))
	assert.False(t, isTextBusy(errors.New("text file busy")))
}

// TestStart_TextBusy holds a script open for writing, which makes exec fail
// with ETXTBSY until the descriptor is closed.
func TestStart_TextBusy(t *testing.T) {
	t.Parallel()

	script := filepath.Join(t.TempDir(), "busy")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho ran\n"), 0o700))

	f, err := os.OpenFile(script, os.O_WRONLY, 0)
	require.NoError(t, err)

	t.Cleanup(func() { _ = f.Close() })

	once := New(WithStartRetry(1, 0))
	t.Cleanup(func() { _ = once.Close() })

	p, err := once.Start(context.Background(), NewCommand(script))
	if err == nil {
		_ = p.Close()

		t.Skip("kernel allows exec of a file open for writing")
	}

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	require.True(t, isTextBusy(err), "unexpected start error: %v", err)
	assert.Equal(t, 0, once.ActiveProcesses())

	t.Run("retried until released", func(t *testing.T) {
		r := New(WithStartRetry(200, 5*time.Millisecond))
		t.Cleanup(func() { _ = r.Close() })

		time.AfterFunc(50*time.Millisecond, func() { _ = f.Close() })

		res, err := r.Run(context.Background(), NewCommand(script))
		require.NoError(t, err)
		assert.Equal(t, "ran\n", string(res.Stdout))
	})
}
