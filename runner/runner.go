package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sync"
	"time"
)

const (
	defaultStartAttempts = 5
	defaultStartDelay    = 10 * time.Millisecond
)

// Runner launches local commands. It is safe for concurrent use.
type Runner struct {
	startAttempts int
	startDelay    time.Duration

	mu     sync.RWMutex
	active int
	closed bool
}

// New creates a Runner.
func New(opts ...Option) *Runner {
	cfg := Config{
		startAttempts: defaultStartAttempts,
		startDelay:    defaultStartDelay,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return &Runner{
		startAttempts: cfg.startAttempts,
		startDelay:    cfg.startDelay,
	}
}

// LookPath resolves file against the PATH of the running process as it is now.
func (r *Runner) LookPath(_ context.Context, file string) (string, error) {
	if r.isClosed() {
		return "", fmt.Errorf("cannot look up path: %w", ErrRunnerClosed)
	}

	return exec.LookPath(file)
}

// Run executes cmd to completion and captures its stdout and stderr.
// A non-zero exit yields the populated Result together with an *ExitError
// carrying the captured stderr.
func (r *Runner) Run(ctx context.Context, cmd *Command) (*Result, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var stdoutBuf, stderrBuf bytes.Buffer

	cmdCopy := *cmd
	cmdCopy.Stdout = teeWriter(&stdoutBuf, cmd.Stdout)
	cmdCopy.Stderr = teeWriter(&stderrBuf, cmd.Stderr)

	process, err := r.Start(ctx, &cmdCopy)
	if err != nil {
		return nil, err
	}

	defer func() { _ = process.Close() }()

	waitErr := process.Wait()

	res := process.Result()
	res.Stdout = stdoutBuf.Bytes()
	res.Stderr = stderrBuf.Bytes()

	var exitErr *ExitError
	if errors.As(waitErr, &exitErr) {
		exitErr.Command = cmd
		exitErr.Stderr = res.Stderr
	}

	return res, waitErr
}

// Start launches cmd asynchronously. The caller must Wait on or Close the
// returned Process.
func (r *Runner) Start(ctx context.Context, cmd *Command) (*Process, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()

	if r.closed {
		r.mu.Unlock()

		return nil, fmt.Errorf("cannot start %s: %w", cmd, ErrRunnerClosed)
	}

	r.active++
	r.mu.Unlock()

	process := &Process{
		runner: r,
		cmd:    cmd,
	}

	if err := process.start(ctx, r.startAttempts, r.startDelay); err != nil {
		r.decrementActive()

		return nil, &TransportError{Command: cmd, Err: err}
	}

	return process, nil
}

// ActiveProcesses returns the number of commands started but not yet exited.
func (r *Runner) ActiveProcesses() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.active
}

// Close stops the Runner from accepting new commands. Running processes are
// left alone. Close is idempotent.
func (r *Runner) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true

	return nil
}

func (r *Runner) decrementActive() {
	r.mu.Lock()
	r.active--
	r.mu.Unlock()
}

func (r *Runner) isClosed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.closed
}

func teeWriter(buf *bytes.Buffer, w io.Writer) io.Writer {
	if w == nil {
		return buf
	}

	return io.MultiWriter(buf, w)
}
