package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"time"
)

// Process is a started command. It wraps *exec.Cmd to provide waiting,
// signalling and result retrieval.
type Process struct {
	runner  *Runner
	cmd     *Command
	execCmd *exec.Cmd

	mu     sync.RWMutex
	result *Result
	done   chan struct{}
	closed bool
}

func (p *Process) start(ctx context.Context, attempts int, delay time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var err error

	// A fresh script can be briefly unexecutable while a concurrent fork
	// still holds a write descriptor to it. Only that error is retried.
	for i := range attempts {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		// An exec.Cmd cannot be started twice.
		p.execCmd = p.buildExecCmd(ctx)

		err = p.execCmd.Start()
		if err == nil || !isTextBusy(err) {
			break
		}
	}

	if err != nil {
		return err
	}

	p.done = make(chan struct{})
	startTime := time.Now()

	// The waiter owns the only call to execCmd.Wait; everyone else blocks on done.
	go func() {
		defer close(p.done)
		defer p.runner.decrementActive()

		err := p.execCmd.Wait()
		exitCode := 0

		if p.execCmd.ProcessState != nil {
			exitCode = p.execCmd.ProcessState.ExitCode()
		}

		p.mu.Lock()
		p.result = &Result{
			ExitCode: exitCode,
			Duration: time.Since(startTime),
			Error:    err,
		}
		p.mu.Unlock()
	}()

	return nil
}

func (p *Process) buildExecCmd(ctx context.Context) *exec.Cmd {
	execCmd := exec.CommandContext(ctx, p.cmd.Cmd, p.cmd.Args...)
	execCmd.Dir = p.cmd.Dir

	if len(p.cmd.Env) > 0 {
		execCmd.Env = append(os.Environ(), p.cmd.Env...)
	}

	execCmd.Stdin = p.cmd.Stdin
	execCmd.Stdout = p.cmd.Stdout
	execCmd.Stderr = p.cmd.Stderr

	setProcessGroup(execCmd)

	return execCmd
}

// Wait blocks until the command exits. It returns an *ExitError for a
// non-zero exit code and the underlying error for anything else.
func (p *Process) Wait() error {
	p.mu.RLock()

	if p.closed {
		p.mu.RUnlock()

		return fmt.Errorf("cannot wait on process %s: already closed", p.cmd)
	}

	// Capture the channel so the wait below happens without the lock held;
	// the waiter goroutine needs it to store the result.
	done := p.done
	p.mu.RUnlock()

	if done == nil {
		return fmt.Errorf("cannot wait on process %s: not started", p.cmd)
	}

	<-done

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.result.Error == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(p.result.Error, &exitErr) {
		return &ExitError{
			Command:  p.cmd,
			ExitCode: exitErr.ExitCode(),
			Cause:    p.result.Error,
		}
	}

	return p.result.Error
}

// Result returns a copy of the exit metadata. It is empty until Wait returns.
func (p *Process) Result() *Result {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.result == nil {
		return &Result{}
	}

	return &Result{
		ExitCode: p.result.ExitCode,
		Duration: p.result.Duration,
		Error:    p.result.Error,
	}
}

// Signal sends sig to the running process.
func (p *Process) Signal(sig os.Signal) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return fmt.Errorf("cannot signal process %s: already closed", p.cmd)
	}

	if p.execCmd == nil || p.execCmd.Process == nil {
		return fmt.Errorf("cannot signal process %s: not started", p.cmd)
	}

	return p.execCmd.Process.Signal(sig)
}

// Close releases the process. A process that is still running is killed along
// with its process group.
func (p *Process) Close() error {
	p.mu.Lock()

	if p.closed {
		p.mu.Unlock()

		return nil
	}

	p.closed = true
	done := p.done
	execCmd := p.execCmd
	p.mu.Unlock()

	// Kill and wait outside the lock: the waiter goroutine takes it to
	// publish the result, and holding it here would deadlock.

	if done == nil {
		return nil
	}

	select {
	case <-done:
	default:
		// The group is killed so that children of a shell script go too.
		if execCmd.Process != nil && execCmd.Process.Pid > 0 {
			_ = killProcessGroup(execCmd.Process.Pid)
		}

		<-done
	}

	return nil
}
