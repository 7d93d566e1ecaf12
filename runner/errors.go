package runner

import (
	"errors"
	"fmt"
)

// ErrRunnerClosed is returned by a Runner after Close.
var ErrRunnerClosed = errors.New("runner is closed")

// ExitError is a command that started and exited non-zero. Stderr holds what
// the command wrote to standard error when it was run through Run.
type ExitError struct {
	Command  *Command
	ExitCode int
	Stderr   []byte
	Cause    error
}

func (e *ExitError) Error() string {
	if e.Command == nil {
		return fmt.Sprintf("exit status %d", e.ExitCode)
	}

	return fmt.Sprintf("%s: exit status %d", e.Command, e.ExitCode)
}

func (e *ExitError) Unwrap() error {
	return e.Cause
}

// TransportError is a command that never started: the name did not resolve,
// the file was not executable, or its interpreter was missing.
type TransportError struct {
	Command *Command
	Err     error
}

func (e *TransportError) Error() string {
	if e.Command == nil {
		return fmt.Sprintf("cannot start: %v", e.Err)
	}

	return fmt.Sprintf("cannot start %s: %v", e.Command, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
