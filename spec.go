package fakeexec

import (
	"fmt"
	"os"
	"strings"
)

// MaxExitCode is the largest exit status a Mock can report.
const MaxExitCode = 255

// Spec describes one fake executable.
type Spec struct {
	Name     string // Command name the mock is resolvable as
	Stdout   []byte // Bytes written to standard output
	Stderr   []byte // Bytes written to standard error
	ExitCode int    // Exit status, 0-255
}

// Validate checks that the spec describes an executable that can be created.
// Exit codes outside 0-255 are rejected, not clamped.
func (s Spec) Validate() error {
	switch {
	case s.Name == "", s.Name == ".", s.Name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, s.Name)
	case strings.ContainsRune(s.Name, '/'), strings.ContainsRune(s.Name, os.PathSeparator):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, s.Name)
	case strings.ContainsRune(s.Name, 0):
		return fmt.Errorf("%w: %q contains a NUL byte", ErrInvalidName, s.Name)
	}

	if s.ExitCode < 0 || s.ExitCode > MaxExitCode {
		return fmt.Errorf("%w: %d", ErrExitCodeOutOfRange, s.ExitCode)
	}

	return nil
}
