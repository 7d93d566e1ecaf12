package fakeexec

import (
	"errors"
	"fmt"
)

var (
	// ErrNotSupported is returned on platforms that cannot run the generated shell script.
	ErrNotSupported = errors.New("fake executables are not supported on this platform")

	// ErrInvalidName indicates a name that is empty, special, or contains a path separator.
	ErrInvalidName = errors.New("invalid executable name")

	// ErrExitCodeOutOfRange indicates an exit code outside 0-255.
	ErrExitCodeOutOfRange = errors.New("exit code out of range 0-255")

	// ErrAlreadyExists indicates that a file already occupies the script path.
	ErrAlreadyExists = errors.New("executable already exists")
)

// ResourceError reports a failure creating or writing an ephemeral file or directory.
type ResourceError struct {
	Op   string
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

// EnvironmentError reports a failure reading or rewriting the search-path variable.
type EnvironmentError struct {
	Op  string
	Key string
	Err error
}

func (e *EnvironmentError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Key, e.Err)
}

func (e *EnvironmentError) Unwrap() error {
	return e.Err
}

// PermissionError reports a failure marking the script executable.
type PermissionError struct {
	Path string
	Err  error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("cannot mark %s executable: %v", e.Path, e.Err)
}

func (e *PermissionError) Unwrap() error {
	return e.Err
}
