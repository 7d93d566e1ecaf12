package fakeexec

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"syscall"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	"github.com/google/uuid"
	"github.com/ruffel/fakeexec/fileutil"
	"github.com/ruffel/fakeexec/searchpath"
)

const (
	logTag     = "fakeexec"
	scriptMode = 0o700
)

// Mock is a fake executable registered on the search path.
// Call Close once the mock is no longer needed; later calls are no-ops.
type Mock struct {
	id   string
	spec Spec

	dir        string
	path       string
	stdoutPath string
	stderrPath string

	registry *searchpath.Registry
	logger   boshlog.Logger

	closeOnce sync.Once
}

// New creates a fake executable called name that prints stdout and stderr
// and exits with exitCode, and puts it at the front of the search path.
func New(name string, stdout, stderr []byte, exitCode int, opts ...Option) (*Mock, error) {
	return NewFromSpec(Spec{
		Name:     name,
		Stdout:   stdout,
		Stderr:   stderr,
		ExitCode: exitCode,
	}, opts...)
}

// NewFromSpec is New with the inputs gathered in a Spec.
//
// Construction is all-or-nothing: if any step fails, everything created so
// far (files, directory, search-path entry) is removed before the error is
// returned. Cleanup failures are joined onto the returned error.
func NewFromSpec(spec Spec, opts ...Option) (*Mock, error) {
	if runtime.GOOS == "windows" {
		return nil, ErrNotSupported
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Every Registry shares one lock, so a per-mock Registry only differs
	// from searchpath.Default in where it logs.
	if cfg.registry == nil {
		cfg.registry = searchpath.New(searchpath.WithLogger(cfg.logger))
	}

	m := &Mock{
		id:       uuid.NewString(),
		spec:     spec,
		registry: cfg.registry,
		logger:   cfg.logger,
	}

	var (
		undo      undoStack
		succeeded bool
	)

	// Covers a panic in any step below; after an error return the stack is already empty.
	defer func() {
		if succeeded {
			return
		}

		if err := undo.run(); err != nil {
			m.logger.Warn(logTag, "Unwinding %s (%s) left residue: %s", spec.Name, m.id, err)
		}
	}()

	if err := m.create(cfg, &undo); err != nil {
		if undoErr := undo.run(); undoErr != nil {
			m.logger.Warn(logTag, "Unwinding %s (%s) left residue: %s", spec.Name, m.id, undoErr)

			err = errors.Join(err, undoErr)
		}

		return nil, err
	}

	succeeded = true

	m.logger.Debug(logTag, "Created fake executable %s (%s) at %s", spec.Name, m.id, m.path)

	return m, nil
}

func (m *Mock) create(cfg Config, undo *undoStack) error {
	cat, err := locateCat()
	if err != nil {
		return &ResourceError{Op: "locate", Path: "cat", Err: err}
	}

	dir, err := os.MkdirTemp(cfg.tempDir, "fakeexec-bin-*")
	if err != nil {
		return &ResourceError{Op: "create directory", Path: cfg.tempDir, Err: err}
	}

	undo.push(func() error { return os.RemoveAll(dir) })

	if m.dir, err = filepath.Abs(dir); err != nil {
		return &ResourceError{Op: "resolve directory", Path: dir, Err: err}
	}

	if m.stdoutPath, err = m.stage(cfg.tempDir, "stdout", m.spec.Stdout, undo); err != nil {
		return err
	}

	if m.stderrPath, err = m.stage(cfg.tempDir, "stderr", m.spec.Stderr, undo); err != nil {
		return err
	}

	m.path = filepath.Join(m.dir, m.spec.Name)

	if err := fileutil.CheckWithin(m.dir, m.path); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidName, err)
	}

	body := renderScript(cfg.shell, cat, m.stdoutPath, m.stderrPath, m.spec.ExitCode)
	if err := writeScript(m.path, body); err != nil {
		return err
	}

	if err := m.registry.Insert(m.dir); err != nil {
		return &EnvironmentError{Op: "register", Key: m.registry.Key(), Err: err}
	}

	undo.push(func() error { return m.registry.Remove(m.dir) })

	return nil
}

// stage writes one output stream to its own temp file.
func (m *Mock) stage(tempDir, stream string, data []byte, undo *undoStack) (string, error) {
	path, err := fileutil.StageTemp(tempDir, "fakeexec-"+stream+"-*", data)
	if err != nil {
		return "", &ResourceError{Op: "stage " + stream, Path: tempDir, Err: err}
	}

	undo.push(func() error { return removeFile(path) })

	return path, nil
}

// writeScript creates the script with create-only semantics and makes sure
// the owner can execute it before anything can resolve it.
func writeScript(path string, body []byte) error {
	// A child forked while the write descriptor is open keeps it until exec,
	// and exec of the script fails with ETXTBSY for as long as it does.
	// ForkLock is held exclusively by every fork in the process.
	syscall.ForkLock.RLock()
	err := fileutil.CreateExclusive(path, body, scriptMode)
	syscall.ForkLock.RUnlock()

	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrAlreadyExists, path)
		}

		return &ResourceError{Op: "write script", Path: path, Err: err}
	}

	// The create mode is filtered by umask.
	if err := os.Chmod(path, scriptMode); err != nil {
		return &PermissionError{Path: path, Err: err}
	}

	return nil
}

// ID returns a random identifier used in log lines.
func (m *Mock) ID() string {
	return m.id
}

// Name returns the command name the mock resolves as.
func (m *Mock) Name() string {
	return m.spec.Name
}

// Spec returns the spec the mock was created from.
func (m *Mock) Spec() Spec {
	return m.spec
}

// Dir returns the absolute path of the directory registered on the search path.
func (m *Mock) Dir() string {
	return m.dir
}

// Path returns the absolute path of the script.
func (m *Mock) Path() string {
	return m.path
}

// Close removes the mock's directory from the search path and deletes the
// script, its directory and the staged output files. Every failure is logged;
// the joined error is returned from the first call only. Later calls do
// nothing and return nil.
func (m *Mock) Close() error {
	var err error

	m.closeOnce.Do(func() {
		err = m.release()
	})

	return err
}

func (m *Mock) release() error {
	var errs []error

	if err := m.registry.Remove(m.dir); err != nil {
		errs = append(errs, &EnvironmentError{Op: "unregister", Key: m.registry.Key(), Err: err})
	}

	if err := os.RemoveAll(m.dir); err != nil {
		errs = append(errs, &ResourceError{Op: "remove directory", Path: m.dir, Err: err})
	}

	for _, path := range []string{m.stdoutPath, m.stderrPath} {
		if err := removeFile(path); err != nil {
			errs = append(errs, &ResourceError{Op: "remove file", Path: path, Err: err})
		}
	}

	err := errors.Join(errs...)
	if err != nil {
		m.logger.Warn(logTag, "Releasing %s (%s) failed: %s", m.spec.Name, m.id, err)

		return err
	}

	m.logger.Debug(logTag, "Released fake executable %s (%s)", m.spec.Name, m.id)

	return nil
}

func removeFile(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}

// undoStack runs cleanup steps in reverse order of registration.
type undoStack struct {
	steps []func() error
}

func (u *undoStack) push(step func() error) {
	u.steps = append(u.steps, step)
}

// run executes and discards every pending step, so a second run is a no-op.
func (u *undoStack) run() error {
	var errs []error

	for i := len(u.steps) - 1; i >= 0; i-- {
		if err := u.steps[i](); err != nil {
			errs = append(errs, err)
		}
	}

	u.steps = nil

	return errors.Join(errs...)
}
