package searchpath

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
)

const logTag = "searchpath"

var (
	// ErrUnset indicates the search-path variable is not present in the environment.
	ErrUnset = errors.New("search path variable is not set")

	// ErrUnjoinable indicates an entry cannot be represented in a joined list
	// because it contains the list separator.
	ErrUnjoinable = errors.New("search path entry contains list separator")
)

// mu guards every read-modify-write of every Registry in the process.
var mu sync.Mutex

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Registry edits one list-valued environment variable.
type Registry struct {
	key    string
	env    Env
	logger boshlog.Logger
}

// New creates a Registry. Without options it edits PATH of the running process.
func New(opts ...Option) *Registry {
	cfg := Config{
		key:    DefaultKey,
		env:    OSEnv{},
		logger: boshlog.NewLogger(boshlog.LevelNone),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return &Registry{
		key:    cfg.key,
		env:    cfg.env,
		logger: cfg.logger,
	}
}

// Default returns a shared Registry for PATH that does not log. It serialises
// with every other Registry, so it is safe for reading PATH while mocks are
// being created and released. Mocks build their own Registry so that edits
// are traced through the logger they were given.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New()
	})

	return defaultRegistry
}

// Key returns the name of the variable this Registry edits.
func (r *Registry) Key() string {
	return r.key
}

// Insert places dir at the front of the list, ahead of every existing entry.
func (r *Registry) Insert(dir string) error {
	mu.Lock()
	defer mu.Unlock()

	entries, err := r.read()
	if err != nil {
		return fmt.Errorf("cannot insert %s: %w", dir, err)
	}

	updated := make([]string, 0, len(entries)+1)
	updated = append(updated, dir)
	updated = append(updated, entries...)

	if err := r.write(updated); err != nil {
		return fmt.Errorf("cannot insert %s: %w", dir, err)
	}

	return nil
}

// Remove deletes the first entry that refers to the same directory as dir.
// Entries match when they are equal after cleaning, resolve to the same
// symlink target, or name the same file. A missing entry is not an error.
func (r *Registry) Remove(dir string) error {
	mu.Lock()
	defer mu.Unlock()

	entries, err := r.read()
	if err != nil {
		return fmt.Errorf("cannot remove %s: %w", dir, err)
	}

	idx := -1

	for i, entry := range entries {
		if SamePath(entry, dir) {
			idx = i

			break
		}
	}

	if idx < 0 {
		r.logger.Debug(logTag, "Entry %s not present in %s, nothing to remove", dir, r.key)

		return nil
	}

	updated := make([]string, 0, len(entries)-1)
	updated = append(updated, entries[:idx]...)
	updated = append(updated, entries[idx+1:]...)

	if err := r.write(updated); err != nil {
		return fmt.Errorf("cannot remove %s: %w", dir, err)
	}

	return nil
}

// Entries returns the current list in order.
func (r *Registry) Entries() ([]string, error) {
	mu.Lock()
	defer mu.Unlock()

	return r.read()
}

func (r *Registry) read() ([]string, error) {
	value, ok := r.env.LookupEnv(r.key)
	if !ok {
		return nil, fmt.Errorf("%s: %w", r.key, ErrUnset)
	}

	r.logger.Debug(logTag, "Before: %s=%s", r.key, value)

	return filepath.SplitList(value), nil
}

func (r *Registry) write(entries []string) error {
	sep := string(os.PathListSeparator)

	for _, entry := range entries {
		if strings.Contains(entry, sep) {
			return fmt.Errorf("%q: %w", entry, ErrUnjoinable)
		}
	}

	value := strings.Join(entries, sep)

	if err := r.env.Setenv(r.key, value); err != nil {
		return fmt.Errorf("cannot set %s: %w", r.key, err)
	}

	r.logger.Debug(logTag, "After: %s=%s", r.key, value)

	return nil
}

// SamePath reports whether a and b refer to the same directory.
func SamePath(a, b string) bool {
	if a == "" || b == "" {
		return a == b
	}

	cleanA, cleanB := filepath.Clean(a), filepath.Clean(b)
	if cleanA == cleanB {
		return true
	}

	realA, errA := filepath.EvalSymlinks(cleanA)
	realB, errB := filepath.EvalSymlinks(cleanB)

	if errA == nil && errB == nil && realA == realB {
		return true
	}

	infoA, err := os.Stat(cleanA)
	if err != nil {
		return false
	}

	infoB, err := os.Stat(cleanB)
	if err != nil {
		return false
	}

	return os.SameFile(infoA, infoB)
}
