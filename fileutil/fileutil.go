// Package fileutil provides the filesystem primitives behind a fake
// executable: staged temp files that are fully flushed before anything reads
// them, create-only executable files, and a containment check for paths
// derived from caller input.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// StageTemp creates a new file in dir (os.TempDir when empty) named after
// pattern, writes data to it, and syncs it to disk. The returned path is
// readable by any process spawned afterwards. The file is removed if any
// step fails.
func StageTemp(dir, pattern string, data []byte) (string, error) {
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", err
	}

	path := f.Name()

	if err := writeAndClose(f, data); err != nil {
		_ = os.Remove(path)

		return "", err
	}

	return path, nil
}

// CreateExclusive creates path with the given mode and content. It fails with
// an error matching fs.ErrExist if path already exists, and never truncates
// an existing file. A partially written file is removed.
func CreateExclusive(path string, data []byte, mode os.FileMode) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		return err
	}

	if err := writeAndClose(f, data); err != nil {
		_ = os.Remove(path)

		return err
	}

	return nil
}

func writeAndClose(f *os.File, data []byte) error {
	n, err := f.Write(data)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}

	if err == nil {
		err = f.Sync()
	}

	closeErr := f.Close()
	if err != nil {
		return errors.Join(err, closeErr)
	}

	return closeErr
}

// CheckWithin validates that target is root itself or a child of root, using
// local filesystem path conventions. It rejects names such as "../x" that
// would escape root once joined.
func CheckWithin(root, target string) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("illegal file path: cannot resolve root %s: %w", root, err)
	}

	absTarget, err := filepath.Abs(target)
	if err != nil {
		return fmt.Errorf("illegal file path: cannot resolve target %s: %w", target, err)
	}

	if absRoot == absTarget {
		return nil
	}

	if !strings.HasPrefix(absTarget, absRoot+string(os.PathSeparator)) {
		return fmt.Errorf("illegal file path: %s is not within %s", target, root)
	}

	return nil
}
