package fakeexec

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/kballard/go-shellquote"
)

// catCandidates are the only places cat(1) is taken from. PATH is never
// consulted, so a mock named "cat" can not end up inside another mock's script.
var catCandidates = []string{"/bin/cat", "/usr/bin/cat"}

// renderScript returns a script that copies stdoutPath to standard output,
// stderrPath to standard error, and exits with code.
func renderScript(shell, cat, stdoutPath, stderrPath string, code int) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "#!%s\n", shell)
	b.WriteString("set -e\n")
	fmt.Fprintf(&b, "%s\n", shellquote.Join(cat, stdoutPath))
	fmt.Fprintf(&b, "%s >&2\n", shellquote.Join(cat, stderrPath))
	fmt.Fprintf(&b, "exit %d\n", code)

	return []byte(b.String())
}

// locateCat returns an absolute path to cat(1).
func locateCat() (string, error) {
	return firstExecutable(catCandidates)
}

func firstExecutable(candidates []string) (string, error) {
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() && info.Mode()&0o111 != 0 {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("no executable among %s: %w", strings.Join(candidates, ", "), fs.ErrNotExist)
}
