package fakeexectest

import (
	"bytes"
	"os"
	"strings"

	"github.com/ruffel/fakeexec"
	"github.com/ruffel/fakeexec/runner"
	"github.com/ruffel/fakeexec/searchpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// install creates a mock through fakeexec.Install with the suite options
// followed by extra.
func install(t T, spec fakeexec.Spec, opts []fakeexec.Option, extra ...fakeexec.Option) *fakeexec.Mock {
	t.Helper()

	all := append(append([]fakeexec.Option{}, opts...), extra...)

	return fakeexec.Install(t, spec.Name, spec.Stdout, spec.Stderr, spec.ExitCode, all...)
}

// invoke runs name by bare name, the way code under test would.
func invoke(t T, name string, args ...string) *runner.Result {
	t.Helper()

	return run(t, runner.NewCommand(name, args...))
}

// invokeLine runs a shell-style command line such as `name --flag 'a b'`.
func invokeLine(t T, line string) *runner.Result {
	t.Helper()

	cmd, err := runner.ParseCommand(line)
	require.NoError(t, err)

	return run(t, cmd)
}

func run(t T, cmd *runner.Command) *runner.Result {
	t.Helper()

	r := runner.New()
	t.Cleanup(func() { _ = r.Close() })

	res, err := r.Run(t.Context(), cmd)
	require.NotNil(t, res, "running %s: %v", cmd, err)

	if res.ExitCode == 0 {
		require.NoError(t, err)
	} else {
		var exitErr *runner.ExitError
		require.ErrorAs(t, err, &exitErr)
	}

	return res
}

// assertReplays checks that running spec.Name reproduces spec exactly.
func assertReplays(t T, spec fakeexec.Spec, args ...string) {
	t.Helper()

	assertResult(t, spec, invoke(t, spec.Name, args...))
}

// assertReplaysLine is assertReplays for a command line starting with spec.Name.
func assertReplaysLine(t T, spec fakeexec.Spec, line string) {
	t.Helper()

	assertResult(t, spec, invokeLine(t, line))
}

func assertResult(t T, spec fakeexec.Spec, res *runner.Result) {
	t.Helper()

	assert.Equal(t, len(spec.Stdout), len(res.Stdout), "stdout length")
	assert.True(t, bytes.Equal(spec.Stdout, res.Stdout), "stdout differs")
	assert.Equal(t, len(spec.Stderr), len(res.Stderr), "stderr length")
	assert.True(t, bytes.Equal(spec.Stderr, res.Stderr), "stderr differs")
	assert.Equal(t, spec.ExitCode, res.ExitCode, "exit code")
}

// pathEntries returns the current PATH entries.
func pathEntries(t T) []string {
	t.Helper()

	entries, err := searchpath.Default().Entries()
	require.NoError(t, err)

	return entries
}

// assertNotRegistered checks that dir is no longer on PATH.
func assertNotRegistered(t T, dir string) {
	t.Helper()

	for _, entry := range pathEntries(t) {
		assert.False(t, searchpath.SamePath(entry, dir), "%s still on PATH", dir)
	}
}

// lookPath resolves name through a fresh runner.
func lookPath(t T, name string) (string, error) {
	t.Helper()

	r := runner.New()
	t.Cleanup(func() { _ = r.Close() })

	return r.LookPath(t.Context(), name)
}

// dirEntries lists the names in dir.
func dirEntries(t T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}

	return names
}

// contractName namespaces a command name so it cannot collide with a real program.
func contractName(parts ...string) string {
	return "fakeexec-contract-" + strings.Join(parts, "-")
}

// joinEntries joins PATH entries the way the OS expects.
func joinEntries(entries []string) string {
	return strings.Join(entries, string(os.PathListSeparator))
}
