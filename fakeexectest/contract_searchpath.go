package fakeexectest

import (
	"os"
	"os/exec"

	"github.com/ruffel/fakeexec"
	"github.com/ruffel/fakeexec/searchpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchPathContracts() []TestCase {
	return []TestCase{
		{
			Category:    CategorySearchPath,
			Name:        "registered-first",
			Description: "The mock directory is the first PATH entry and resolves the name",
			Run: func(t T, opts []fakeexec.Option) {
				m := install(t, fakeexec.Spec{Name: contractName("first")}, opts)

				entries := pathEntries(t)
				require.NotEmpty(t, entries)
				assert.True(t, searchpath.SamePath(m.Dir(), entries[0]))

				resolved, err := lookPath(t, m.Name())
				require.NoError(t, err)
				assert.True(t, sameFile(t, m.Path(), resolved))
			},
		},
		{
			Category:    CategorySearchPath,
			Name:        "shadows-real-command",
			Description: "A mock shadows an installed program until it is released",
			Run: func(t T, opts []fakeexec.Option) {
				installed, err := lookPath(t, "echo")
				if err != nil {
					t.Skipf("no echo on PATH: %v", err)
				}

				spec := fakeexec.Spec{Name: "echo", Stdout: []byte("mocked\n"), ExitCode: 7}
				m := install(t, spec, opts)

				assertReplays(t, spec, "hello")

				require.NoError(t, m.Close())

				resolved, err := lookPath(t, "echo")
				require.NoError(t, err)
				assert.Equal(t, installed, resolved)

				res := invokeLine(t, "echo hello")
				assert.Equal(t, "hello\n", string(res.Stdout))
			},
		},
		{
			Category:    CategorySearchPath,
			Name:        "most-recent-wins",
			Description: "Of two live mocks with the same name, the newest resolves",
			Run: func(t T, opts []fakeexec.Option) {
				name := contractName("collide")

				older := fakeexec.Spec{Name: name, Stdout: []byte("older\n")}
				newer := fakeexec.Spec{Name: name, Stdout: []byte("newer\n"), ExitCode: 1}

				install(t, older, opts)
				m := install(t, newer, opts)

				assertReplays(t, newer)

				require.NoError(t, m.Close())

				assertReplays(t, older)
			},
		},
		{
			Category:    CategorySearchPath,
			Name:        "release-unregisters",
			Description: "After release the name no longer resolves to the mock",
			Run: func(t T, opts []fakeexec.Option) {
				m := install(t, fakeexec.Spec{Name: contractName("gone")}, opts)

				require.NoError(t, m.Close())

				assertNotRegistered(t, m.Dir())

				_, err := lookPath(t, m.Name())
				require.ErrorIs(t, err, exec.ErrNotFound)
			},
		},
		{
			Category:    CategorySearchPath,
			Name:        "preserves-other-entries",
			Description: "Other PATH entries keep their order across a mock's lifetime",
			Run: func(t T, opts []fakeexec.Option) {
				before := os.Getenv("PATH")

				m := install(t, fakeexec.Spec{Name: contractName("order")}, opts)

				entries := pathEntries(t)
				require.NotEmpty(t, entries)
				assert.Equal(t, before, joinEntries(entries[1:]))

				require.NoError(t, m.Close())
				assert.Equal(t, before, os.Getenv("PATH"))
			},
		},
	}
}

func sameFile(t T, a, b string) bool {
	t.Helper()

	infoA, err := os.Stat(a)
	require.NoError(t, err)

	infoB, err := os.Stat(b)
	require.NoError(t, err)

	return os.SameFile(infoA, infoB)
}
