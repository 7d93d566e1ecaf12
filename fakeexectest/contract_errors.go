package fakeexectest

import (
	"os"

	"github.com/ruffel/fakeexec"
	"github.com/ruffel/fakeexec/searchpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorContracts() []TestCase {
	return []TestCase{
		{
			Category:    CategoryErrors,
			Name:        "unset-path-no-residue",
			Description: "With PATH unset construction fails and leaves nothing on disk",
			Run: func(t T, opts []fakeexec.Option) {
				tempDir := t.TempDir()

				t.Setenv("PATH", "")
				require.NoError(t, os.Unsetenv("PATH"))

				all := append(append([]fakeexec.Option{}, opts...), fakeexec.WithTempDir(tempDir))

				m, err := fakeexec.New(contractName("unset"), []byte("out"), []byte("err"), 0, all...)
				require.Error(t, err)
				assert.Nil(t, m)

				var envErr *fakeexec.EnvironmentError
				require.ErrorAs(t, err, &envErr)
				assert.Equal(t, "PATH", envErr.Key)
				require.ErrorIs(t, err, searchpath.ErrUnset)

				assert.Empty(t, dirEntries(t, tempDir))

				_, ok := os.LookupEnv("PATH")
				assert.False(t, ok)
			},
		},
		{
			Category:    CategoryErrors,
			Name:        "exit-code-out-of-range",
			Description: "Exit codes outside 0-255 are rejected before anything is created",
			Run: func(t T, opts []fakeexec.Option) {
				tempDir := t.TempDir()
				before := os.Getenv("PATH")

				all := append(append([]fakeexec.Option{}, opts...), fakeexec.WithTempDir(tempDir))

				for _, code := range []int{-1, 256, 1 << 20} {
					m, err := fakeexec.New(contractName("range"), nil, nil, code, all...)
					require.ErrorIs(t, err, fakeexec.ErrExitCodeOutOfRange)
					assert.Nil(t, m)
				}

				assert.Empty(t, dirEntries(t, tempDir))
				assert.Equal(t, before, os.Getenv("PATH"))
			},
		},
		{
			Category:    CategoryErrors,
			Name:        "invalid-name",
			Description: "Names that are empty or contain a separator are rejected",
			Run: func(t T, opts []fakeexec.Option) {
				tempDir := t.TempDir()

				all := append(append([]fakeexec.Option{}, opts...), fakeexec.WithTempDir(tempDir))

				for _, name := range []string{"", ".", "..", "bin/tool", "../escape", "nul\x00byte"} {
					m, err := fakeexec.New(name, nil, nil, 0, all...)
					require.ErrorIs(t, err, fakeexec.ErrInvalidName, "name %q", name)
					assert.Nil(t, m)
				}

				assert.Empty(t, dirEntries(t, tempDir))
			},
		},
		{
			Category:    CategoryErrors,
			Name:        "missing-temp-dir",
			Description: "An unusable temp directory fails with a resource error and leaves PATH alone",
			Run: func(t T, opts []fakeexec.Option) {
				before := os.Getenv("PATH")
				missing := t.TempDir() + string(os.PathSeparator) + "missing"

				all := append(append([]fakeexec.Option{}, opts...), fakeexec.WithTempDir(missing))

				m, err := fakeexec.New(contractName("missing"), nil, nil, 0, all...)
				assert.Nil(t, m)

				var resErr *fakeexec.ResourceError
				require.ErrorAs(t, err, &resErr)
				assert.Equal(t, before, os.Getenv("PATH"))
			},
		},
	}
}
