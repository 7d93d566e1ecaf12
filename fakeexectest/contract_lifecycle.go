package fakeexectest

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/ruffel/fakeexec"
	"github.com/ruffel/fakeexec/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lifecycleContracts() []TestCase {
	return []TestCase{
		{
			Category:    CategoryLifecycle,
			Name:        "release-removes-files",
			Description: "Release deletes the script, its directory and both staged files",
			Run: func(t T, opts []fakeexec.Option) {
				tempDir := t.TempDir()

				m := install(t, fakeexec.Spec{
					Name:   contractName("files"),
					Stdout: []byte("out"),
					Stderr: []byte("err"),
				}, opts, fakeexec.WithTempDir(tempDir))

				assert.Len(t, dirEntries(t, tempDir), 3)
				assert.FileExists(t, m.Path())

				require.NoError(t, m.Close())

				assert.NoDirExists(t, m.Dir())
				assert.Empty(t, dirEntries(t, tempDir))
			},
		},
		{
			Category:    CategoryLifecycle,
			Name:        "double-release",
			Description: "A second release neither errors nor edits PATH",
			Run: func(t T, opts []fakeexec.Option) {
				before := os.Getenv("PATH")

				m := install(t, fakeexec.Spec{Name: contractName("twice")}, opts)

				require.NoError(t, m.Close())
				assert.Equal(t, before, os.Getenv("PATH"))

				require.NoError(t, m.Close())
				assert.Equal(t, before, os.Getenv("PATH"))
			},
		},
		{
			Category:    CategoryLifecycle,
			Name:        "release-out-of-order",
			Description: "Releasing an older mock first leaves the newer one registered",
			Run: func(t T, opts []fakeexec.Option) {
				before := os.Getenv("PATH")

				older := install(t, fakeexec.Spec{Name: contractName("older")}, opts)
				newer := install(t, fakeexec.Spec{Name: contractName("newer"), Stdout: []byte("still here\n")}, opts)

				require.NoError(t, older.Close())
				assertNotRegistered(t, older.Dir())
				assertReplays(t, newer.Spec())

				require.NoError(t, newer.Close())
				assert.Equal(t, before, os.Getenv("PATH"))
			},
		},
		{
			Category:    CategoryLifecycle,
			Name:        "concurrent-mocks",
			Description: "Mocks created and released from many goroutines leave PATH intact",
			Run: func(t T, opts []fakeexec.Option) {
				const workers = 8

				before := os.Getenv("PATH")
				r := runner.New()

				t.Cleanup(func() { _ = r.Close() })

				var wg sync.WaitGroup

				errs := make(chan error, workers*3)

				for i := range workers {
					wg.Add(1)

					go func() {
						defer wg.Done()

						name := contractName("concurrent", strconv.Itoa(i))
						stdout := []byte(strings.Repeat(strconv.Itoa(i), i+1))

						m, err := fakeexec.New(name, stdout, nil, i, opts...)
						if err != nil {
							errs <- err

							return
						}

						res, err := r.Run(t.Context(), runner.NewCommand(name))
						if res == nil {
							errs <- err
						} else if string(res.Stdout) != string(stdout) || res.ExitCode != i {
							errs <- fmt.Errorf("%s: got stdout %q exit %d", name, res.Stdout, res.ExitCode)
						}

						if err := m.Close(); err != nil {
							errs <- err
						}
					}()
				}

				wg.Wait()
				close(errs)

				for err := range errs {
					assert.NoError(t, err)
				}

				assert.Equal(t, before, os.Getenv("PATH"))
			},
		},
		{
			Category:    CategoryLifecycle,
			Name:        "accessors",
			Description: "A mock reports where it lives",
			Run: func(t T, opts []fakeexec.Option) {
				spec := fakeexec.Spec{Name: contractName("accessors"), Stdout: []byte("x"), ExitCode: 9}
				m := install(t, spec, opts)

				assert.Equal(t, spec, m.Spec())
				assert.Equal(t, spec.Name, m.Name())
				assert.NotEmpty(t, m.ID())
				assert.Equal(t, m.Dir(), filepath.Dir(m.Path()))
			},
		},
	}
}
