package fakeexec

// TB is the subset of testing.TB that Install needs.
type TB interface {
	Helper()
	Cleanup(f func())
	Fatalf(format string, args ...any)
	Logf(format string, args ...any)
}

// Install creates a Mock with New and releases it when the test and its
// subtests finish. A construction failure stops the test. A release failure
// is logged on t and does not fail the test.
func Install(t TB, name string, stdout, stderr []byte, exitCode int, opts ...Option) *Mock {
	t.Helper()

	m, err := New(name, stdout, stderr, exitCode, opts...)
	if err != nil {
		t.Fatalf("fakeexec: cannot install %q: %v", name, err)

		return nil
	}

	t.Cleanup(func() {
		if err := m.Close(); err != nil {
			t.Logf("fakeexec: releasing %q: %v", name, err)
		}
	})

	return m
}
