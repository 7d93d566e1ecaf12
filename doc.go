// Package fakeexec fabricates fake executables for tests.
//
// A Mock is a small shell script that replays fixed stdout and stderr bytes
// and exits with a fixed code. Its directory is put at the front of PATH, so
// code under test that runs the command by bare name resolves the Mock ahead
// of any real program with the same name.
//
// # Lifecycle
//
// New creates the script, stages the output files and registers the
// directory. Close undoes all of it exactly once. Install does the same and
// ties Close to the test's Cleanup, so the PATH entry is removed even when the
// test fails or panics.
//
// # Concurrency
//
// PATH is shared by every goroutine in the process. Registration and removal
// go through searchpath, which serializes every edit behind one lock, so
// parallel tests can create and release mocks freely. Tests that set PATH
// directly (t.Setenv) must not run in parallel with tests using mocks.
//
// Usage:
//
//	m := fakeexec.Install(t, "mock_temp", []byte("Temperature: 30 Celsius\n"), nil, 0)
//	out, _ := exec.Command("mock_temp").Output()
//	_ = m
package fakeexec
