package fakeexectest

import (
	"context"
	"fmt"
	"testing"

	"github.com/ruffel/fakeexec"
)

// Standard categories for grouping tests.
const (
	CategoryOutput     = "output"
	CategorySearchPath = "searchpath"
	CategoryLifecycle  = "lifecycle"
	CategoryErrors     = "errors"
)

// T is the subset of *testing.T the contracts use.
type T interface {
	Errorf(format string, args ...any)
	FailNow()
	Fatalf(format string, args ...any)
	Logf(format string, args ...any)
	Skipf(format string, args ...any)
	Helper()
	Cleanup(f func())
	Setenv(key, value string)
	Context() context.Context
	TempDir() string
	Name() string
}

// TestCase defines a single behavioural contract requirement.
type TestCase struct {
	Category    string
	Name        string
	Description string
	Run         func(t T, opts []fakeexec.Option)
}

// ID returns the stable, globally unique contract identifier.
func (tc TestCase) ID() string {
	return fmt.Sprintf("%s/%s", tc.Category, tc.Name)
}

// Verify runs every contract with opts applied to each mock the contracts create.
func Verify(t *testing.T, opts ...fakeexec.Option) {
	t.Helper()

	for _, tc := range AllContracts() {
		t.Run(tc.ID(), func(t *testing.T) {
			tc.Run(t, opts)
		})
	}
}
