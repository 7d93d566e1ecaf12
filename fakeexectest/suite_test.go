//go:build !windows

package fakeexectest_test

import (
	"testing"

	"github.com/cloudfoundry/bosh-utils/logger/loggerfakes"
	"github.com/ruffel/fakeexec"
	"github.com/ruffel/fakeexec/fakeexectest"
	"github.com/stretchr/testify/assert"
)

func TestVerify(t *testing.T) {
	fakeexectest.Verify(t)
}

func TestVerify_WithLogger(t *testing.T) {
	logger := &loggerfakes.FakeLogger{}

	fakeexectest.Verify(t, fakeexec.WithLogger(logger), fakeexec.WithTempDir(t.TempDir()))

	messages := map[string]bool{}

	for i := range logger.DebugCallCount() {
		tag, msg, _ := logger.DebugArgsForCall(i)
		messages[tag+": "+msg] = true
	}

	assert.True(t, messages["fakeexec: Created fake executable %s (%s) at %s"])
	assert.True(t, messages["fakeexec: Released fake executable %s (%s)"])
	assert.True(t, messages["searchpath: Before: %s=%s"])
	assert.Equal(t, 0, logger.WarnCallCount())
}

func TestAllContracts_UniqueIDs(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}

	for _, tc := range fakeexectest.AllContracts() {
		assert.False(t, seen[tc.ID()], "duplicate contract %s", tc.ID())
		assert.NotNil(t, tc.Run, tc.ID())
		assert.NotEmpty(t, tc.Description, tc.ID())

		seen[tc.ID()] = true
	}
}
