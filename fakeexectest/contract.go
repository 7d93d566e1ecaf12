// Package fakeexectest provides a behavioural contract suite for fakeexec.
//
// Every contract builds real mocks, resolves them by bare name through PATH
// and runs them as child processes. Contracts edit the process PATH, so
// Verify must be called from a test that does not call t.Parallel.
package fakeexectest

// AllContracts returns all test cases for the contract test suite.
func AllContracts() []TestCase {
	const initialCapacity = 24

	contracts := make([]TestCase, 0, initialCapacity)

	contracts = append(contracts, outputContracts()...)
	contracts = append(contracts, searchPathContracts()...)
	contracts = append(contracts, lifecycleContracts()...)
	contracts = append(contracts, errorContracts()...)

	return contracts
}
