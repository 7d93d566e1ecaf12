// Package runner executes commands on the local machine by bare name, the way
// code under test usually shells out.
//
// Names are resolved through the live PATH at Start time, so a fake
// executable registered with fakeexec is picked up without any extra wiring.
//
// Usage:
//
//	r := runner.New()
//	res, err := r.Run(ctx, runner.NewCommand("mock_temp"))
//	_ = res.Stdout
package runner
