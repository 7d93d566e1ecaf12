//go:build !windows

package fakeexec_test

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/ruffel/fakeexec"
	"github.com/ruffel/fakeexec/runner"
)

func ExampleNew() {
	m, err := fakeexec.New("mock_temp", []byte("Temperature: 30 Celsius\n"), nil, 0)
	if err != nil {
		panic(err)
	}

	defer func() { _ = m.Close() }()

	out, err := exec.Command("mock_temp").Output()
	if err != nil {
		panic(err)
	}

	fmt.Printf("%s", out)
	// Output: Temperature: 30 Celsius
}

func ExampleNew_exitCode() {
	m, err := fakeexec.New("mock_git", []byte("partial\n"), []byte("fatal: not a git repository\n"), 128)
	if err != nil {
		panic(err)
	}

	defer func() { _ = m.Close() }()

	res, err := runner.New().Run(context.Background(), runner.NewCommand("mock_git", "status"))

	var exitErr *runner.ExitError
	if errors.As(err, &exitErr) {
		fmt.Printf("exit %d: %s", exitErr.ExitCode, exitErr.Stderr)
	}

	fmt.Printf("stdout: %s", res.Stdout)
	// Output:
	// exit 128: fatal: not a git repository
	// stdout: partial
}

func ExampleMock_Close() {
	m, err := fakeexec.New("mock_gone", nil, nil, 0)
	if err != nil {
		panic(err)
	}

	_ = m.Close()
	_ = m.Close() // second release is a no-op

	_, err = exec.LookPath("mock_gone")
	fmt.Println(errors.Is(err, exec.ErrNotFound))
	// Output: true
}
