//go:build windows

package runner

import (
	"os/exec"
	"strconv"
)

// killProcessGroup kills the process tree rooted at pid.
func killProcessGroup(pid int) error {
	return exec.Command("taskkill", "/T", "/F", "/PID", strconv.Itoa(pid)).Run()
}

func setProcessGroup(_ *exec.Cmd) {}

func isTextBusy(_ error) bool {
	return false
}
