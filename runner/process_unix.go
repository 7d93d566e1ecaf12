//go:build !windows

package runner

import (
	"errors"
	"os/exec"
	"syscall"
)

// killProcessGroup kills the process group with the given PID.
func killProcessGroup(pid int) error {
	return syscall.Kill(-pid, syscall.SIGKILL)
}

// setProcessGroup places the command in its own process group.
func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// isTextBusy reports whether a launch failed because the executable was still
// open for writing somewhere, typically inherited by a concurrent fork.
func isTextBusy(err error) bool {
	return errors.Is(err, syscall.ETXTBSY)
}
