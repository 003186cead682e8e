//go:build linux && !mips && !mipsle && !mips64 && !mips64le

package contract

import (
	"os/exec"
	"syscall"
	"testing"
)

func requireAborted(t *testing.T, exitErr *exec.ExitError) {
	t.Helper()

	ws, ok := exitErr.Sys().(syscall.WaitStatus)
	if !ok {
		t.Fatalf("unexpected process state %T", exitErr.Sys())
	}
	if !ws.Signaled() || ws.Signal() != syscall.SIGABRT {
		t.Fatalf("process must be killed by SIGABRT, got %s", exitErr.ProcessState)
	}
}
