//go:build !linux || mips || mipsle || mips64 || mips64le

package contract

import (
	"os/exec"
	"testing"
)

func requireAborted(t *testing.T, exitErr *exec.ExitError) {
	t.Helper()

	if code := exitErr.ExitCode(); code != exitAborted {
		t.Fatalf("process must exit with status %d, got %d", exitAborted, code)
	}
}
