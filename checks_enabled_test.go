//go:build !contract_off

package contract

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"os/exec"
	"regexp"
	"runtime"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirkon/contract/errcode"
)

func TestPassingChecksAreSilent(t *testing.T) {
	out, returned := capture(t, func() {
		n := 4
		Require(n > 0, "n > 0", "n must be positive")
		RequireAddress(true, "true", "unused")
		RequireRange(n < 10, "n < 10", "unused")
		Ensure(n%2 == 0, "n%2 == 0", "unused")
		EnsureInRange(n, 0, 100, "0 <= n && n <= 100", "unused")
		EnsureNoOverflow(!AddOverflows(n, 1), "!AddOverflows(n, 1)", "unused")
		Invariant(n != 0, "n != 0", "unused")
		RequireFault(&Fault{}, true, "true", "unused")
	})

	assert.True(t, returned, "passing checks must return")
	assert.Empty(t, out, "passing checks must not write")
}

func TestFailingCheckReportsOneLine(t *testing.T) {
	var line int
	out, returned := capture(t, func() {
		n := 0
		line = nextLine()
		Require(n > 0, "n > 0", "n must be positive")
	})

	require.False(t, returned, "a failing check must never return")
	want := fmt.Sprintf("[2024-03-09 14:05:07] checks_enabled_test.go:%d|n > 0|22(Invalid argument)|n must be positive\n", line)
	require.Equal(t, want, out)
}

func TestRootFamilies(t *testing.T) {
	tests := []struct {
		name  string
		check func(ok bool, cond, msg string)
		want  string
	}{
		{
			name:  "require",
			check: Require,
			want:  "|x|22(Invalid argument)|general precondition failed\n",
		},
		{
			name:  "ensure",
			check: Ensure,
			want:  "|x|-1(Postcondition violated)|general precondition failed\n",
		},
		{
			name:  "invariant",
			check: Invariant,
			want:  "|x|-1(Invariant violated (undefined behavior))|general precondition failed\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, returned := capture(t, func() {
				tt.check(false, "x", "general precondition failed")
			})
			require.False(t, returned)
			require.True(t, strings.HasSuffix(out, tt.want), "got %q", out)
			require.Equal(t, 1, strings.Count(out, "\n"))
		})
	}
}

func TestSpecializedChecks(t *testing.T) {
	tests := []struct {
		name  string
		check func(ok bool, cond, msg string)
		code  errcode.Code
	}{
		{"RequireAddress", RequireAddress, errcode.EFAULT},
		{"RequireMem", RequireMem, errcode.ENOMEM},
		{"RequireFD", RequireFD, errcode.EBADF},
		{"RequireExists", RequireExists, errcode.ENOENT},
		{"RequireWritable", RequireWritable, errcode.EROFS},
		{"RequireNameLength", RequireNameLength, errcode.ENAMETOOLONG},
		{"RequireFreshHandle", RequireFreshHandle, errcode.ESTALE},
		{"RequireNetworkUp", RequireNetworkUp, errcode.ENETDOWN},
		{"RequireNoTimeout", RequireNoTimeout, errcode.ETIMEDOUT},
		{"RequireSocketOp", RequireSocketOp, errcode.EOPNOTSUPP},
		{"RequireProcess", RequireProcess, errcode.ESRCH},
		{"RequireNonBlocking", RequireNonBlocking, errcode.EWOULDBLOCK},
		{"RequireOwnerAlive", RequireOwnerAlive, errcode.EOWNERDEAD},
		{"RequireDomain", RequireDomain, errcode.EDOM},
		{"RequireRange", RequireRange, errcode.ERANGE},
		{"RequireIOSuccess", RequireIOSuccess, errcode.EIO},
		{"RequireValidEncoding", RequireValidEncoding, errcode.EILSEQ},
		{"EnsureAddress", EnsureAddress, errcode.EFAULT},
		{"EnsureValidEncoding", EnsureValidEncoding, errcode.EILSEQ},
		{"EnsureNoOverflow", EnsureNoOverflow, errcode.EOVERFLOW},
		{"EnsureResourceAvailable", EnsureResourceAvailable, errcode.EAGAIN},
		{"EnsureMutexConsistent", EnsureMutexConsistent, errcode.ENOTRECOVERABLE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var line int
			out, returned := capture(t, func() {
				line = nextLine()
				tt.check(false, "ptr != nil", "diagnostic for "+tt.name)
			})

			require.False(t, returned)
			want := fmt.Sprintf(
				"[2024-03-09 14:05:07] checks_enabled_test.go:%d|ptr != nil|%d(%s)|diagnostic for %s\n",
				line, int(tt.code), errcode.Lookup(tt.code), tt.name,
			)
			require.Equal(t, want, out)
		})
	}
}

func TestEnsureInRange(t *testing.T) {
	out, returned := capture(t, func() {
		val := 150
		EnsureInRange(val, 0, 100, "0 <= val && val <= 100", "value out of valid bounds [0..100]")
	})

	require.False(t, returned)
	require.Contains(t, out, "|0 <= val && val <= 100|34(Result too large)|value out of valid bounds [0..100]\n")

	out, returned = capture(t, func() {
		EnsureInRange(0.5, 0.0, 1.0, "0 <= p && p <= 1", "probability")
		EnsureInRange("m", "a", "z", `"a" <= s && s <= "z"`, "letter")
	})
	require.True(t, returned)
	require.Empty(t, out)

	out, returned = capture(t, func() {
		p := math.NaN()
		EnsureInRange(p, 0.0, 1.0, "0 <= p && p <= 1", "probability is not a number")
	})
	require.False(t, returned, "NaN lies in no interval")
	require.Contains(t, out, "|0 <= p && p <= 1|34(Result too large)|probability is not a number\n")
}

func TestRequireFault(t *testing.T) {
	tests := []struct {
		name    string
		observe error
		want    string
	}{
		{
			name:    "nothing observed",
			observe: nil,
			want:    "|22(Invalid argument)|",
		},
		{
			name:    "errno in chain",
			observe: &fs.PathError{Op: "open", Path: "/journal", Err: syscall.ENOENT},
			want:    "|2(No such file or directory)|",
		},
		{
			name:    "catalog code",
			observe: fmt.Errorf("dial: %w", errcode.EHOSTUNREACH),
			want:    "|113(No route to host)|",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Fault
			f.Observe(tt.observe)
			out, returned := capture(t, func() {
				RequireFault(&f, false, "err == nil", "cannot open journal")
			})
			require.False(t, returned)
			require.Contains(t, out, tt.want)
		})
	}
}

func TestConcurrentViolationsReportWholeLines(t *testing.T) {
	const n = 16
	out, _ := capture(t, func() {
		done := make(chan struct{})
		for i := 0; i < n; i++ {
			go func() {
				defer func() { done <- struct{}{} }()
				Invariant(false, "false", "concurrent")
			}()
		}
		for i := 0; i < n; i++ {
			<-done
		}
	})

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, n)
	for _, l := range lines {
		require.True(t, strings.HasSuffix(l, "|false|-1(Invariant violated (undefined behavior))|concurrent"), l)
	}
}

func TestFailurePathDoesNotAllocate(t *testing.T) {
	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	require.NoError(t, err)
	defer devNull.Close()

	var before, after runtime.MemStats
	rep := NewReporter(int(devNull.Fd()), func() time.Time { return fixedTime }, func() {
		runtime.ReadMemStats(&after)
		runtime.Goexit()
	})
	prev := SetReporter(rep)
	defer SetReporter(prev)

	// Warm up lazily initialized runtime state on the Caller path.
	for range 2 {
		done := make(chan struct{})
		go func() {
			defer close(done)
			runtime.ReadMemStats(&before)
			RequireMem(false, "buf != nil", "allocation failed")
		}()
		<-done
	}

	if mallocs := after.Mallocs - before.Mallocs; mallocs != 0 {
		t.Fatalf("failure path allocated %d times", mallocs)
	}
}

const crasherEnv = "CONTRACT_TEST_CRASHER"

func TestViolationTerminatesProcess(t *testing.T) {
	if os.Getenv(crasherEnv) == "1" {
		RequireMem(false, "buf != nil", "allocation failed")
		fmt.Println("unreachable: check returned")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestViolationTerminatesProcess$")
	cmd.Env = append(os.Environ(), crasherEnv+"=1")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "process must terminate abnormally, got %v", err)
	requireAborted(t, exitErr)
	require.NotContains(t, stdout.String(), "unreachable")

	pattern := regexp.MustCompile(
		`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] checks_enabled_test\.go:\d+\|buf != nil\|12\(Out of memory\)\|allocation failed\n$`,
	)
	require.Regexp(t, pattern, stderr.String(), "the report must be the only output")
}
