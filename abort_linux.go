//go:build linux && !mips && !mipsle && !mips64 && !mips64le

package contract

import (
	"os"
	"runtime"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

// abortGrace bounds the wait for SIGABRT delivery before falling back to exit.
const abortGrace = 100 * time.Millisecond

// kernelSigaction is the rt_sigaction argument. The all-zero value is SIG_DFL with no
// flags and an empty mask on every architecture this file builds for.
type kernelSigaction struct {
	handler  uintptr
	flags    uint64
	restorer uintptr
	mask     uint64
}

// Abort terminates the process with SIGABRT. The runtime handler is replaced with the
// default action first, so the kernel ends the process as signaled by SIGABRT without
// goroutine dumps. Unlike a panic it cannot be recovered and deferred calls do not run.
// If the signal is not delivered in time the process exits with status 134.
func Abort() {
	runtime.LockOSThread()

	var act kernelSigaction
	_, _, _ = unix.RawSyscall6(
		unix.SYS_RT_SIGACTION,
		uintptr(unix.SIGABRT),
		uintptr(unsafe.Pointer(&act)),
		0,
		unsafe.Sizeof(act.mask),
		0, 0,
	)
	_ = unix.Tgkill(unix.Getpid(), unix.Gettid(), unix.SIGABRT)

	time.Sleep(abortGrace)
	os.Exit(exitAborted)
}
