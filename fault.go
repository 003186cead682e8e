package contract

import (
	"errors"
	"syscall"

	"github.com/sirkon/contract/errcode"
)

// Fault is the last fault observed from the environment, kept by its owner rather than
// in a process global. Give each goroutine or task its own Fault, the zero value means
// nothing was observed. A Fault must not be shared between goroutines without external
// synchronization.
//
//	var f contract.Fault
//	fd, err := unix.Open(path, unix.O_RDONLY, 0)
//	f.Observe(err)
//	contract.RequireFault(&f, err == nil, "err == nil", "cannot open the journal")
type Fault struct {
	code errcode.Code
}

// Observe records the fault code carried by err, either an errcode.Code or a
// syscall.Errno anywhere in its chain. It reports whether a code was found, f is left
// untouched otherwise. An errno with no catalog counterpart on this platform is recorded
// as errcode.Unspecified.
func (f *Fault) Observe(err error) bool {
	if err == nil {
		return false
	}

	var code errcode.Code
	if errors.As(err, &code) {
		f.code = code
		return true
	}

	var errno syscall.Errno
	if errors.As(err, &errno) && errno != 0 {
		f.code = errcode.FromErrno(errno)
		return true
	}

	return false
}

// Set records the given code as the last fault.
func (f *Fault) Set(code errcode.Code) {
	f.code = code
}

// Code returns the last recorded fault, errcode.Success if none.
func (f *Fault) Code() errcode.Code {
	return f.code
}

// Reset forgets the recorded fault.
func (f *Fault) Reset() {
	f.code = errcode.Success
}

func (f *Fault) reported() errcode.Code {
	if f == nil || f.code == errcode.Success {
		return errcode.EINVAL
	}

	return f.code
}
