//go:build linux && !mips && !mipsle && !mips64 && !mips64le

package errcode

import "syscall"

// FromErrno converts a system errno into a catalog code. Linux numbering is the
// catalog numbering.
func FromErrno(e syscall.Errno) Code {
	return Code(e)
}
