//go:build !unix

package errcode

import "syscall"

// FromErrno returns Unspecified: errno values here are not POSIX numbers.
func FromErrno(e syscall.Errno) Code {
	return Unspecified
}
