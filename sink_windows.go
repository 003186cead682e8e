//go:build windows

package contract

import "syscall"

func writeLine(fd int, p []byte) {
	for len(p) > 0 {
		n, err := syscall.Write(syscall.Handle(fd), p)
		if err != nil || n <= 0 {
			return
		}
		p = p[n:]
	}
}
