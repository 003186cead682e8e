//go:build unix

package contract

import "golang.org/x/sys/unix"

// writeLine writes p with raw write calls, retrying on EINTR and short writes. Errors
// are dropped: there is nowhere left to report them.
func writeLine(fd int, p []byte) {
	for len(p) > 0 {
		n, err := unix.Write(fd, p)
		if err == unix.EINTR {
			continue
		}
		if err != nil || n <= 0 {
			return
		}
		p = p[n:]
	}
}
