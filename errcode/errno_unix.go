//go:build (unix && !linux && !darwin) || (linux && (mips || mipsle || mips64 || mips64le))

package errcode

import "syscall"

// Platforms here number errno differently from the catalog. Only codes every one of
// them defines are translated, the table is filled at init because some systems give
// two names the same value.
var unixErrno = func() map[syscall.Errno]Code {
	pairs := []struct {
		errno syscall.Errno
		code  Code
	}{
		{syscall.EPERM, EPERM},
		{syscall.ENOENT, ENOENT},
		{syscall.ESRCH, ESRCH},
		{syscall.EINTR, EINTR},
		{syscall.EIO, EIO},
		{syscall.ENXIO, ENXIO},
		{syscall.E2BIG, E2BIG},
		{syscall.ENOEXEC, ENOEXEC},
		{syscall.EBADF, EBADF},
		{syscall.ECHILD, ECHILD},
		{syscall.EAGAIN, EAGAIN},
		{syscall.ENOMEM, ENOMEM},
		{syscall.EACCES, EACCES},
		{syscall.EFAULT, EFAULT},
		{syscall.EBUSY, EBUSY},
		{syscall.EEXIST, EEXIST},
		{syscall.EXDEV, EXDEV},
		{syscall.ENODEV, ENODEV},
		{syscall.ENOTDIR, ENOTDIR},
		{syscall.EISDIR, EISDIR},
		{syscall.EINVAL, EINVAL},
		{syscall.ENFILE, ENFILE},
		{syscall.EMFILE, EMFILE},
		{syscall.ENOTTY, ENOTTY},
		{syscall.ETXTBSY, ETXTBSY},
		{syscall.EFBIG, EFBIG},
		{syscall.EPIPE, EPIPE},
		{syscall.EDOM, EDOM},
		{syscall.ERANGE, ERANGE},
		{syscall.EDEADLK, EDEADLK},
		{syscall.ENAMETOOLONG, ENAMETOOLONG},
		{syscall.ENOTEMPTY, ENOTEMPTY},
		{syscall.ELOOP, ELOOP},
		{syscall.EROFS, EROFS},
		{syscall.EMLINK, EMLINK},
		{syscall.EMSGSIZE, EMSGSIZE},
		{syscall.EPROTOTYPE, EPROTOTYPE},
		{syscall.EPROTONOSUPPORT, EPROTONOSUPPORT},
		{syscall.EOPNOTSUPP, EOPNOTSUPP},
		{syscall.ENETDOWN, ENETDOWN},
		{syscall.ENETUNREACH, ENETUNREACH},
		{syscall.ETIMEDOUT, ETIMEDOUT},
		{syscall.EHOSTUNREACH, EHOSTUNREACH},
		{syscall.EALREADY, EALREADY},
		{syscall.EINPROGRESS, EINPROGRESS},
	}

	res := make(map[syscall.Errno]Code, len(pairs))
	for _, p := range pairs {
		if _, ok := res[p.errno]; !ok {
			res[p.errno] = p.code
		}
	}
	return res
}()

// FromErrno converts a system errno into the catalog code of the same meaning. Values
// without a translation become Unspecified.
func FromErrno(e syscall.Errno) Code {
	if c, ok := unixErrno[e]; ok {
		return c
	}

	return Unspecified
}
