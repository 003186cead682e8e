package errcode

import (
	"syscall"

	"golang.org/x/sys/unix"
)

var darwinErrno = map[syscall.Errno]Code{
	unix.EPERM:           EPERM,
	unix.ENOENT:          ENOENT,
	unix.ESRCH:           ESRCH,
	unix.EINTR:           EINTR,
	unix.EIO:             EIO,
	unix.ENXIO:           ENXIO,
	unix.E2BIG:           E2BIG,
	unix.ENOEXEC:         ENOEXEC,
	unix.EBADF:           EBADF,
	unix.ECHILD:          ECHILD,
	unix.EAGAIN:          EAGAIN,
	unix.ENOMEM:          ENOMEM,
	unix.EACCES:          EACCES,
	unix.EFAULT:          EFAULT,
	unix.EBUSY:           EBUSY,
	unix.EEXIST:          EEXIST,
	unix.EXDEV:           EXDEV,
	unix.ENODEV:          ENODEV,
	unix.ENOTDIR:         ENOTDIR,
	unix.EISDIR:          EISDIR,
	unix.EINVAL:          EINVAL,
	unix.ENFILE:          ENFILE,
	unix.EMFILE:          EMFILE,
	unix.ENOTTY:          ENOTTY,
	unix.ETXTBSY:         ETXTBSY,
	unix.EFBIG:           EFBIG,
	unix.EPIPE:           EPIPE,
	unix.EDOM:            EDOM,
	unix.ERANGE:          ERANGE,
	unix.EDEADLK:         EDEADLK,
	unix.ENAMETOOLONG:    ENAMETOOLONG,
	unix.ENOTEMPTY:       ENOTEMPTY,
	unix.ELOOP:           ELOOP,
	unix.EROFS:           EROFS,
	unix.EMLINK:          EMLINK,
	unix.EIDRM:           EIDRM,
	unix.ETIME:           ETIME,
	unix.ENOLINK:         ENOLINK,
	unix.EPROTO:          EPROTO,
	unix.EOVERFLOW:       EOVERFLOW,
	unix.ENOLCK:          ENOLCK,
	unix.EILSEQ:          EILSEQ,
	unix.EMSGSIZE:        EMSGSIZE,
	unix.EPROTOTYPE:      EPROTOTYPE,
	unix.EPROTONOSUPPORT: EPROTONOSUPPORT,
	unix.ENOTSUP:         ENOTSUP,
	unix.EOPNOTSUPP:      EOPNOTSUPP,
	unix.ENETDOWN:        ENETDOWN,
	unix.ENETUNREACH:     ENETUNREACH,
	unix.ETIMEDOUT:       ETIMEDOUT,
	unix.EHOSTUNREACH:    EHOSTUNREACH,
	unix.EALREADY:        EALREADY,
	unix.EINPROGRESS:     EINPROGRESS,
	unix.ESTALE:          ESTALE,
	unix.ECANCELED:       ECANCELED,
	unix.EOWNERDEAD:      EOWNERDEAD,
	unix.ENOTRECOVERABLE: ENOTRECOVERABLE,
}

// FromErrno converts a Darwin errno into the catalog code of the same meaning. Values
// without a catalog counterpart become Unspecified: their numbers are BSD numbers and
// would name unrelated entries.
func FromErrno(e syscall.Errno) Code {
	if c, ok := darwinErrno[e]; ok {
		return c
	}

	return Unspecified
}
