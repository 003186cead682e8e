package errcode

import (
	"fmt"
	"strings"
)

// Code is a standardized fault code. Values follow the errno numbering.
type Code int

// Success and the Version 7 Unix layer.
const (
	Success Code = 0

	EPERM   Code = 1  // Operation not permitted
	ENOENT  Code = 2  // No such file or directory
	ESRCH   Code = 3  // No such process
	EINTR   Code = 4  // Interrupted system call
	EIO     Code = 5  // Input/output error
	ENXIO   Code = 6  // No such device or address
	E2BIG   Code = 7  // Argument list too long
	ENOEXEC Code = 8  // Executable file format error
	EBADF   Code = 9  // Bad file descriptor
	ECHILD  Code = 10 // No child processes
	EAGAIN  Code = 11 // Resource unavailable, try again
	ENOMEM  Code = 12 // Out of memory
	EACCES  Code = 13 // Permission denied
	EFAULT  Code = 14 // Bad address
	EBUSY   Code = 16 // Device or resource busy
	EEXIST  Code = 17 // File exists
	EXDEV   Code = 18 // Cross-device link
	ENODEV  Code = 19 // No such device
	ENOTDIR Code = 20 // Not a directory
	EISDIR  Code = 21 // Is a directory
	EINVAL  Code = 22 // Invalid argument
	ENFILE  Code = 23 // Too many files open in system
	EMFILE  Code = 24 // Too many open files
	ENOTTY  Code = 25 // Inappropriate I/O control operation
	ETXTBSY Code = 26 // Text file busy
	EFBIG   Code = 27 // File too large
	EPIPE   Code = 32 // Broken pipe
	EDOM    Code = 33 // Numerical argument out of domain
	ERANGE  Code = 34 // Result too large

	EDEADLK      Code = 35 // Resource deadlock would occur
	ENAMETOOLONG Code = 36 // File name too long
	ENOTEMPTY    Code = 39 // Directory not empty
	ELOOP        Code = 40 // Too many levels of symbolic links
	EROFS        Code = 30 // Read-only file system
	EMLINK       Code = 31 // Too many links
	EIDRM        Code = 43 // Identifier removed

	// EWOULDBLOCK is an alias of EAGAIN.
	EWOULDBLOCK = EAGAIN
)

// Structural extensions: IPC, real-time, filesystem limits.
const (
	ETIME     Code = 62 // Timer expired
	ENOLINK   Code = 67 // Link has been severed
	EPROTO    Code = 71 // Protocol error
	EOVERFLOW Code = 75 // Value too large to be stored in data type
	ENOLCK    Code = 77 // No locks available
	EILSEQ    Code = 84 // Illegal byte sequence
)

// Networking era.
const (
	EMSGSIZE        Code = 90  // Message too long
	EPROTOTYPE      Code = 91  // Protocol wrong type for socket
	EPROTONOSUPPORT Code = 93  // Protocol not supported
	ENOTSUP         Code = 95  // Operation not supported
	ENETDOWN        Code = 100 // Network is down
	ENETUNREACH     Code = 101 // Network is unreachable
	ETIMEDOUT       Code = 110 // Connection timed out
	EHOSTUNREACH    Code = 113 // No route to host
	EALREADY        Code = 114 // Connection already in progress
	EINPROGRESS     Code = 115 // Operation in progress
	ESTALE          Code = 116 // Stale file handle

	// EOPNOTSUPP is an alias of ENOTSUP.
	EOPNOTSUPP = ENOTSUP
)

// Modern POSIX: thread cancellation and robust mutex recovery.
const (
	ECANCELED       Code = 125 // Operation canceled
	EOWNERDEAD      Code = 130 // Previous owner died
	ENOTRECOVERABLE Code = 131 // State not recoverable
)

// Unspecified marks violations no standardized code can express. It is not a catalog
// entry.
const Unspecified Code = -1

const (
	maxCode = ENOTRECOVERABLE

	unknownDescription = "Unknown error"
)

// Era is the historical layer a code was introduced in.
type Era int

const (
	eraInvalid Era = iota
	EraCoreUnix
	EraStructural
	EraNetworking
	EraModern
)

var eraValueMap = map[Era]string{
	EraCoreUnix:   "core-unix",
	EraStructural: "structural",
	EraNetworking: "networking",
	EraModern:     "modern",
}

func (e Era) String() string {
	v, ok := eraValueMap[e]
	if !ok {
		return fmt.Sprintf("invalid(%d)", e)
	}

	return v
}

type entry struct {
	code    Code
	name    string
	aliases []string
	era     Era
}

// entries is the catalog in declaration order. messageBlob segments follow the same
// order.
var entries = [...]entry{
	{Success, "SUCCESS", nil, EraCoreUnix},
	{EPERM, "EPERM", nil, EraCoreUnix},
	{ENOENT, "ENOENT", nil, EraCoreUnix},
	{ESRCH, "ESRCH", nil, EraCoreUnix},
	{EINTR, "EINTR", nil, EraCoreUnix},
	{EIO, "EIO", nil, EraCoreUnix},
	{ENXIO, "ENXIO", nil, EraCoreUnix},
	{E2BIG, "E2BIG", nil, EraCoreUnix},
	{ENOEXEC, "ENOEXEC", nil, EraCoreUnix},
	{EBADF, "EBADF", nil, EraCoreUnix},
	{ECHILD, "ECHILD", nil, EraCoreUnix},
	{EAGAIN, "EAGAIN", []string{"EWOULDBLOCK"}, EraCoreUnix},
	{ENOMEM, "ENOMEM", nil, EraCoreUnix},
	{EACCES, "EACCES", nil, EraCoreUnix},
	{EFAULT, "EFAULT", nil, EraCoreUnix},
	{EBUSY, "EBUSY", nil, EraCoreUnix},
	{EEXIST, "EEXIST", nil, EraCoreUnix},
	{EXDEV, "EXDEV", nil, EraCoreUnix},
	{ENODEV, "ENODEV", nil, EraCoreUnix},
	{ENOTDIR, "ENOTDIR", nil, EraCoreUnix},
	{EISDIR, "EISDIR", nil, EraCoreUnix},
	{EINVAL, "EINVAL", nil, EraCoreUnix},
	{ENFILE, "ENFILE", nil, EraCoreUnix},
	{EMFILE, "EMFILE", nil, EraCoreUnix},
	{ENOTTY, "ENOTTY", nil, EraCoreUnix},
	{ETXTBSY, "ETXTBSY", nil, EraCoreUnix},
	{EFBIG, "EFBIG", nil, EraCoreUnix},
	{EPIPE, "EPIPE", nil, EraCoreUnix},
	{EDOM, "EDOM", nil, EraCoreUnix},
	{ERANGE, "ERANGE", nil, EraCoreUnix},
	{EDEADLK, "EDEADLK", nil, EraCoreUnix},
	{ENAMETOOLONG, "ENAMETOOLONG", nil, EraCoreUnix},
	{ENOTEMPTY, "ENOTEMPTY", nil, EraCoreUnix},
	{ELOOP, "ELOOP", nil, EraCoreUnix},
	{EROFS, "EROFS", nil, EraCoreUnix},
	{EMLINK, "EMLINK", nil, EraCoreUnix},
	{EIDRM, "EIDRM", nil, EraCoreUnix},

	{ETIME, "ETIME", nil, EraStructural},
	{ENOLINK, "ENOLINK", nil, EraStructural},
	{EPROTO, "EPROTO", nil, EraStructural},
	{EOVERFLOW, "EOVERFLOW", nil, EraStructural},
	{ENOLCK, "ENOLCK", nil, EraStructural},
	{EILSEQ, "EILSEQ", nil, EraStructural},

	{EMSGSIZE, "EMSGSIZE", nil, EraNetworking},
	{EPROTOTYPE, "EPROTOTYPE", nil, EraNetworking},
	{EPROTONOSUPPORT, "EPROTONOSUPPORT", nil, EraNetworking},
	{ENOTSUP, "ENOTSUP", []string{"EOPNOTSUPP"}, EraNetworking},
	{ENETDOWN, "ENETDOWN", nil, EraNetworking},
	{ENETUNREACH, "ENETUNREACH", nil, EraNetworking},
	{ETIMEDOUT, "ETIMEDOUT", nil, EraNetworking},
	{EHOSTUNREACH, "EHOSTUNREACH", nil, EraNetworking},
	{EALREADY, "EALREADY", nil, EraNetworking},
	{EINPROGRESS, "EINPROGRESS", nil, EraNetworking},
	{ESTALE, "ESTALE", nil, EraNetworking},

	{ECANCELED, "ECANCELED", nil, EraModern},
	{EOWNERDEAD, "EOWNERDEAD", nil, EraModern},
	{ENOTRECOVERABLE, "ENOTRECOVERABLE", nil, EraModern},
}

// The offset table must have exactly one slot per entry.
var (
	_ [len(entries) - len(messageOffsets)]struct{}
	_ [len(messageOffsets) - len(entries)]struct{}
)

// index maps a code value to its entry position plus one. Zero means "not registered".
var index = func() (idx [maxCode + 1]uint8) {
	for i, e := range entries {
		if idx[e.code] != 0 {
			panic(fmt.Sprintf("errcode: value %d declared twice, use an alias instead", e.code))
		}
		idx[e.code] = uint8(i + 1)
	}
	return idx
}()

func slot(c Code) (int, bool) {
	if c < 0 || c > maxCode {
		return 0, false
	}
	i := index[c]
	if i == 0 {
		return 0, false
	}
	return int(i) - 1, true
}

// segment returns the description of the i-th entry. It stops at the segment's NUL
// terminator and returns a substring of the blob.
func segment(i int) string {
	s := messageBlob[messageOffsets[i]:]
	if end := strings.IndexByte(s, 0); end >= 0 {
		return s[:end]
	}
	return s
}

// Lookup returns the description of the given code. Unregistered values get a fixed
// "Unknown error" description. It never allocates.
func Lookup(c Code) string {
	i, ok := slot(c)
	if !ok {
		return unknownDescription
	}

	return segment(i)
}

// Registered reports whether the code has a catalog entry.
func (c Code) Registered() bool {
	_, ok := slot(c)
	return ok
}

// Description is the same as Lookup(c).
func (c Code) Description() string {
	return Lookup(c)
}

// Error makes Code usable as an error value.
func (c Code) Error() string {
	return Lookup(c)
}

// String returns the canonical name of the code. For aliased values this is the
// name the entry was declared with, i.e. EAGAIN for EWOULDBLOCK.
func (c Code) String() string {
	if c == Unspecified {
		return "UNSPECIFIED"
	}
	i, ok := slot(c)
	if !ok {
		return fmt.Sprintf("errcode-unknown(%d)", int(c))
	}

	return entries[i].name
}

// Names returns the canonical name followed by the aliases of the code.
func (c Code) Names() []string {
	i, ok := slot(c)
	if !ok {
		return nil
	}

	e := entries[i]
	res := make([]string, 0, 1+len(e.aliases))
	res = append(res, e.name)
	return append(res, e.aliases...)
}

// Era returns the historical layer of the code.
func (c Code) Era() Era {
	i, ok := slot(c)
	if !ok {
		return eraInvalid
	}

	return entries[i].era
}

// ByName resolves a canonical or alias name, like "EWOULDBLOCK", to its code.
func ByName(name string) (Code, bool) {
	for _, e := range entries {
		if e.name == name {
			return e.code, true
		}
		for _, a := range e.aliases {
			if a == name {
				return e.code, true
			}
		}
	}

	return 0, false
}

// Entry is a public view of a catalog entry.
type Entry struct {
	Code        Code
	Name        string
	Aliases     []string
	Era         Era
	Description string
}

// Entries returns the catalog in declaration order.
func Entries() []Entry {
	res := make([]Entry, len(entries))
	for i, e := range entries {
		res[i] = Entry{
			Code:        e.code,
			Name:        e.name,
			Aliases:     append([]string(nil), e.aliases...),
			Era:         e.era,
			Description: segment(i),
		}
	}

	return res
}

// Blob returns the packed description blob.
func Blob() string {
	return messageBlob
}

// Offsets returns a copy of the offset table.
func Offsets() []uint16 {
	return append([]uint16(nil), messageOffsets[:]...)
}
