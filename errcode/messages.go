package errcode

// messageBlob holds every catalog description as a NUL-terminated segment, in the
// declaration order of entries. Keep the order in sync with entries and regenerate
// offsets_gen.go with `catalogcheck offsets` after any change.
const messageBlob = "" +
	"Success\x00" +
	"Operation not permitted\x00" +
	"No such file or directory\x00" +
	"No such process\x00" +
	"Interrupted system call\x00" +
	"Input/output error\x00" +
	"No such device or address\x00" +
	"Argument list too long\x00" +
	"Executable file format error\x00" +
	"Bad file descriptor\x00" +
	"No child processes\x00" +
	"Resource unavailable, try again\x00" +
	"Out of memory\x00" +
	"Permission denied\x00" +
	"Bad address\x00" +
	"Device or resource busy\x00" +
	"File exists\x00" +
	"Cross-device link\x00" +
	"No such device\x00" +
	"Not a directory\x00" +
	"Is a directory\x00" +
	"Invalid argument\x00" +
	"Too many files open in system\x00" +
	"Too many open files\x00" +
	"Inappropriate I/O control operation\x00" +
	"Text file busy\x00" +
	"File too large\x00" +
	"Broken pipe\x00" +
	"Numerical argument out of domain\x00" +
	"Result too large\x00" +
	"Resource deadlock would occur\x00" +
	"File name too long\x00" +
	"Directory not empty\x00" +
	"Too many levels of symbolic links\x00" +
	"Read-only file system\x00" +
	"Too many links\x00" +
	"Identifier removed\x00" +
	"Timer expired\x00" +
	"Link has been severed\x00" +
	"Protocol error\x00" +
	"Value too large to be stored in data type\x00" +
	"No locks available\x00" +
	"Illegal byte sequence\x00" +
	"Message too long\x00" +
	"Protocol wrong type for socket\x00" +
	"Protocol not supported\x00" +
	"Operation not supported\x00" +
	"Network is down\x00" +
	"Network is unreachable\x00" +
	"Connection timed out\x00" +
	"No route to host\x00" +
	"Connection already in progress\x00" +
	"Operation in progress\x00" +
	"Stale file handle\x00" +
	"Operation canceled\x00" +
	"Previous owner died\x00" +
	"State not recoverable\x00"
