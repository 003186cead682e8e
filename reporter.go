package contract

import (
	"os"
	"sync/atomic"
	"time"
)

// Clock is the wall-clock source of violation timestamps.
type Clock func() time.Time

// Terminator ends the process. It must not return, Abort is called if it does.
type Terminator func()

// Reporter writes a violation as one line to a file descriptor and terminates the
// process. Reporting never allocates and takes no locks: concurrent violations may
// interleave their lines, the process ends right after the first one anyway.
type Reporter struct {
	fd        int
	clock     Clock
	terminate Terminator
}

// NewReporter creates a reporter writing to the given descriptor. Nil clock means
// time.Now, nil terminate means Abort.
func NewReporter(fd int, clock Clock, terminate Terminator) *Reporter {
	if clock == nil {
		clock = time.Now
	}
	if terminate == nil {
		terminate = Abort
	}

	return &Reporter{
		fd:        fd,
		clock:     clock,
		terminate: terminate,
	}
}

// DefaultReporter writes to the standard error stream in local time and aborts.
func DefaultReporter() *Reporter {
	// Loading the local zone allocates, do it now rather than on the failure path.
	_, _ = time.Now().Zone()

	return NewReporter(int(os.Stderr.Fd()), time.Now, Abort)
}

var active atomic.Pointer[Reporter]

func init() {
	active.Store(DefaultReporter())
}

// SetReporter makes r the reporter of all checks and returns the previous one. Nil
// restores the default reporter. A Reporter not made by NewReporter gets time.Now and
// Abort in place of missing fields; its zero descriptor is 0.
func SetReporter(r *Reporter) *Reporter {
	if r == nil {
		r = DefaultReporter()
	} else if r.clock == nil || r.terminate == nil {
		r = NewReporter(r.fd, r.clock, r.terminate)
	}

	return active.Swap(r)
}

// Report writes v and terminates the process. It never returns.
func (r *Reporter) Report(v *Violation) {
	var l line
	l.record(v)
	writeLine(r.fd, l.bytes())

	if r.terminate != nil {
		r.terminate()
	}
	Abort()
}
