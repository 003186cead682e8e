package contract

import (
	"strconv"
	"strings"
	"time"

	"github.com/sirkon/contract/errcode"
)

// Violation is a failed check, materialized on the stack of the failing goroutine and
// consumed once by a Reporter.
type Violation struct {
	Time time.Time
	File string // basename of the source file
	Line int
	Cond string // literal text of the predicate
	Code errcode.Code
	Desc string // resolved description of Code
	Msg  string
}

// String renders the violation as the reporter would, including the trailing newline.
// Unlike the reporter it allocates.
func (v *Violation) String() string {
	var l line
	l.record(v)
	return string(l.bytes())
}

// Basename strips everything up to the last slash or backslash of a path.
func Basename(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}

	return path
}

const (
	maxLine    = 2048
	timeLayout = "2006-01-02 15:04:05"
)

// line is a fixed size output buffer. Writes past the end are truncated, one byte is
// always kept for the terminating newline.
type line struct {
	n int
	b [maxLine]byte
}

func (l *line) str(s string) {
	l.n += copy(l.b[l.n:maxLine-1], s)
}

func (l *line) raw(p []byte) {
	l.n += copy(l.b[l.n:maxLine-1], p)
}

func (l *line) char(c byte) {
	if l.n < maxLine-1 {
		l.b[l.n] = c
		l.n++
	}
}

func (l *line) int(v int64) {
	var tmp [20]byte
	l.raw(strconv.AppendInt(tmp[:0], v, 10))
}

func (l *line) time(t time.Time) {
	var tmp [32]byte
	l.raw(t.AppendFormat(tmp[:0], timeLayout))
}

// record writes
//
//	[<YYYY-MM-DD HH:MM:SS>] <basename>:<line>|<cond>|<code>(<description>)|<msg>\n
func (l *line) record(v *Violation) {
	l.char('[')
	l.time(v.Time)
	l.str("] ")
	l.str(v.File)
	l.char(':')
	l.int(int64(v.Line))
	l.char('|')
	l.str(v.Cond)
	l.char('|')
	l.int(int64(v.Code))
	l.char('(')
	l.str(v.Desc)
	l.str(")|")
	l.str(v.Msg)
	l.b[l.n] = '\n'
	l.n++
}

func (l *line) bytes() []byte {
	return l.b[:l.n]
}
