package contract

import (
	"strings"
	"testing"

	"github.com/sirkon/contract/errcode"
)

func TestBasename(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/a/b/c.ext", "c.ext"},
		{`a\b\c.ext`, "c.ext"},
		{`C:\src/mixed\c.ext`, "c.ext"},
		{"c.ext", "c.ext"},
		{"/a/b/", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Basename(tt.path); got != tt.want {
			t.Errorf("Basename(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestViolationFormat(t *testing.T) {
	v := Violation{
		Time: fixedTime,
		File: "journal.go",
		Line: 118,
		Cond: "n > 0",
		Code: errcode.EINVAL,
		Desc: errcode.Lookup(errcode.EINVAL),
		Msg:  "buffer size must be positive",
	}

	const want = "[2024-03-09 14:05:07] journal.go:118|n > 0|22(Invalid argument)|buffer size must be positive\n"
	if got := v.String(); got != want {
		t.Fatalf("unexpected line\n got: %q\nwant: %q", got, want)
	}
}

func TestViolationTruncation(t *testing.T) {
	v := Violation{
		Time: fixedTime,
		File: "big.go",
		Line: 1,
		Cond: "ok",
		Code: errcode.EIO,
		Desc: errcode.Lookup(errcode.EIO),
		Msg:  strings.Repeat("x", 3*maxLine),
	}

	got := v.String()
	if len(got) != maxLine {
		t.Fatalf("expected truncated line of %d bytes, got %d", maxLine, len(got))
	}
	if !strings.HasSuffix(got, "x\n") {
		t.Fatalf("truncated line must still end with a newline, got tail %q", got[len(got)-8:])
	}
	if !strings.HasPrefix(got, "[2024-03-09 14:05:07] big.go:1|ok|5(Input/output error)|xxx") {
		t.Fatalf("unexpected head %q", got[:64])
	}
}

func TestFormattingDoesNotAllocate(t *testing.T) {
	v := Violation{
		Time: fixedTime,
		File: "journal.go",
		Line: 118,
		Cond: "n > 0",
		Code: errcode.ENOMEM,
		Desc: errcode.Lookup(errcode.ENOMEM),
		Msg:  "out of memory while growing the index",
	}

	var sink int
	allocs := testing.AllocsPerRun(100, func() {
		var l line
		l.record(&v)
		sink += len(l.bytes())
	})
	if allocs != 0 {
		t.Fatalf("formatting allocated %v times per run", allocs)
	}
	if sink == 0 {
		t.Fatal("nothing was formatted")
	}
}
