package contract

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
	"testing"

	"github.com/sirkon/contract/errcode"
)

func TestFaultObserve(t *testing.T) {
	tests := []struct {
		name string
		err  error
		ok   bool
		want errcode.Code
	}{
		{"nil", nil, false, errcode.Success},
		{"plain error", errors.New("boom"), false, errcode.Success},
		{"errno", syscall.EACCES, true, errcode.EACCES},
		{"wrapped errno", &fs.PathError{Op: "open", Path: "x", Err: syscall.ENOTDIR}, true, errcode.ENOTDIR},
		{"catalog code", fmt.Errorf("lock: %w", errcode.EDEADLK), true, errcode.EDEADLK},
		{"zero errno", syscall.Errno(0), false, errcode.Success},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Fault
			if got := f.Observe(tt.err); got != tt.ok {
				t.Fatalf("Observe() = %v, want %v", got, tt.ok)
			}
			if f.Code() != tt.want {
				t.Fatalf("Code() = %s, want %s", f.Code(), tt.want)
			}
		})
	}
}

func TestFaultReported(t *testing.T) {
	var f Fault
	if got := f.reported(); got != errcode.EINVAL {
		t.Fatalf("empty fault must report EINVAL, got %s", got)
	}

	f.Set(errcode.ETIMEDOUT)
	if got := f.reported(); got != errcode.ETIMEDOUT {
		t.Fatalf("got %s", got)
	}

	f.Observe(errors.New("not a fault"))
	if got := f.Code(); got != errcode.ETIMEDOUT {
		t.Fatalf("unrelated error must keep the fault, got %s", got)
	}

	f.Reset()
	if got := f.Code(); got != errcode.Success {
		t.Fatalf("reset fault must be empty, got %s", got)
	}

	var nilFault *Fault
	if got := nilFault.reported(); got != errcode.EINVAL {
		t.Fatalf("nil fault must report EINVAL, got %s", got)
	}
}
