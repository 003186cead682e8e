package contract

import (
	"io"
	"os"
	"runtime"
	"testing"
	"time"
)

var fixedTime = time.Date(2024, time.March, 9, 14, 5, 7, 0, time.UTC)

// capture runs check with a reporter writing into a pipe. The terminator ends only the
// goroutine running check, so the test can see whether check returned.
func capture(t *testing.T, check func()) (output string, returned bool) {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("create pipe: %s", err)
	}
	defer r.Close()

	rep := NewReporter(int(w.Fd()), func() time.Time { return fixedTime }, runtime.Goexit)
	prev := SetReporter(rep)
	defer SetReporter(prev)

	done := make(chan struct{})
	go func() {
		defer close(done)
		check()
		returned = true
	}()
	<-done

	if err := w.Close(); err != nil {
		t.Fatalf("close pipe: %s", err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read pipe: %s", err)
	}

	return string(data), returned
}

func nextLine() int {
	_, _, line, _ := runtime.Caller(1)
	return line + 1
}
