package contract

import (
	"runtime"

	"golang.org/x/exp/constraints"

	"github.com/sirkon/contract/errcode"
)

const (
	postconditionDescription = "Postcondition violated"
	invariantDescription     = "Invariant violated (undefined behavior)"
)

// Require checks a precondition: an obligation of the caller. A violation reports
// EINVAL (Invalid argument).
//
// cond must be the literal text of the predicate, contractvet keeps them in sync:
//
//	contract.Require(n > 0, "n > 0", "buffer size must be positive")
func Require(ok bool, cond, msg string) {
	if Enabled && !ok {
		fail(errcode.EINVAL, cond, msg)
	}
}

// RequireFault is Require reporting the last fault recorded into f instead of a fixed
// code. EINVAL is reported when f holds no fault.
func RequireFault(f *Fault, ok bool, cond, msg string) {
	if Enabled && !ok {
		fail(f.reported(), cond, msg)
	}
}

// Ensure checks a postcondition: a promise of the function's own logic. There is no
// standardized code for it, the violation is reported as Unspecified.
func Ensure(ok bool, cond, msg string) {
	if Enabled && !ok {
		failWith(errcode.Unspecified, postconditionDescription, cond, msg)
	}
}

// Invariant checks a truth that must hold across a structure's lifetime or a critical
// section. A violation means the state is corrupted and is reported as Unspecified.
func Invariant(ok bool, cond, msg string) {
	if Enabled && !ok {
		failWith(errcode.Unspecified, invariantDescription, cond, msg)
	}
}

// AddOverflows reports whether a+b wraps around in T. Meant as an EnsureNoOverflow
// predicate.
func AddOverflows[T constraints.Integer](a, b T) bool {
	s := a + b
	return (b > 0 && s < a) || (b < 0 && s > a)
}

// fail is the slow path of every check bound to a catalog code. It must be called
// directly from the exported check so the caller frame is two levels up.
//
//go:noinline
func fail(code errcode.Code, cond, msg string) {
	_, file, line, _ := runtime.Caller(2)
	violate(code, errcode.Lookup(code), file, line, cond, msg)
}

//go:noinline
func failWith(code errcode.Code, desc, cond, msg string) {
	_, file, line, _ := runtime.Caller(2)
	violate(code, desc, file, line, cond, msg)
}

func violate(code errcode.Code, desc, file string, line int, cond, msg string) {
	r := active.Load()
	v := Violation{
		Time: r.clock(),
		File: Basename(file),
		Line: line,
		Cond: cond,
		Code: code,
		Desc: desc,
		Msg:  msg,
	}
	r.Report(&v)
}
