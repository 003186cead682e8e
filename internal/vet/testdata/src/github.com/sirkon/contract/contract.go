package contract

import "cmp"

const Enabled = true

type Fault struct{}

func Require(ok bool, cond, msg string) {}

func RequireFault(f *Fault, ok bool, cond, msg string) {}

func Ensure(ok bool, cond, msg string) {}

func Invariant(ok bool, cond, msg string) {}

func EnsureInRange[T cmp.Ordered](v, lo, hi T, cond, msg string) {}

func AddOverflows(a, b int) bool { return false }
