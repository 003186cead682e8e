// Package contract provides fail-fast precondition, postcondition and invariant checks
// bound to the standardized fault codes of package errcode.
//
// A check costs nothing but its predicate while the predicate holds. When it fails,
// the check captures the caller position, resolves its bound code and hands a
// Violation to the active Reporter, which writes one line
//
//	[2024-03-09 14:05:07] journal.go:118|n > 0|22(Invalid argument)|buffer size must be positive
//
// and terminates the process. Checks never return after a violation: they are meant
// for programmer errors, not for conditions a program is expected to handle.
//
// # Families
//
//   - Require: precondition, the caller is at fault. Reported with a catalog code.
//     Specializations like RequireAddress (EFAULT) or RequireRange (ERANGE) bind one code
//     each across the memory, filesystem, network, process, math and stream domains.
//   - Ensure: postcondition, the function itself is at fault. Generic Ensure reports
//     errcode.Unspecified, its specializations bind a code.
//   - Invariant: a truth over a structure's lifetime. Always errcode.Unspecified.
//
// The specializations live in checks_gen.go and are generated from a table:
//
//	go run ./cmd/catalogcheck checks --out checks_gen.go
//
// # Condition text
//
// Every check takes the literal text of its predicate next to the predicate itself. Run
// contractvet to keep both in sync:
//
//	go run ./cmd/contractvet ./...
//
// # Build profiles
//
// Checks are enabled by default. Building with -tags contract_off sets Build to
// ModeDisabled, every check becomes a no-op and code guarded by Enabled is dropped.
package contract
