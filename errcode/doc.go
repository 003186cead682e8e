// Package errcode defines the canonical catalog of standardized fault codes used by
// contract checks.
//
// The catalog follows the POSIX errno numbering as found on Linux. Codes entered the
// standard in several historical layers, and the numeric space is sparse: there are
// gaps between the layers and inside them. Nothing in this package assumes the values
// are contiguous.
//
// # Eras
//
// Every entry carries the era it belongs to:
//
//	EraCoreUnix     Version 7 Unix, standardized by POSIX.1-1988
//	EraStructural   IPC, real-time and filesystem limit extensions
//	EraNetworking   BSD sockets and TCP/IP integration
//	EraModern       POSIX.1-2001 thread cancellation and robust mutexes
//
// The era is documentation metadata. It never affects lookups.
//
// # Aliases
//
// Some values are known under two names. EWOULDBLOCK is EAGAIN (11) and EOPNOTSUPP is
// ENOTSUP (95). Aliases are declared as constants of the same value and are listed on
// the entry of their canonical name, so a lookup by value gives the same description
// no matter which name produced it.
//
// # Storage
//
// Descriptions live in one packed blob of NUL-terminated segments (messages.go). The
// offset table (offsets_gen.go) is derived from the blob by the catalogcheck tool and
// must never be edited by hand:
//
//	go run ./cmd/catalogcheck offsets --out errcode/offsets_gen.go
//
// Lookup returns substrings of the blob and therefore never allocates.
package errcode
