package a

import (
	"strings"

	"example.com/lib/check"
	"github.com/sirkon/contract"
)

type buffer struct {
	data []byte
	size int
}

func preconditions(n int, s string, p *int, f *contract.Fault) {
	contract.Require(n > 0, "n > 0", "same text")
	contract.Require(n > 0, "n>0", "spacing does not matter")
	contract.Require(n >= 0, "n > 0", "drifted") // want `CTR001: condition text "n > 0" of Require does not match predicate n >= 0`
	contract.RequireFault(f, p != nil, "p != nil", "fault")
	contract.Require(len(s) < n, "len(s) < n", "builtin")
	contract.Require(int64(n) > 0, "int64(n) > 0", "conversion")

	text := "n > 0"
	contract.Require(n > 0, text, "not literal") // want `CTR002: condition text of Require must be a string literal, use "n > 0"`

	contract.Require(strings.HasPrefix(s, "x"), `strings.HasPrefix(s, "x")`, "unguarded") // want `CTR003: predicate of Require calls strings\.HasPrefix`

	if contract.Enabled {
		contract.Require(strings.HasPrefix(s, "x"), `strings.HasPrefix(s, "x")`, "guarded")
	}
}

func postconditions(b *buffer, n int) {
	contract.Ensure(b.size <= len(b.data), "b.size <= len(b.data)", "fits")
	contract.EnsureInRange(n, 0, 100, "0 <= n && n <= 100", "in range")
	contract.EnsureInRange(n, 1, 100, "0 <= n && n <= 100", "wrong bound") // want `CTR001: condition text "0 <= n && n <= 100" of EnsureInRange does not match predicate 1 <= n && n <= 100`

	contract.Invariant(!contract.AddOverflows(n, 1), "!contract.AddOverflows(n, 1)", "overflow") // want `CTR003: predicate of Invariant calls contract\.AddOverflows`

	if contract.Enabled && n > 0 {
		contract.Invariant(!contract.AddOverflows(n, 1), "!contract.AddOverflows(n, 1)", "guarded")
	}
}

func extras(n int) {
	check.Must(n != 0, "n == 0") // want `CTR001: condition text "n == 0" of Must does not match predicate n != 0`
	var c check.Checker
	c.Require(n != 0, "n != 0")
	check.Other(n != 0, "not configured")
}
