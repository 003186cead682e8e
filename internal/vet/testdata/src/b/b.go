package b

import (
	"strings"

	"github.com/sirkon/contract"
)

func disabled(s string) {
	contract.Require(strings.Contains(s, "x"), `strings.Contains(s, "x")`, "CTR003 is disabled")
	contract.Require(s != "", `s == ""`, "CTR001 is still on") // want `CTR001: condition text`
}
