package contract

import (
	"encoding"
	"fmt"
)

// Mode selects whether contract checks are compiled into a build profile.
type Mode uint8

const (
	modeInvalid Mode = iota

	// ModeDisabled turns every check into a no-op. Predicates placed under an
	// `if contract.Enabled` guard are not evaluated at all.
	ModeDisabled

	// ModeEnabled evaluates predicates and terminates the process on a violation.
	ModeEnabled
)

// Enabled reports whether checks are compiled in. It is a constant, so guarded code
// is removed by the compiler in disabled builds:
//
//	if contract.Enabled {
//	    contract.Invariant(tree.balanced(), "tree.balanced()", "rebalance left the tree skewed")
//	}
const Enabled = Build == ModeEnabled

var modeValueMap = map[Mode]string{
	ModeDisabled: "disabled",
	ModeEnabled:  "enabled",
}

func (m Mode) String() string {
	v, ok := modeValueMap[m]
	if !ok {
		return fmt.Sprintf("invalid(%d)", m)
	}

	return v
}

var (
	_ encoding.TextMarshaler   = Mode(0)
	_ encoding.TextUnmarshaler = (*Mode)(nil)
)

func (m Mode) MarshalText() ([]byte, error) {
	v, ok := modeValueMap[m]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid Mode(%d)", m)
	}

	return []byte(v), nil
}

// UnmarshalText for setting values with configs, CLI, etc.
func (m *Mode) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range modeValueMap {
		if v == text {
			*m = k
			return nil
		}
	}

	return fmt.Errorf("unknown contract mode %q", text)
}
