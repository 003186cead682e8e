package checkspec

import (
	"encoding"
	"fmt"
)

// Kind is the root family of a check.
type Kind int

const (
	kindInvalid Kind = iota
	KindRequire
	KindEnsure
)

var kindValueMap = map[Kind]string{
	KindRequire: "require",
	KindEnsure:  "ensure",
}

func (k Kind) String() string {
	v, ok := kindValueMap[k]
	if !ok {
		return fmt.Sprintf("invalid(%d)", k)
	}

	return v
}

var _ encoding.TextUnmarshaler = (*Kind)(nil)

func (k *Kind) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for key, v := range kindValueMap {
		if v == text {
			*k = key
			return nil
		}
	}

	return fmt.Errorf("unknown check kind %q", text)
}

func (k Kind) allows(d Domain) bool {
	switch k {
	case KindRequire:
		switch d {
		case DomainMemory, DomainFilesystem, DomainNetwork, DomainProcess, DomainMath, DomainStream:
			return true
		}
	case KindEnsure:
		switch d {
		case DomainValidity, DomainMath, DomainState:
			return true
		}
	}

	return false
}

// Domain groups checks by the subsystem they guard.
type Domain int

const (
	domainInvalid Domain = iota
	DomainMemory
	DomainFilesystem
	DomainNetwork
	DomainProcess
	DomainMath
	DomainStream
	DomainValidity
	DomainState
)

var domainValueMap = map[Domain]string{
	DomainMemory:     "memory",
	DomainFilesystem: "filesystem",
	DomainNetwork:    "network",
	DomainProcess:    "process",
	DomainMath:       "math",
	DomainStream:     "stream",
	DomainValidity:   "validity",
	DomainState:      "state",
}

func (d Domain) String() string {
	v, ok := domainValueMap[d]
	if !ok {
		return fmt.Sprintf("invalid(%d)", d)
	}

	return v
}

var _ encoding.TextUnmarshaler = (*Domain)(nil)

func (d *Domain) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range domainValueMap {
		if v == text {
			*d = k
			return nil
		}
	}

	return fmt.Errorf("unknown check domain %q", text)
}

// Form is the shape of a check's signature.
type Form int

const (
	formDefault Form = iota

	// FormBool takes a precomputed predicate: (ok bool, cond, msg string).
	FormBool

	// FormRange takes an ordered value and its closed bounds: (v, lo, hi T, cond, msg string).
	FormRange
)

var formValueMap = map[Form]string{
	FormBool:  "bool",
	FormRange: "range",
}

func (f Form) String() string {
	v, ok := formValueMap[f]
	if !ok {
		return fmt.Sprintf("invalid(%d)", f)
	}

	return v
}

var _ encoding.TextUnmarshaler = (*Form)(nil)

func (f *Form) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range formValueMap {
		if v == text {
			*f = k
			return nil
		}
	}

	return fmt.Errorf("unknown check form %q", text)
}
