package vet

import "fmt"

// Rule represents a contractvet rule code (CTR-series).
type Rule int

const (
	ruleInvalid Rule = iota

	CTR001CondTextMismatch
	CTR002CondNotLiteral
	CTR003UnguardedCallInPredicate
)

var ruleNames = map[Rule]string{
	CTR001CondTextMismatch:         "CondTextMismatch",
	CTR002CondNotLiteral:           "CondNotLiteral",
	CTR003UnguardedCallInPredicate: "UnguardedCallInPredicate",
}

// Code returns the canonical code of the rule, like "CTR001".
func (r Rule) Code() string {
	if _, ok := ruleNames[r]; !ok {
		return fmt.Sprintf("rule-unknown(%d)", r)
	}

	return fmt.Sprintf("CTR%03d", int(r))
}

// String returns the canonical code and short name of the rule.
// Example: "CTR001: CondTextMismatch"
func (r Rule) String() string {
	name, ok := ruleNames[r]
	if !ok {
		return fmt.Sprintf("rule-unknown(%d)", r)
	}

	return r.Code() + ": " + name
}

// Description returns the human-readable explanation of the rule.
func (r Rule) Description() string {
	switch r {
	case CTR001CondTextMismatch:
		return "Condition text must spell the predicate expression."
	case CTR002CondNotLiteral:
		return "Condition text must be a string literal."
	case CTR003UnguardedCallInPredicate:
		return "Calls in a predicate are evaluated in disabled builds too, guard them with contract.Enabled."
	default:
		return fmt.Sprintf("rule-unknown(%d)", r)
	}
}

// UnmarshalText accepts either the code or the short name of a rule.
func (r *Rule) UnmarshalText(text []byte) error {
	s := string(text)
	for k, v := range ruleNames {
		if s == v || s == k.Code() {
			*r = k
			return nil
		}
	}

	return fmt.Errorf("unknown rule %q", s)
}

// Rules returns every rule in code order.
func Rules() []Rule {
	return []Rule{
		CTR001CondTextMismatch,
		CTR002CondNotLiteral,
		CTR003UnguardedCallInPredicate,
	}
}
