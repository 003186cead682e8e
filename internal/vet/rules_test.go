package vet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRules(t *testing.T) {
	tests := []struct {
		rule Rule
		code string
		str  string
	}{
		{CTR001CondTextMismatch, "CTR001", "CTR001: CondTextMismatch"},
		{CTR002CondNotLiteral, "CTR002", "CTR002: CondNotLiteral"},
		{CTR003UnguardedCallInPredicate, "CTR003", "CTR003: UnguardedCallInPredicate"},
	}

	require.Len(t, Rules(), len(tests))
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.rule.Code())
			assert.Equal(t, tt.str, tt.rule.String())
			assert.NotEmpty(t, tt.rule.Description())

			var byCode, byName Rule
			require.NoError(t, byCode.UnmarshalText([]byte(tt.code)))
			require.NoError(t, byName.UnmarshalText([]byte(ruleNames[tt.rule])))
			assert.Equal(t, tt.rule, byCode)
			assert.Equal(t, tt.rule, byName)
		})
	}

	var r Rule
	assert.Error(t, r.UnmarshalText([]byte("CER000")))
	assert.Equal(t, "rule-unknown(42)", Rule(42).String())
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"n>0", "n > 0"},
		{"  a &&b ", "a && b"},
		{"len(s)<cap(s)", "len(s) < cap(s)"},
		{"x >", "x >"},
		{"not   an  expr ) ", "not an expr )"},
	}

	for _, tt := range tests {
		if got := normalize(tt.text); got != tt.want {
			t.Errorf("normalize(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestQuoteCond(t *testing.T) {
	assert.Equal(t, `"n > 0"`, quoteCond("n > 0"))
	assert.Equal(t, "`s != \"\"`", quoteCond(`s != ""`))
}
