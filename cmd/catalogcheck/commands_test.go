package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirkon/contract/errcode"
	"github.com/sirkon/contract/internal/catalogcheck"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func TestLookup(t *testing.T) {
	out, err := execute(t, "lookup", "11", "EOPNOTSUPP", "ewouldblock", "15")
	require.NoError(t, err)

	want := strings.Join([]string{
		"11\tEAGAIN|EWOULDBLOCK\tcore-unix\tResource unavailable, try again",
		"95\tENOTSUP|EOPNOTSUPP\tnetworking\tOperation not supported",
		"11\tEAGAIN|EWOULDBLOCK\tcore-unix\tResource unavailable, try again",
		"15\terrcode-unknown(15)\tUnknown error",
		"",
	}, "\n")
	assert.Equal(t, want, out)

	_, err = execute(t, "lookup", "EBOGUS")
	assert.Error(t, err)

	_, err = execute(t, "lookup")
	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	out, err := execute(t, "verify")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("ok: %d entries, 2 aliased values\n", len(errcode.Entries())), out)
}

func TestOffsets(t *testing.T) {
	want, err := catalogcheck.Render(errcode.Entries(), catalogcheck.Segments(errcode.Blob()), catalogcheck.DefaultRenderConfig())
	require.NoError(t, err)

	out, err := execute(t, "offsets")
	require.NoError(t, err)
	assert.Equal(t, string(want), out)

	path := filepath.Join(t.TempDir(), "offsets_gen.go")
	out, err = execute(t, "offsets", "--out", path)
	require.NoError(t, err)
	assert.Empty(t, out)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func TestOffsetsFromBlobFile(t *testing.T) {
	dir := t.TempDir()
	blobPath := filepath.Join(dir, "blob")
	require.NoError(t, os.WriteFile(blobPath, []byte("only\x00two\x00"), 0o644))

	_, err := execute(t, "offsets", "--blob", blobPath)
	require.Error(t, err, "a blob with fewer segments than entries must be rejected")
}

func TestOffsetsConfig(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "table.go")
	cfgPath := filepath.Join(dir, "contract.yaml")
	cfg := fmt.Sprintf("catalog:\n  out: %q\n  table: descOffsets\n", out)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	_, err := execute(t, "--config", cfgPath, "offsets")
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(got), "var descOffsets = [...]uint16{")

	_, err = execute(t, "--config", filepath.Join(dir, "missing.yaml"), "verify")
	assert.Error(t, err)
}

func TestChecks(t *testing.T) {
	out, err := execute(t, "checks")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "// Code generated by catalogcheck checks; DO NOT EDIT.\n"))
	assert.Contains(t, out, "func EnsureInRange[T constraints.Ordered](v, lo, hi T, cond, msg string) {")
}
