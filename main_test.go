package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInitThenValidate(t *testing.T) {
	deck := filepath.Join(t.TempDir(), "nested", "deck.toml")

	out, err := execute(t, "init", "--deck", deck)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+deck)

	out, err = execute(t, "validate", "--deck", deck)
	require.NoError(t, err)
	assert.Contains(t, out, "courses (clamp, 7 slides)")
	assert.Contains(t, out, "4 per page, 4 positions")
	assert.Contains(t, out, "breakpoints medium >= 80, wide >= 120\n")
	assert.Contains(t, out, "breakpoints medium >= 80, wide >= 120, extra-wide >= 160")
	assert.Contains(t, out, "extra-wide")
	assert.Contains(t, out, deck+": ok")
}

func TestInitRefusesToOverwrite(t *testing.T) {
	deck := filepath.Join(t.TempDir(), "deck.toml")
	require.NoError(t, os.WriteFile(deck, []byte("version = 1\n"), 0644))

	_, err := execute(t, "init", "--deck", deck)
	assert.ErrorContains(t, err, "already exists")

	_, err = execute(t, "init", "--deck", deck, "--force")
	assert.NoError(t, err)
}

func TestValidateRejectsBadDeck(t *testing.T) {
	deck := filepath.Join(t.TempDir(), "deck.toml")
	bad := `
[[carousels]]
name = "broken"
policy = "bounce"
`
	require.NoError(t, os.WriteFile(deck, []byte(bad), 0644))

	_, err := execute(t, "validate", "--deck", deck)
	assert.Error(t, err)
}
