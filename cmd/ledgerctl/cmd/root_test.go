package cmd

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIDArg(t *testing.T) {
	id, err := parseIDArg("entry id", "42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"0", "-3", "abc", ""} {
		_, err := parseIDArg("entry id", raw)
		assert.Error(t, err, raw)
	}
}

func TestCommandsRegistered(t *testing.T) {
	for _, path := range [][]string{
		{"migrate", "up"},
		{"migrate", "down"},
		{"migrate", "version"},
		{"post"},
		{"verify"},
		{"trial-balance"},
		{"token"},
	} {
		found, _, err := rootCmd.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], found.Name())
	}
}

func TestTokenHelpMarksDevelopmentUse(t *testing.T) {
	assert.Contains(t, tokenCmd.Short, "development")
	assert.Contains(t, tokenCmd.Long, "not an authentication service")
}

func TestPostRejectsWrongArgCount(t *testing.T) {
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"post", "7", "--actor", "ops"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	assert.Error(t, rootCmd.Execute())
}
