package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	closeLog()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "tetris ")
	assert.Contains(t, out, "tetris_classic")
	assert.Contains(t, out, "Tetris (classic random)")
}

func TestConfigCommandDefaults(t *testing.T) {
	out, err := execute(t, "config")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# source: built-in defaults, difficulty: normal\n"), out)
	assert.Contains(t, out, "base_ms: 600")
	assert.Contains(t, out, "# interval = max(min_ms, base_ms - level * step_ms)")
}

func TestConfigCommandPresetOnDefaults(t *testing.T) {
	out, err := execute(t, "config", "--difficulty", "hard")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# source: built-in defaults, difficulty: hard\n"), out)
	assert.Contains(t, out, "base_ms: 400")
	assert.NotContains(t, out, "# interval")
}

func TestConfigCommandAppliesFileAndPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board:\n  width: 12\n"), 0o600))

	out, err := execute(t, "config", "--config", path, "--difficulty", "easy")
	require.NoError(t, err)
	assert.Contains(t, out, "# source: "+path+", difficulty: easy")
	assert.Contains(t, out, "width: 12")
	assert.Contains(t, out, "base_ms: 1000")
}

func TestGlobalFlagValidation(t *testing.T) {
	_, err := execute(t, "list", "--difficulty", "nightmare")
	assert.Error(t, err)

	_, err = execute(t, "list", "--fps", "0")
	assert.Error(t, err)

	_, err = execute(t, "list", "--log-level", "loud")
	assert.Error(t, err)
}

func TestPlayRejectsUnknownVariant(t *testing.T) {
	_, err := execute(t, "play", "pentris")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown variant")
}

func TestLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.log")
	_, err := execute(t, "list", "--log-file", path, "--log-level", "debug")
	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}
