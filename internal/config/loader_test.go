package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// isolate points HOME and the working directory at empty temp dirs so only
// the files a test writes are visible to the loader.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home, work = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	isolate(t)

	cfg, err := LoadTetris("")
	require.NoError(t, err)
	require.Equal(t, DefaultTetrisConfig(), cfg)
	require.Empty(t, ResolveTetrisPath(""))
}

func TestLoadTetrisCustomPathKeepsDefaults(t *testing.T) {
	_, work := isolate(t)
	path := filepath.Join(work, "mine.yaml")
	writeFile(t, path, "board:\n  width: 12\ngenerator:\n  policy: uniform\nrotation:\n  wall_kicks: true\n")

	cfg, err := LoadTetris(path)
	require.NoError(t, err)
	require.Equal(t, 12, cfg.Board.Width)
	require.Equal(t, 20, cfg.Board.Height)
	require.Equal(t, "uniform", cfg.Generator.Policy)
	require.True(t, cfg.Rotation.WallKicks)
	require.Equal(t, []int{0, 40, 100, 300, 1200}, cfg.Scoring.LineClear)
}

func TestLoadTetrisCustomPathErrors(t *testing.T) {
	_, work := isolate(t)

	tests := []struct {
		name    string
		content string
		errText string
	}{
		{"malformed yaml", "board: [1, 2", "cannot parse"},
		{"bad policy", "generator:\n  policy: random\n", "generator policy"},
		{"short scoring table", "scoring:\n  line_clear: [0, 40]\n", "line_clear"},
		{"tiny board", "board:\n  width: 2\n", "at least 4x4"},
		{"inverted gravity", "gravity:\n  base_ms: 50\n  min_ms: 100\n", "gravity"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(work, tc.name+".yaml")
			writeFile(t, path, tc.content)

			_, err := LoadTetris(path)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.errText)
		})
	}

	_, err := LoadTetris(filepath.Join(work, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadTetrisSearchOrder(t *testing.T) {
	home, work := isolate(t)
	userPath := filepath.Join(home, ".tetris", "configs", "tetris.yaml")
	localPath := filepath.Join(work, "configs", "tetris.yaml")

	writeFile(t, localPath, "board:\n  height: 24\n")
	cfg, err := LoadTetris("")
	require.NoError(t, err)
	require.Equal(t, 24, cfg.Board.Height)
	require.Equal(t, filepath.Join("configs", "tetris.yaml"), ResolveTetrisPath(""))

	writeFile(t, userPath, "board:\n  height: 30\n")
	cfg, err = LoadTetris("")
	require.NoError(t, err)
	require.Equal(t, 30, cfg.Board.Height)
	require.Equal(t, userPath, ResolveTetrisPath(""))
}

func TestLoadTetrisSkipsBrokenFiles(t *testing.T) {
	_, work := isolate(t)
	writeFile(t, filepath.Join(work, "configs", "tetris.yaml"), "gravity: {min_ms: 0}\n")

	cfg, err := LoadTetris("")
	require.NoError(t, err)
	require.Equal(t, DefaultTetrisConfig(), cfg)
}

func TestMarshalTetris(t *testing.T) {
	data, err := MarshalTetris(DefaultTetrisConfig())
	require.NoError(t, err)
	require.Contains(t, string(data), "policy: bag")
	require.Contains(t, string(data), "wall_kicks: false")
	require.Contains(t, string(data), "lines_per_level: 10")
}

func TestParseDifficulty(t *testing.T) {
	for _, name := range []string{"easy", "normal", "hard", "fixed"} {
		p, err := ParseDifficulty(name)
		require.NoError(t, err)
		require.Equal(t, DifficultyPreset(name), p)
	}

	p, err := ParseDifficulty("")
	require.NoError(t, err)
	require.Equal(t, DifficultyNormal, p)

	_, err = ParseDifficulty("nightmare")
	require.Error(t, err)
}

func TestApplyTetrisPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		expected GravityConfig
	}{
		{DifficultyEasy, GravityConfig{BaseMS: 1000, StepMS: 50, MinMS: 100}},
		{DifficultyNormal, GravityConfig{BaseMS: 600, StepMS: 50, MinMS: 100}},
		{DifficultyHard, GravityConfig{BaseMS: 400, StepMS: 40, MinMS: 100}},
		{DifficultyFixed, GravityConfig{BaseMS: 600, StepMS: 0, MinMS: 100}},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			ApplyTetrisPreset(&cfg, tc.preset)
			require.Equal(t, tc.expected, cfg.Gravity)
			require.NoError(t, cfg.Validate())
		})
	}
}

func TestApplyPresetKeepsGravityValid(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Gravity.MinMS = 500
	ApplyTetrisPreset(&cfg, DifficultyHard)
	require.Equal(t, 400, cfg.Gravity.MinMS)
	require.NoError(t, cfg.Validate())
}
