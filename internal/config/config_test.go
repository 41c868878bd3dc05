package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the yaml file", func(t *testing.T) {
		// Given: a config file with every section
		path := writeConfig(t, `
log-level: debug
game:
  profile: short
  win-threshold: 4
self-play:
  players: [a, b, c]
  max-turns: 12
`)

		// When: loading it
		conf, err := Load(path)

		// Then: every value is read
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, Game{Profile: "short", WinThreshold: 4}, conf.Game)
		assert.Equal(t, SelfPlay{Players: []string{"a", "b", "c"}, MaxTurns: 12}, conf.SelfPlay)
	})

	t.Run("Fills defaults for missing keys", func(t *testing.T) {
		conf, err := Load(writeConfig(t, "log-level: warn\n"))

		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
		assert.Equal(t, "standard", conf.Game.Profile)
		assert.Equal(t, 0, conf.Game.WinThreshold)
		assert.Equal(t, []string{"red", "blue"}, conf.SelfPlay.Players)
		assert.Equal(t, 5000, conf.SelfPlay.MaxTurns)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		t.Setenv("GAME_PROFILE", "short")
		t.Setenv("GAME_WIN_THRESHOLD", "1")

		conf, err := Load(writeConfig(t, "game:\n  profile: standard\n  win-threshold: 3\n"))

		require.NoError(t, err)
		assert.Equal(t, "short", conf.Game.Profile)
		assert.Equal(t, 1, conf.Game.WinThreshold)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
		require.Error(t, err)

		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("SELF_PLAY_PLAYERS", "x,y")

	conf, err := LoadEnv()

	require.NoError(t, err)
	assert.Equal(t, "error", conf.LogLevel)
	assert.Equal(t, "standard", conf.Game.Profile)
	assert.Equal(t, []string{"x", "y"}, conf.SelfPlay.Players)
}
