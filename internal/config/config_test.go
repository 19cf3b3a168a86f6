package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the config file", func(t *testing.T) {
		// Given: a config file selecting the tower of hanoi
		path := writeConfig(t, "log-level: debug\ngame: hanoi\n")

		// When: the config is loaded
		conf, err := Load(path)

		// Then: the values from the file are used
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, GameHanoi, conf.Game)
	})

	t.Run("Defaults without a config file", func(t *testing.T) {
		// Given: no overrides in the environment
		for _, name := range []string{"LOG_LEVEL", "GAME"} {
			t.Setenv(name, "")
			require.NoError(t, os.Unsetenv(name))
		}

		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
		assert.Equal(t, GameFourInARow, conf.Game)
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		t.Setenv("GAME", GameHanoi)

		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.NoError(t, err)
		assert.Equal(t, GameHanoi, conf.Game)
	})

	t.Run("Unknown game", func(t *testing.T) {
		path := writeConfig(t, "game: chess\n")

		_, err := Load(path)

		assert.ErrorIs(t, err, ErrUnknownGame)
	})
}

func TestMustLoad_Panics(t *testing.T) {
	path := writeConfig(t, "game: chess\n")

	assert.Panics(t, func() {
		MustLoad(path)
	})
}
