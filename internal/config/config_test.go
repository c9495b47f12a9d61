package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Reads values from the config file", func(t *testing.T) {
		// Given: a config file with every section set
		path := filepath.Join(t.TempDir(), "config.yml")
		content := `
log-level: debug
console:
  clear-screen: true
redis:
  enabled: true
  host: redis.local
  port: "6380"
  channel: rounds
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: the config is loaded
		conf, err := Load(path)

		// Then: the file values are used
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.True(t, conf.Console.ClearScreen)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "redis.local:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, "rounds", conf.Redis.Channel)
	})

	t.Run("Falls back to defaults without a file", func(t *testing.T) {
		// Given: a path that does not exist
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: the config is loaded
		conf, err := Load(path)

		// Then: defaults are used
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.False(t, conf.Console.ClearScreen)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, "tictactoe:rounds", conf.Redis.Channel)
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		// Given: environment variables and no file
		t.Setenv("LOG_LEVEL", "warn")
		t.Setenv("REDIS_ENABLED", "true")
		t.Setenv("REDIS_PORT", "7000")

		// When: the config is loaded
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: the environment wins
		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:7000", conf.Redis.GetRedisAddr())
	})

	t.Run("Error on malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: [unclosed"), 0o600))

		_, err := Load(path)

		require.Error(t, err)
	})
}

func TestRedis_GetRedisAddr(t *testing.T) {
	assert.Equal(t, "", (&Redis{Port: "6379"}).GetRedisAddr())
	assert.Equal(t, "127.0.0.1:6379", (&Redis{Host: "127.0.0.1", Port: "6379"}).GetRedisAddr())
}
