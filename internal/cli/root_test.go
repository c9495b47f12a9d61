package cli

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "tictactoe", cmd.Use)

	configFlag := cmd.Flags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)
	assert.Equal(t, defaultConfigPath, configFlag.DefValue)

	logLevelFlag := cmd.Flags().Lookup("log-level")
	require.NotNil(t, logLevelFlag)
	assert.Equal(t, "", logLevelFlag.DefValue)
}

func TestRootCommand_Execute(t *testing.T) {
	t.Run("Plays with the given config and input", func(t *testing.T) {
		// Given: a config file without screen clearing and a scripted session
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: error\n"), 0o600))

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		cmd := NewRootCommand()
		cmd.SetArgs([]string{"--config", path, "--log-level", "debug"})
		cmd.SetIn(strings.NewReader("m 1 1\ns\nq\n"))
		cmd.SetOut(stdout)
		cmd.SetErr(stderr)

		// When: the command runs
		err := cmd.ExecuteContext(context.Background())

		// Then: the game is played on stdout and debug logs go to stderr
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), " X |   |   ")
		assert.Contains(t, stdout.String(), "Player1 has won 0 times.")
		assert.Contains(t, stderr.String(), `"level":"DEBUG"`)
	})

	t.Run("Error on unexpected arguments", func(t *testing.T) {
		cmd := NewRootCommand()
		cmd.SetArgs([]string{"extra"})
		cmd.SetIn(strings.NewReader(""))
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})

		err := cmd.Execute()

		require.Error(t, err)
	})
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{level: "debug", want: slog.LevelDebug},
		{level: "info", want: slog.LevelInfo},
		{level: "WARN", want: slog.LevelWarn},
		{level: "error", want: slog.LevelError},
		{level: "verbose", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := NewLogger(tt.level, &bytes.Buffer{})

			assert.True(t, logger.Enabled(context.Background(), tt.want))
			if tt.want > slog.LevelDebug {
				assert.False(t, logger.Enabled(context.Background(), tt.want-1))
			}
		})
	}
}
