package config

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// unsetEnv clears keys for the test and restores them afterwards.
func unsetEnv(t *testing.T, keys ...string) {
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadFile_defaults(t *testing.T) {
	unsetEnv(t, EnvVerbose, EnvProgress, EnvUserAgent)

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.Progress)
	assert.Empty(t, cfg.UserAgent)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel())
}

func TestLoadFile_envFile(t *testing.T) {
	unsetEnv(t, EnvVerbose, EnvProgress, EnvUserAgent)
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		EnvVerbose+"=true\n"+EnvUserAgent+"=curator/2.0\n",
	), 0644))

	cfg, err := LoadFile(envFile)
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.Progress)
	assert.Equal(t, "curator/2.0", cfg.UserAgent)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel())
}

func TestLoadFile_environmentWins(t *testing.T) {
	unsetEnv(t, EnvVerbose, EnvUserAgent)
	t.Setenv(EnvProgress, "1")
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(EnvProgress+"=false\n"), 0644))

	cfg, err := LoadFile(envFile)
	require.NoError(t, err)
	assert.True(t, cfg.Progress)
}

func TestLoadFile_invalidBoolFallsBack(t *testing.T) {
	unsetEnv(t, EnvProgress, EnvUserAgent)
	t.Setenv(EnvVerbose, "sometimes")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.False(t, cfg.Verbose)
}
