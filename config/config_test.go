package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codifire/designpatterns/config"
	"github.com/codifire/designpatterns/observer/types"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Mode)
	assert.Equal(t, "always", cfg.CatchAll)
	assert.False(t, cfg.Metrics)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "TEXT", cfg.Log.Format)
	assert.Equal(t, 100, cfg.Log.MaxSize)
	assert.False(t, config.IsDevelopment())
}

func TestLoad_Environment(t *testing.T) {
	t.Cleanup(func() { _, _ = config.Load() })
	t.Setenv("PATTERNS_ENV", "development")
	t.Setenv("PATTERNS_CATCH_ALL", "unmatched")
	t.Setenv("PATTERNS_METRICS", "true")
	t.Setenv("PATTERNS_LOG_LEVEL", "trace")
	t.Setenv("PATTERNS_LOG_MAX_SIZE", "5")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Mode)
	assert.True(t, cfg.Metrics)
	assert.Equal(t, "trace", cfg.Log.Level)
	assert.Equal(t, 5, cfg.Log.MaxSize)
	assert.True(t, config.IsDevelopment())

	policy, err := cfg.Policy()
	require.NoError(t, err)
	assert.Equal(t, types.CatchAllUnmatched, policy)
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(file, []byte("PATTERNS_LOG_FORMAT=JSON\nPATTERNS_LOG_MAX_AGE=7\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("PATTERNS_LOG_FORMAT")
		_ = os.Unsetenv("PATTERNS_LOG_MAX_AGE")
	})

	cfg, err := config.Load(file)
	require.NoError(t, err)
	assert.Equal(t, "JSON", cfg.Log.Format)
	assert.Equal(t, 7, cfg.Log.MaxAge)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"PATTERNS_ENV":        "staging",
		"PATTERNS_CATCH_ALL":  "sometimes",
		"PATTERNS_LOG_LEVEL":  "loud",
		"PATTERNS_LOG_FORMAT": "xml",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

func TestInitLog(t *testing.T) {
	closer, err := config.InitLog(config.LogConfig{Level: "debug", Format: "TEXT"})
	require.NoError(t, err)
	assert.NoError(t, closer.Close())

	file := filepath.Join(t.TempDir(), "patterns.log")
	closer, err = config.InitLog(config.LogConfig{Level: "info", Format: "JSON", File: file, MaxSize: 1})
	require.NoError(t, err)
	assert.NoError(t, closer.Close())

	_, err = config.InitLog(config.LogConfig{Level: "nope"})
	assert.Error(t, err)

	_, err = config.InitLog(config.LogConfig{Format: "yaml"})
	assert.Error(t, err)

	_, err = config.InitLog(config.LogConfig{})
	assert.NoError(t, err)
}

func TestLevelEnabled(t *testing.T) {
	prev := config.Conf
	t.Cleanup(func() { config.Conf = prev })

	config.Conf.Log.Level = ""
	assert.False(t, config.LevelEnabled("debug"))
	assert.True(t, config.LevelEnabled("info"))
	assert.True(t, config.LevelEnabled("error"))

	config.Conf.Log.Level = "trace"
	assert.True(t, config.LevelEnabled("trace"))

	config.Conf.Log.Level = "warn"
	assert.False(t, config.LevelEnabled("info"))
	assert.True(t, config.LevelEnabled("warn"))
	assert.False(t, config.LevelEnabled("bogus"))
}
