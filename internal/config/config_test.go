package config_test

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mergington/activity-roster/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "STATIC_DIR", "SEED_PATH", "LOG_LEVEL"} {
		t.Setenv(key, "") // register restore, then clear for real
		os.Unsetenv(key)
	}

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "./static", cfg.StaticDir)
	require.Empty(t, cfg.SeedPath)
	require.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("STATIC_DIR", "/srv/www")
	t.Setenv("SEED_PATH", "/etc/roster.yaml")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "9999", cfg.Port)
	require.Equal(t, "/srv/www", cfg.StaticDir)
	require.Equal(t, "/etc/roster.yaml", cfg.SeedPath)
	require.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestSlogLevelMapping(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"bogus": slog.LevelInfo,
		"":      slog.LevelInfo,
	}
	for in, want := range cases {
		require.Equal(t, want, config.Config{LogLevel: in}.SlogLevel(), "level %q", in)
	}
}
