package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/finbridge")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("PORT", "")
		t.Setenv("DEMO_LOGIN_ENABLED", "")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, DefaultPort, cfg.Port)
		require.True(t, cfg.DemoLoginEnabled)
	})

	t.Run("missing DATABASE_URL fails", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		t.Setenv("JWT_SECRET", "test-secret")

		_, err := Load()
		require.Error(t, err)
		require.Contains(t, err.Error(), "DATABASE_URL")
	})

	t.Run("missing JWT_SECRET fails", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost:5432/finbridge")
		t.Setenv("JWT_SECRET", "")

		_, err := Load()
		require.Error(t, err)
		require.Contains(t, err.Error(), "JWT_SECRET")
	})

	t.Run("demo login can be disabled", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("DEMO_LOGIN_ENABLED", "false")

		cfg, err := Load()
		require.NoError(t, err)
		require.False(t, cfg.DemoLoginEnabled)
	})

	t.Run("reads optional values", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("PORT", "8080")
		t.Setenv("GEMINI_API_KEY", "test-key")
		t.Setenv("LOG_LEVEL", "debug")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, "8080", cfg.Port)
		require.Equal(t, "test-key", cfg.GeminiAPIKey)
		require.Equal(t, "debug", cfg.LogLevel)
	})
}

func TestAddr(t *testing.T) {
	t.Parallel()

	require.Equal(t, ":5000", (&Config{Port: "5000"}).Addr())
	require.Equal(t, ":8080", (&Config{Port: ":8080"}).Addr())
}
