package config_test

import (
	"testing"
	"time"

	"inventario/src/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const settingsPath = "../../settings"

func TestLoadConfig(t *testing.T) {
	t.Run("should read the base settings", func(t *testing.T) {
		cfg, err := config.LoadConfig(settingsPath, "")
		require.NoError(t, err)

		assert.Equal(t, "8000", cfg.Service.Port)
		assert.Equal(t, 30*time.Second, cfg.Service.ReadTimeout)
		assert.Equal(t, 10*time.Second, cfg.Service.RequestTimeout)
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.Equal(t, 30*time.Minute, cfg.Sessions.IdleTimeout)
		assert.Equal(t, "@every 1m", cfg.Sessions.SweepSpec)
		assert.Equal(t, 2*time.Second, cfg.Scanner.Delay)
		assert.Equal(t, "UMSS-00123", cfg.Scanner.SimulatedCode)
		assert.NotEmpty(t, cfg.Auth.JWTSecret)
	})

	t.Run("should merge the environment file on top", func(t *testing.T) {
		cfg, err := config.LoadConfig(settingsPath, "TESTING")
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, time.Minute, cfg.Sessions.IdleTimeout)
		assert.Equal(t, 50*time.Millisecond, cfg.Scanner.Delay)
		assert.Equal(t, "8000", cfg.Service.Port)
	})

	t.Run("should ignore a missing environment file", func(t *testing.T) {
		cfg, err := config.LoadConfig(settingsPath, "STAGING")
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.Logging.Level)
	})

	t.Run("should let environment variables override keys", func(t *testing.T) {
		t.Setenv("INVENTARIO_SERVICE_PORT", "9100")
		t.Setenv("INVENTARIO_SCANNER_SIMULATEDCODE", "UMSS-00999")

		cfg, err := config.LoadConfig(settingsPath, "")
		require.NoError(t, err)
		assert.Equal(t, "9100", cfg.Service.Port)
		assert.Equal(t, "UMSS-00999", cfg.Scanner.SimulatedCode)
	})

	t.Run("should fail without a settings file", func(t *testing.T) {
		_, err := config.LoadConfig(t.TempDir(), "")
		assert.Error(t, err)
	})
}
