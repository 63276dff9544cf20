package config

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", testSecret)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, uint16(8080), cfg.HTTP.Port)
	require.Equal(t, []string{"http://localhost:5173"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, int64(10<<20), cfg.HTTP.MaxUploadBytes())
	require.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	require.Equal(t, "console", cfg.Mail.Provider)
	require.Equal(t, "local", cfg.Storage.Provider)
	require.False(t, cfg.Psql.SeedDemo)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", testSecret)
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://app.example.com,https://admin.example.com")
	t.Setenv("AUTH_TOKEN_TTL", "90m")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("PSQL_ADDRESS", "postgres://u:p@db:5432/agency?sslmode=disable")

	cfg, err := Load()
	require.NoError(t, err)
	require.Len(t, cfg.HTTP.AllowedOrigins, 2)
	require.Equal(t, 90*time.Minute, cfg.Auth.TokenTTL)
	require.Equal(t, "json", cfg.Log.SlogFormat())
	require.Equal(t, "db:5432", cfg.Psql.Addr.Host)
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	t.Run("short secret", func(t *testing.T) {
		t.Setenv("AUTH_JWT_SECRET", "short")
		_, err := Load()
		require.Error(t, err)
	})
	t.Run("sendgrid without key", func(t *testing.T) {
		t.Setenv("AUTH_JWT_SECRET", testSecret)
		t.Setenv("MAIL_PROVIDER", "sendgrid")
		_, err := Load()
		require.ErrorContains(t, err, "MAIL_SENDGRID_API_KEY")
	})
	t.Run("unknown storage", func(t *testing.T) {
		t.Setenv("AUTH_JWT_SECRET", testSecret)
		t.Setenv("STORAGE_PROVIDER", "s3")
		_, err := Load()
		require.ErrorContains(t, err, "STORAGE_PROVIDER")
	})
}

func TestLoggerHandler(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", testSecret)
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := slog.New(cfg.Log.Handler(&buf))
	logger.Info("dropped")
	logger.Warn("kept", slog.String("k", "v"))

	require.NotContains(t, buf.String(), "dropped")
	require.Contains(t, buf.String(), `"msg":"kept"`)
	require.Contains(t, buf.String(), `"k":"v"`)
}
