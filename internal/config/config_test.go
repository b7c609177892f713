package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "member-directory", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:5000", cfg.App.Addr())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())

	assert.Equal(t, 43200, cfg.Auth.AccessTokenTTLMinutes)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)

	assert.Equal(t, 587, cfg.Mail.Port)
	assert.Equal(t, "noreply@example.com", cfg.Mail.From)

	assert.EqualValues(t, 2097152, cfg.Media.MaxUploadSize)
	assert.Equal(t, 500, cfg.Media.BoundingSize)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("JWT_EXPIRE_MINUTES", "15")
	t.Setenv("MAX_FILE_SIZE", "1048576")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 15, cfg.Auth.AccessTokenTTLMinutes)
	assert.EqualValues(t, 1048576, cfg.Media.MaxUploadSize)
	assert.Equal(t, time.Duration(0), cfg.App.RequestTimeout())
}

func TestLoadIgnoresMalformedInts(t *testing.T) {
	t.Setenv("JWT_EXPIRE_MINUTES", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 43200, cfg.Auth.AccessTokenTTLMinutes, "unparseable values fall back to defaults")
}

func TestLoadRejectsInvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}
