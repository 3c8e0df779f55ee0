package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	settings := Load()

	assert.Equal(t, "skillconnect.db", settings.DatabasePath)
	assert.Equal(t, "HS256", settings.Algorithm)
	assert.Equal(t, 1440, settings.AccessTokenExpireMinutes)
	assert.Equal(t, "0.0.0.0:8000", settings.Addr())
	assert.Equal(t, 24*time.Hour, settings.TokenLifetime())
	assert.True(t, settings.Debug)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_PATH", "/tmp/other.db")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "30")
	t.Setenv("PORT", "9000")
	t.Setenv("DEBUG", "false")

	settings := Load()

	assert.Equal(t, "/tmp/other.db", settings.DatabasePath)
	assert.Equal(t, 30*time.Minute, settings.TokenLifetime())
	assert.Equal(t, "0.0.0.0:9000", settings.Addr())
	assert.False(t, settings.Debug)
}

func TestLoadIgnoresUnparsableValues(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("DEBUG", "not-a-bool")

	settings := Load()

	assert.Equal(t, 8000, settings.Port)
	assert.True(t, settings.Debug)
}
