package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MemoryDefaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("PGSQL_URL", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_EXPIRY_DURATION", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", " http://a.example , ,http://b.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, StorageDriverMemory, cfg.StorageDriver)
	assert.Equal(t, defaultJWTSecret, cfg.JWTSecret)
	assert.Equal(t, 7*24*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.GoogleOAuthEnabled())
}

func TestLoadConfig_PostgresRequiresURL(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("PGSQL_URL", "")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "PGSQL_URL")
}

func TestLoadConfig_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestLoadConfig_UnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "mysql")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "unsupported STORAGE_DRIVER")
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("PGSQL_URL", "postgres://u:p@localhost:5432/invoices")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRY_DURATION", "30m")
	t.Setenv("LOGIN_RATE_LIMIT", "10-M")
	t.Setenv("GOOGLE_CLIENT_ID", "id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "secret")
	t.Setenv("GOOGLE_REDIRECT_URL", "http://localhost:3000/callback")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@localhost:5432/invoices", cfg.DatabaseURL)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.JWTExpiryDuration)
	assert.Equal(t, "10-M", cfg.LoginRateLimit)
	assert.True(t, cfg.GoogleOAuthEnabled())
}
