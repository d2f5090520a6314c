package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("MYSQL_DSN", "")
	t.Setenv("MYSQL_PASSWORD", "pw")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.Server.Addr())
	assert.Equal(t, "shop:pw@tcp(127.0.0.1:3306)/shop?charset=utf8mb4&parseTime=True&loc=Local", cfg.MySQL.DSN)
	assert.Equal(t, 2*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, "shop-service", cfg.JWT.Issuer)
	assert.Equal(t, int64(20), cfg.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, defaultCORSOrigins, cfg.CORSOrigins)
	assert.True(t, cfg.SeedData)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("MYSQL_DSN", "u:p@tcp(db:3306)/x")
	t.Setenv("JWT_TTL", "15m")
	t.Setenv("RATE_LIMIT_REQUESTS", "3")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("SEED_DATA", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr())
	assert.Equal(t, "u:p@tcp(db:3306)/x", cfg.MySQL.DSN)
	assert.Equal(t, 15*time.Minute, cfg.JWT.TTL)
	assert.Equal(t, int64(3), cfg.RateLimit.Requests)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.False(t, cfg.SeedData)
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET")
}
