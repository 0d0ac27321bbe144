package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadCacheConfig_Defaults(t *testing.T) {
	cfg := LoadCacheConfig()

	assert.True(t, cfg.Enabled)
	assert.True(t, cfg.Methods["GET"])
	assert.False(t, cfg.Methods["POST"])
	assert.Equal(t, 30*time.Second, cfg.TTL)
	assert.Equal(t, "portfolio:cache", cfg.Prefix)
}

func TestLoadCacheConfig_Overrides(t *testing.T) {
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("CACHE_TTL", "2m")
	t.Setenv("CACHE_METHODS", "get, head")

	cfg := LoadCacheConfig()

	assert.False(t, cfg.Enabled)
	assert.Equal(t, 2*time.Minute, cfg.TTL)
	assert.True(t, cfg.Methods["GET"])
	assert.True(t, cfg.Methods["HEAD"])
}

func setRequiredEnv(t *testing.T) {
	t.Helper()
	for k, v := range map[string]string{
		"DB_USER": "root", "DB_HOST": "localhost", "DB_PORT": "3306", "DB_NAME": "portfolio",
		"JWT_SECRET_KEY": "secret", "JWT_EXPIRES_DAYS": "7", "COOKIE_EXPIRES_DAYS": "7",
		"PORTFOLIO_URL": "http://localhost:5173", "DASHBOARD_URL": "http://localhost:5174",
		"S3_BUCKET": "media", "S3_ACCESS_KEY": "ak", "S3_SECRET_KEY": "sk",
		"S3_PUBLIC_URL": "http://localhost:9000/media",
	} {
		t.Setenv(k, v)
	}
}

func TestLoad_PoolDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg := Load()

	assert.Equal(t, 20, cfg.DBMaxOpenConns)
	assert.Equal(t, 10, cfg.DBMaxIdleConns)
	assert.Equal(t, 15*time.Minute, cfg.DBConnMaxLifetime)
}

func TestLoad_PoolOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_MAX_OPEN_CONNS", "50")
	t.Setenv("DB_MAX_IDLE_CONNS", "5")
	t.Setenv("DB_CONN_MAX_LIFETIME", "1h")

	cfg := Load()

	assert.Equal(t, 50, cfg.DBMaxOpenConns)
	assert.Equal(t, 5, cfg.DBMaxIdleConns)
	assert.Equal(t, time.Hour, cfg.DBConnMaxLifetime)
}

func TestLoadRateLimitConfig_Defaults(t *testing.T) {
	cfg := LoadRateLimitConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 10, cfg.Capacity)
	assert.Equal(t, 1, cfg.RefillTokens)
	assert.Equal(t, time.Minute, cfg.RefillInterval)
	assert.Equal(t, "ip_route", cfg.KeyStrategy)
}

func TestLoadRateLimitConfig_ClampsBadValues(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "10m")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	cfg := LoadRateLimitConfig()

	assert.Equal(t, 1, cfg.Capacity, "capacity never drops below one token")
	assert.Equal(t, 50*time.Minute, cfg.TTL, "ttl is stretched to cover refills")
}
