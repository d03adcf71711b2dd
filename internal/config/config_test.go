package config

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medical-appointment-service/internal/adapters/kvstore"
)

var allKeys = []string{
	"HTTP_ADDR", "CORS_ALLOW_ORIGINS", "STORE_BACKEND", "LEVELDB_PATH", "REDIS_ADDR",
	"REDIS_PASSWORD", "REDIS_DB", "DATABASE_URL", "MONGODB_URI", "MONGODB_DATABASE",
	"DOCTORS_FILE", "JWT_SECRET", "JWT_TTL", "OTP_MAX_ATTEMPTS", "NOTIFY_WORKERS",
}

// clearEnv blanks every variable the config reads for the duration of t.
func clearEnv(t *testing.T) {
	for _, k := range allKeys {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.HTTPAddr)
	assert.Equal(t, "*", cfg.CORSAllowOrigins)
	assert.Equal(t, kvstore.BackendMemory, cfg.Store.Backend)
	assert.Equal(t, 0, cfg.OTPMaxAttempts)
	assert.Equal(t, 5, cfg.NotifyWorkers)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Empty(t, cfg.DoctorsFile)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", ":8080")
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("JWT_TTL", "30m")
	t.Setenv("OTP_MAX_ATTEMPTS", "3")
	t.Setenv("NOTIFY_WORKERS", "8")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, kvstore.BackendRedis, cfg.Store.Backend)
	assert.Equal(t, "cache:6379", cfg.Store.Redis.Addr)
	assert.Equal(t, 2, cfg.Store.Redis.DB)
	assert.Equal(t, 30*time.Minute, cfg.JWTTTL)
	assert.Equal(t, 3, cfg.OTPMaxAttempts)
	assert.Equal(t, 8, cfg.NotifyWorkers)
}

func TestFromEnv_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"bad int":           {"REDIS_DB", "two"},
		"bad duration":      {"JWT_TTL", "a day"},
		"negative attempts": {"OTP_MAX_ATTEMPTS", "-1"},
		"no workers":        {"NOTIFY_WORKERS", "0"},
		"postgres sans dsn": {"STORE_BACKEND", "postgres"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("HTTP_ADDR")
	os.Unsetenv("JWT_SECRET")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HTTP_ADDR=:9090\nJWT_SECRET=from-file\n"), 0o600))

	cfg, err := Load(log.New(io.Discard, "", 0), path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "from-file", cfg.JWTSecret)
}

func TestLoad_MissingFileIsTolerated(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(log.New(io.Discard, "", 0), filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.HTTPAddr)
}

func TestLoad_WarnsOnDefaultJWTSecret(t *testing.T) {
	clearEnv(t)
	var buf bytes.Buffer
	cfg, err := Load(log.New(&buf, "", 0), filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultJWTSecret, cfg.JWTSecret)
	assert.Contains(t, buf.String(), "JWT_SECRET is not set")

	buf.Reset()
	t.Setenv("JWT_SECRET", "s3cret")
	_, err = Load(log.New(&buf, "", 0), filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "JWT_SECRET")
}
