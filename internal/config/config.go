// Package config reads the service configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"medical-appointment-service/internal/adapters/kvstore"
)

// DefaultJWTSecret is used when JWT_SECRET is unset. Fine for local runs only.
const DefaultJWTSecret = "change-me"

type Config struct {
	HTTPAddr         string
	CORSAllowOrigins string

	Store       kvstore.Options
	DoctorsFile string

	JWTSecret string
	JWTTTL    time.Duration

	OTPMaxAttempts int
	NotifyWorkers  int
}

// Load reads .env files when present and then the process environment.
// Variables already set in the environment win over the file.
func Load(logger *log.Logger, files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file: %w", err)
		}
		logger.Println("No .env file found, using process environment")
	}
	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}
	if cfg.JWTSecret == DefaultJWTSecret {
		logger.Println("Warning: JWT_SECRET is not set, signing tokens with the default secret")
	}
	return cfg, nil
}

// FromEnv builds a Config from environment variables alone.
func FromEnv() (*Config, error) {
	cfg := &Config{
		HTTPAddr:         getEnv("HTTP_ADDR", ":3000"),
		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		Store: kvstore.Options{
			Backend:     getEnv("STORE_BACKEND", kvstore.BackendMemory),
			LevelDBPath: getEnv("LEVELDB_PATH", "data/appointments.db"),
			Redis: kvstore.RedisOptions{
				Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
				Password: os.Getenv("REDIS_PASSWORD"),
			},
			PostgresDSN:   os.Getenv("DATABASE_URL"),
			MongoURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			MongoDatabase: getEnv("MONGODB_DATABASE", "appointments"),
		},
		DoctorsFile: os.Getenv("DOCTORS_FILE"),
		JWTSecret:   getEnv("JWT_SECRET", DefaultJWTSecret),
	}

	var err error
	if cfg.Store.Redis.DB, err = getInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.OTPMaxAttempts, err = getInt("OTP_MAX_ATTEMPTS", 0); err != nil {
		return nil, err
	}
	if cfg.NotifyWorkers, err = getInt("NOTIFY_WORKERS", 5); err != nil {
		return nil, err
	}
	if cfg.JWTTTL, err = getDuration("JWT_TTL", 24*time.Hour); err != nil {
		return nil, err
	}

	switch {
	case cfg.OTPMaxAttempts < 0:
		return nil, fmt.Errorf("OTP_MAX_ATTEMPTS must not be negative, got %d", cfg.OTPMaxAttempts)
	case cfg.NotifyWorkers < 1:
		return nil, fmt.Errorf("NOTIFY_WORKERS must be at least 1, got %d", cfg.NotifyWorkers)
	case cfg.Store.Backend == kvstore.BackendPostgres && cfg.Store.PostgresDSN == "":
		return nil, errors.New("DATABASE_URL is required for the postgres store")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", key, raw)
	}
	return v, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a duration", key, raw)
	}
	return v, nil
}
