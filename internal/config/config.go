package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env           string
	HTTPPort      string
	DatabaseURL   string
	SessionSecret string
	SessionTTL    time.Duration
	RateRPS       int
}

func Load() Config {
	if os.Getenv("APP_ENV") != "prod" {
		_ = godotenv.Load()
	}

	cfg := Config{
		Env:           get("APP_ENV", "dev"),
		HTTPPort:      get("HTTP_PORT", "8080"),
		DatabaseURL:   get("DATABASE_URL", ""),
		SessionSecret: get("SESSION_SECRET", "changeme-secret"),
		SessionTTL:    getDuration("SESSION_TTL", 24*time.Hour),
		RateRPS:       getInt("RATE_RPS", 100),
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = databaseURL()
	}
	return cfg
}

// databaseURL assembles a connection string from the discrete DB_* variables
// when DATABASE_URL is not set.
func databaseURL() string {
	ssl := "disable"
	if get("DB_SSL", "false") == "true" {
		ssl = "require"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		get("DB_USER", "postgres"),
		get("DB_PASSWORD", "postgres"),
		get("DB_HOST", "localhost"),
		get("DB_PORT", "5432"),
		get("DB_NAME", "quotewall"),
		ssl,
	)
}

func get(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
