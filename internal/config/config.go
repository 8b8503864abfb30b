package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries the client-side settings for the dashboard. Everything is
// sourced from environment variables, with a .env file as fallback.
type Config struct {
	APIBaseURL     string
	Locale         string
	SessionFile    string
	LogFile        string
	RequestTimeout time.Duration

	CacheBackend  string // memory | redis | none
	CacheTTL      time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	locale := getEnv("MELFAK_LOCALE", "ar")
	if locale != "ar" && locale != "en" {
		locale = "ar"
	}

	cfg := &Config{
		APIBaseURL:     getEnv("MELFAK_API_URL", "http://localhost:8080"),
		Locale:         locale,
		SessionFile:    getEnv("MELFAK_SESSION_FILE", defaultSessionFile()),
		LogFile:        getEnv("MELFAK_LOG_FILE", ""),
		RequestTimeout: time.Duration(getEnvInt("MELFAK_TIMEOUT_SEC", 30)) * time.Second,
		CacheBackend:   getEnv("CACHE_BACKEND", "memory"),
		CacheTTL:       time.Duration(getEnvInt("CACHE_TTL_SECONDS", 60)) * time.Second,
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        getEnvInt("REDIS_DB", 0),
	}

	return cfg, nil
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".melfak-session.json"
	}
	return filepath.Join(dir, "melfak-admin", "session.json")
}
