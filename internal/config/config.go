package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel        slog.Level
	HTTPAddr        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	ErgastBaseURL   string
	UpstreamTimeout time.Duration

	DatabaseURL       string
	DatabaseNamespace string
	DatabaseName      string
	DatabaseUser      string
	DatabasePass      string
}

// Load reads the process configuration from the environment, after a
// best-effort .env load for local development. Nothing is mandatory: without
// DATABASE_URL the server still runs, with the favorites store disabled.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		LogLevel:        getLogLevelEnv("LOG_LEVEL", slog.LevelInfo),
		HTTPAddr:        ":" + getEnv("PORT", "8000"),
		ReadTimeout:     getDurationEnv("READ_TIMEOUT", 10*time.Second),
		WriteTimeout:    getDurationEnv("WRITE_TIMEOUT", 30*time.Second),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),

		ErgastBaseURL:   getEnv("ERGAST_API_URL", "https://ergast.com/api/f1"),
		UpstreamTimeout: getDurationEnv("UPSTREAM_TIMEOUT", 15*time.Second),

		DatabaseURL:       os.Getenv("DATABASE_URL"),
		DatabaseNamespace: getEnv("DATABASE_NAMESPACE", "f1"),
		DatabaseName:      getEnv("DATABASE_NAME", "f1"),
		DatabaseUser:      os.Getenv("DATABASE_USER"),
		DatabasePass:      os.Getenv("DATABASE_PASS"),
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}

func getLogLevelEnv(key string, defaultVal slog.Level) slog.Level {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}

	switch strings.ToLower(v) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return defaultVal
	}
}
