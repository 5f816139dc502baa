package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// loadLogger loads an optional .env file (silent fail if absent) and
// builds a slog.Logger writing to stderr at AWAITLY_LOG_LEVEL (default
// "info").
func loadLogger() *slog.Logger {
	godotenv.Load()

	level := parseLevel(getEnvOrDefault("AWAITLY_LOG_LEVEL", "info"))
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
