package config

import (
	"os"
	"strconv"
	"time"
)

// Config captures the runtime configuration for the Clipstream backend service.
type Config struct {
	AppPort      int
	DatabasePath string
	LogLevel     string
	// NetworkDelay is the simulated latency applied by the mock data source.
	NetworkDelay time.Duration
	// UploadTick paces the simulated upload progress counter.
	UploadTick    time.Duration
	UploadWorkers int
}

// Load reads configuration from environment variables, applying sensible defaults
// for local development while allowing overrides through environment variables.
func Load() (Config, error) {
	cfg := Config{
		AppPort:       getInt("CLIPSTREAM_PORT", 8080),
		DatabasePath:  getString("CLIPSTREAM_DATABASE_PATH", "clipstream.db"),
		LogLevel:      getString("CLIPSTREAM_LOG_LEVEL", "info"),
		NetworkDelay:  getDuration("CLIPSTREAM_NETWORK_DELAY", time.Second),
		UploadTick:    getDuration("CLIPSTREAM_UPLOAD_TICK", 300*time.Millisecond),
		UploadWorkers: getInt("CLIPSTREAM_UPLOAD_WORKERS", 2),
	}

	return cfg, nil
}

func getString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return i
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
