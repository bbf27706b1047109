package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates every setting the interaction layer reads from the environment.
type Config struct {
	Server  ServerConfig
	REST    RESTConfig
	Session SessionConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Port string
}

// RESTConfig points at the day-trip API the layer consumes.
type RESTConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig locates the persisted token/member_id key-value file.
type SessionConfig struct {
	Path string
}

type LoggingConfig struct {
	Directory string
	Level     string
	Format    string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: envOrDefault("PORT", "8000"),
		},
		REST: RESTConfig{
			BaseURL: envOrDefault("API_BASE_URL", "http://localhost:3000"),
		},
		Session: SessionConfig{
			Path: envOrDefault("SESSION_FILE", ".session.json"),
		},
		Logging: LoggingConfig{
			Directory: envOrDefault("LOG_DIR", "./logs"),
			Level:     envOrDefault("LOG_LEVEL", "info"),
			Format:    envOrDefault("LOG_FORMAT", "text"),
		},
	}

	timeout, err := durationFromEnv("API_TIMEOUT_SECONDS", 10*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.REST.Timeout = timeout

	if _, err := strconv.Atoi(cfg.Server.Port); err != nil {
		return nil, fmt.Errorf("invalid PORT %q: %w", cfg.Server.Port, err)
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func durationFromEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	return time.Duration(seconds) * time.Second, nil
}
