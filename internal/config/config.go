package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultListenAddr     = ":8080"
	defaultBackendTimeout = "15s"
	defaultSessionTTL     = "24h"
	defaultSweepInterval  = "10m"
)

// Config is the gateway runtime configuration, read once at startup.
type Config struct {
	ListenAddr     string
	BackendBaseURL string
	BackendTimeout time.Duration
	SessionTTL     time.Duration
	SweepInterval  time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:     getEnv("APP_ADDR", defaultListenAddr),
		BackendBaseURL: strings.TrimSpace(os.Getenv("BACKEND_BASE_URL")),
	}
	if cfg.BackendBaseURL == "" {
		return nil, fmt.Errorf("BACKEND_BASE_URL is required")
	}

	var err error
	if cfg.BackendTimeout, err = parseDurationEnv("BACKEND_TIMEOUT", defaultBackendTimeout); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = parseDurationEnv("SESSION_TTL", defaultSessionTTL); err != nil {
		return nil, err
	}
	if cfg.SweepInterval, err = parseDurationEnv("SESSION_SWEEP_INTERVAL", defaultSweepInterval); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: duration must be positive, got %q", key, raw)
	}
	return d, nil
}
