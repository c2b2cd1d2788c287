package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultDatabaseURL = "aacorner.db"
	defaultHTTPAddr    = ":8080"
	defaultJWTSecret   = "change-me-jwt-secret"
	defaultJWTTTL      = "24h"
	defaultAdminUsers  = "admin"
)

type Config struct {
	DatabaseURL string
	HTTPAddr    string
	JWTSecret   string
	JWTTTL      time.Duration
	AdminUsers  map[string]struct{}
}

func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL: getEnv("DATABASE_URL", defaultDatabaseURL),
		HTTPAddr:    getEnv("HTTP_ADDR", defaultHTTPAddr),
		JWTSecret:   strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),
	}

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", defaultJWTTTL))
	if err != nil {
		return nil, fmt.Errorf("JWT_TTL: %w", err)
	}
	cfg.JWTTTL = ttl

	cfg.AdminUsers = make(map[string]struct{})
	for _, name := range strings.Split(getEnv("ADMIN_USERS", defaultAdminUsers), ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			cfg.AdminUsers[name] = struct{}{}
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
