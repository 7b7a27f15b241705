package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultPort        = "3000"
	defaultDatabaseURL = "assovol.db"
	defaultJWTTTL      = "1h"
	defaultBaseURL     = "http://localhost:3000"
	defaultFrontendURL = "http://localhost:5173"
	defaultUploadDir   = "./uploads"
)

// Config carries everything the server reads from the environment.
// JWTSecret and the admin credentials have no defaults: the process refuses
// to start without them.
type Config struct {
	Port        string
	DatabaseURL string

	JWTSecret string
	JWTTTL    time.Duration

	// BaseURL is prefixed to stored upload paths when records are returned,
	// so clients always see absolute file URLs.
	BaseURL     string
	FrontendURL string
	UploadDir   string

	AdminUsername     string
	AdminPasswordHash string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", defaultPort),
		DatabaseURL: getEnv("DATABASE_URL", defaultDatabaseURL),
		BaseURL:     strings.TrimRight(getEnv("BASE_URL", defaultBaseURL), "/"),
		FrontendURL: getEnv("FRONTEND_URL", defaultFrontendURL),
		UploadDir:   getEnv("UPLOAD_DIR", defaultUploadDir),
	}

	cfg.JWTSecret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	cfg.AdminUsername = strings.TrimSpace(os.Getenv("ADMIN_USERNAME"))
	cfg.AdminPasswordHash = strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH"))
	if cfg.AdminUsername == "" || cfg.AdminPasswordHash == "" {
		return nil, fmt.Errorf("ADMIN_USERNAME and ADMIN_PASSWORD_HASH must be set")
	}

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
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
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}
