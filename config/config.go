// Package config loads runtime settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"eventhub-cli/catalog"
)

const (
	BackendFile  = "file"
	BackendRedis = "redis"

	defaultSite       = string(catalog.Concert)
	defaultSessionKey = "eventhub:user"
	defaultRedisURL   = "redis://localhost:6379/0"
	defaultCatalogTTL = 30 * time.Minute
	defaultToastTTL   = 3 * time.Second
)

type Config struct {
	Site           string
	SessionBackend string
	RedisURL       string
	SessionKey     string
	CatalogURL     string
	CatalogTTL     time.Duration
	ToastTTL       time.Duration
	LogFile        string
}

// Load reads .env from the working directory when present (it never
// overrides variables already set) and then the EVENTHUB_* variables.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		Site:           strings.ToLower(envStr("EVENTHUB_SITE", defaultSite)),
		SessionBackend: strings.ToLower(envStr("EVENTHUB_SESSION_BACKEND", BackendFile)),
		RedisURL:       envStr("EVENTHUB_REDIS_URL", defaultRedisURL),
		SessionKey:     envStr("EVENTHUB_SESSION_KEY", defaultSessionKey),
		CatalogURL:     strings.TrimRight(envStr("EVENTHUB_CATALOG_URL", ""), "/"),
		LogFile:        envStr("EVENTHUB_LOG_FILE", ""),
	}

	var err error
	if cfg.CatalogTTL, err = envDur("EVENTHUB_CATALOG_TTL", defaultCatalogTTL); err != nil {
		return Config{}, err
	}
	if cfg.ToastTTL, err = envDur("EVENTHUB_TOAST_TTL", defaultToastTTL); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Site {
	case "dance", "concert":
	default:
		return fmt.Errorf("invalid EVENTHUB_SITE %q: want dance or concert", c.Site)
	}
	switch c.SessionBackend {
	case BackendFile:
	case BackendRedis:
		if strings.TrimSpace(c.RedisURL) == "" {
			return errors.New("EVENTHUB_REDIS_URL is required for the redis backend")
		}
	default:
		return fmt.Errorf("invalid EVENTHUB_SESSION_BACKEND %q: want file or redis", c.SessionBackend)
	}
	if c.CatalogTTL <= 0 {
		return errors.New("EVENTHUB_CATALOG_TTL must be positive")
	}
	if c.ToastTTL <= 0 {
		return errors.New("EVENTHUB_TOAST_TTL must be positive")
	}
	return nil
}

func envStr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envDur(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}
