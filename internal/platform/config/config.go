package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type HTTPConfig struct {
	Addr string
}

type CatalogConfig struct {
	BaseURL string
	APIKey  string
	Mock    bool
}

type GenAIConfig struct {
	BaseURL string
	APIKey  string
	Model   string
}

type RecommendConfig struct {
	CacheTTL          time.Duration
	InvalidateSubject string
}

type AppConfig struct {
	ServiceName string
	LogLevel    string
	HTTP        HTTPConfig
	Catalog     CatalogConfig
	GenAI       GenAIConfig
	Recommend   RecommendConfig
	JWTSecret   []byte

	// Optional collaborators. Empty means the corresponding feature
	// degrades (in-memory favorites, no cache invalidation bus).
	DatabaseURL string
	NATSURL     string
}

func Load() (AppConfig, error) {
	cfg := AppConfig{
		ServiceName: getenv("SERVICE_NAME"),
		LogLevel:    getenv("LOG_LEVEL"),
		HTTP: HTTPConfig{
			Addr: getenv("HTTP_ADDR"),
		},
		Catalog: CatalogConfig{
			BaseURL: getenv("TMDB_BASE_URL"),
			APIKey:  getenv("TMDB_API_KEY"),
			Mock:    envFlag("TMDB_MOCK"),
		},
		GenAI: GenAIConfig{
			BaseURL: getenv("OPENAI_BASE_URL"),
			APIKey:  realSecret(getenv("OPENAI_API_KEY")),
			Model:   getenv("OPENAI_MODEL"),
		},
		DatabaseURL: getenv("DATABASE_URL"),
		NATSURL:     getenv("NATS_URL"),
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "movie-discovery"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8080"
	}
	if cfg.GenAI.Model == "" {
		cfg.GenAI.Model = "gpt-4o-mini"
	}

	if !cfg.Catalog.Mock && realSecret(cfg.Catalog.APIKey) == "" {
		return AppConfig{}, errors.New("TMDB_API_KEY is required unless TMDB_MOCK is enabled")
	}

	secret := getenv("JWT_SECRET")
	if secret == "" {
		return AppConfig{}, errors.New("JWT_SECRET is required")
	}
	cfg.JWTSecret = []byte(secret)

	ttl, err := envDuration("RECOMMENDATIONS_CACHE_TTL", 6*time.Hour)
	if err != nil {
		return AppConfig{}, err
	}
	cfg.Recommend.CacheTTL = ttl
	cfg.Recommend.InvalidateSubject = getenv("RECOMMENDATIONS_INVALIDATE_SUBJECT")

	return cfg, nil
}

func getenv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envFlag(key string) bool {
	switch strings.ToLower(getenv(key)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// envDuration accepts either a Go duration string or a bare number of seconds.
func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := getenv(key)
	if v == "" {
		return fallback, nil
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}

// realSecret filters out template placeholders commonly left in .env files,
// so "YOUR_OPENAI_API_KEY" behaves the same as an unset key.
func realSecret(v string) string {
	if v == "" {
		return ""
	}
	lower := strings.ToLower(v)
	if strings.HasPrefix(v, "YOUR_") || strings.Contains(lower, "replace") {
		return ""
	}
	return v
}
