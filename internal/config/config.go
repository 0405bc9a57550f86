package config

import (
	"os"
	"time"
)

type Config struct {
	Addr     string
	LogLevel string

	RedisAddr      string
	CacheTTL       time.Duration
	CacheOpTimeout time.Duration

	AnalyticsURL     string
	EEAccount        string
	EEPrivateKeyFile string
	// RemoteTimeout bounds every round-trip to the analytics service. The
	// upstream imposes no limit of its own.
	RemoteTimeout time.Duration

	PolygonDir string
	WikiURL    string
}

func FromEnv() Config {
	return Config{
		Addr:     getenv("ADDR", ":8080"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		RedisAddr:      getenv("REDIS_ADDR", "localhost:6379"),
		CacheTTL:       getduration("CACHE_TTL", 24*time.Hour),
		CacheOpTimeout: getduration("CACHE_OP_TIMEOUT", 250*time.Millisecond),

		AnalyticsURL:     getenv("ANALYTICS_URL", "http://localhost:8081"),
		EEAccount:        getenv("EE_ACCOUNT", ""),
		EEPrivateKeyFile: getenv("EE_PRIVATE_KEY_FILE", ""),
		RemoteTimeout:    getduration("REMOTE_TIMEOUT", 30*time.Second),

		PolygonDir: getenv("POLYGON_DIR", "static/polygons"),
		WikiURL:    getenv("WIKI_URL", "http://en.wikipedia.org/wiki/"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getduration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
