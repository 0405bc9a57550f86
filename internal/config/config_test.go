package config

import (
	"testing"
	"time"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv()
	if cfg.Addr != ":8080" {
		t.Fatalf("Addr: got %q", cfg.Addr)
	}
	if cfg.CacheTTL != 24*time.Hour {
		t.Fatalf("CacheTTL: got %v", cfg.CacheTTL)
	}
	if cfg.RemoteTimeout != 30*time.Second {
		t.Fatalf("RemoteTimeout: got %v", cfg.RemoteTimeout)
	}
	if cfg.PolygonDir != "static/polygons" {
		t.Fatalf("PolygonDir: got %q", cfg.PolygonDir)
	}
	if cfg.WikiURL != "http://en.wikipedia.org/wiki/" {
		t.Fatalf("WikiURL: got %q", cfg.WikiURL)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("CACHE_TTL", "1h")
	t.Setenv("EE_ACCOUNT", "svc@example.iam")
	t.Setenv("CACHE_TTL_BOGUS", "nope")

	cfg := FromEnv()
	if cfg.Addr != ":9999" {
		t.Fatalf("Addr: got %q", cfg.Addr)
	}
	if cfg.CacheTTL != time.Hour {
		t.Fatalf("CacheTTL: got %v", cfg.CacheTTL)
	}
	if cfg.EEAccount != "svc@example.iam" {
		t.Fatalf("EEAccount: got %q", cfg.EEAccount)
	}
}

func TestFromEnv_BadDurationFallsBack(t *testing.T) {
	t.Setenv("CACHE_TTL", "not-a-duration")
	cfg := FromEnv()
	if cfg.CacheTTL != 24*time.Hour {
		t.Fatalf("CacheTTL: got %v", cfg.CacheTTL)
	}
}
