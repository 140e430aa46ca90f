package config

import (
	"testing"
	"time"
)

func TestLoadCacheConfigDefaults(t *testing.T) {
	for _, k := range []string{"CACHE_ENABLED", "CACHE_METHODS", "CACHE_TTL", "CACHE_KEY_STRATEGY", "CACHE_PREFIX", "CACHE_MAX_BODY_BYTES"} {
		t.Setenv(k, "")
	}
	cfg := LoadCacheConfig()
	if !cfg.Enabled {
		t.Errorf("expected caching enabled by default")
	}
	if !cfg.Methods["GET"] || len(cfg.Methods) != 1 {
		t.Errorf("expected only GET cached by default, got %v", cfg.Methods)
	}
	if cfg.TTL != 30*time.Second {
		t.Errorf("default TTL = %s, want 30s", cfg.TTL)
	}
	if cfg.KeyStrategy != "route_query" {
		t.Errorf("default key strategy = %q, want route_query", cfg.KeyStrategy)
	}
	if cfg.Prefix != "hotel:cache" {
		t.Errorf("default prefix = %q, want hotel:cache", cfg.Prefix)
	}
	if cfg.MaxBodyBytes != 1048576 {
		t.Errorf("default max body bytes = %d, want 1048576", cfg.MaxBodyBytes)
	}
}

func TestParseMethodsNormalizes(t *testing.T) {
	m := parseMethods(" get , Head ,,POST ")
	for _, want := range []string{"GET", "HEAD", "POST"} {
		if !m[want] {
			t.Errorf("expected %s in parsed methods, got %v", want, m)
		}
	}
	if len(m) != 3 {
		t.Errorf("expected 3 methods, got %v", m)
	}
}

func TestLoadRateLimitConfigDefaults(t *testing.T) {
	for _, k := range []string{
		"RATE_LIMIT_ENABLED", "RATE_LIMIT_CAPACITY", "RATE_LIMIT_REFILL_TOKENS",
		"RATE_LIMIT_REFILL_INTERVAL", "RATE_LIMIT_TTL", "RATE_LIMIT_KEY_STRATEGY",
		"RATE_LIMIT_PREFIX", "RATE_LIMIT_DEBUG", "RATE_LIMIT_BURST", "RATE_LIMIT_REFILL_EVERY",
	} {
		t.Setenv(k, "")
	}
	cfg := LoadRateLimitConfig()
	if !cfg.Enabled {
		t.Errorf("expected rate limiting enabled by default")
	}
	if cfg.Capacity != 60 {
		t.Errorf("default capacity = %d, want 60", cfg.Capacity)
	}
	if cfg.RefillTokens != 1 || cfg.RefillInterval != time.Second {
		t.Errorf("default refill = %d per %s, want 1 per 1s", cfg.RefillTokens, cfg.RefillInterval)
	}
	if cfg.KeyStrategy != "ip_user_route" {
		t.Errorf("default key strategy = %q, want ip_user_route", cfg.KeyStrategy)
	}
	if cfg.Prefix != "hotel:rl" {
		t.Errorf("default prefix = %q, want hotel:rl", cfg.Prefix)
	}
}

func TestLoadRateLimitConfigClamps(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_TOKENS", "-3")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "2s")
	t.Setenv("RATE_LIMIT_TTL", "1s")
	cfg := LoadRateLimitConfig()
	if cfg.Capacity != 1 {
		t.Errorf("capacity clamp = %d, want 1", cfg.Capacity)
	}
	if cfg.RefillTokens != 1 {
		t.Errorf("refill tokens clamp = %d, want 1", cfg.RefillTokens)
	}
	if want := 10 * time.Second; cfg.TTL != want {
		t.Errorf("TTL clamp = %s, want %s (5x refill interval)", cfg.TTL, want)
	}
}

func TestLoadRateLimitConfigBurstOverride(t *testing.T) {
	t.Setenv("RATE_LIMIT_BURST", "120")
	t.Setenv("RATE_LIMIT_REFILL_EVERY", "500ms")
	cfg := LoadRateLimitConfig()
	if cfg.Capacity != 120 {
		t.Errorf("burst override capacity = %d, want 120", cfg.Capacity)
	}
	if cfg.RefillTokens != 1 || cfg.RefillInterval != 500*time.Millisecond {
		t.Errorf("refill override = %d per %s, want 1 per 500ms", cfg.RefillTokens, cfg.RefillInterval)
	}
}
