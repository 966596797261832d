package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.DefaultLang != "en" {
		t.Errorf("expected default lang en, got %s", cfg.DefaultLang)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("expected default session TTL 24h, got %s", cfg.SessionTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DEFAULT_LANG", "ES")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("REDIS_TLS", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg := Load()

	if cfg.Port != "9999" {
		t.Errorf("expected port 9999, got %s", cfg.Port)
	}
	if cfg.DefaultLang != "es" {
		t.Errorf("expected lang es, got %s", cfg.DefaultLang)
	}
	if cfg.SessionTTL != time.Hour {
		t.Errorf("expected session TTL 1h, got %s", cfg.SessionTTL)
	}
	if !cfg.RedisTLS {
		t.Error("expected RedisTLS true")
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Errorf("unexpected CORS origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadInvalidLangFallsBack(t *testing.T) {
	t.Setenv("DEFAULT_LANG", "fr")

	if cfg := Load(); cfg.DefaultLang != "en" {
		t.Errorf("expected unsupported lang to fall back to en, got %s", cfg.DefaultLang)
	}
}
