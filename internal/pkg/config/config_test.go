package config

import (
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(envconfig.MapLookuper(map[string]string{"JWT_SECRET": "s"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" || cfg.LogLevel != "info" || !cfg.Development() {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("expected wildcard origins, got %v", cfg.CORSOrigins)
	}
	if cfg.TokenTTL != 12*time.Hour || cfg.ShutdownTimeout != 10*time.Second || cfg.ActionBuffer != 64 {
		t.Fatalf("unexpected durations %+v", cfg)
	}
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":    "s",
		"ENV":           "production",
		"TOKEN_TTL":     "30m",
		"ACTION_BUFFER": "8",
		"CORS_ORIGINS":  "https://console.acme.io,http://localhost:5173",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Development() || cfg.TokenTTL != 30*time.Minute || cfg.ActionBuffer != 8 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://localhost:5173" {
		t.Fatalf("unexpected origins %v", cfg.CORSOrigins)
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	if _, err := LoadFrom(envconfig.MapLookuper(map[string]string{})); err == nil {
		t.Fatal("expected error without JWT_SECRET")
	}
	if _, err := LoadFrom(envconfig.MapLookuper(map[string]string{"JWT_SECRET": "s", "ACTION_BUFFER": "0"})); err == nil {
		t.Fatal("expected error for zero buffer")
	}
}
