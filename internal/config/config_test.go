package config

import (
	"testing"
	"time"
)

func TestLoadRequiresSigningSecret(t *testing.T) {
	// A missing signing key must fail the boot, never fall back to a
	// built-in default.
	t.Setenv("AUTH_JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load must fail without AUTH_JWT_SECRET")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Auth.TokenTTL != time.Hour {
		t.Errorf("Expected default TTL 1h, got %s", cfg.Auth.TokenTTL)
	}
	if cfg.Auth.DefaultRole != "student" {
		t.Errorf("Expected default role student, got %s", cfg.Auth.DefaultRole)
	}
	if cfg.Database.MaxOpenConns != 25 {
		t.Errorf("Expected 25 max open conns, got %d", cfg.Database.MaxOpenConns)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("AUTH_TOKEN_TTL", "30m")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_NAME", "cms_test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Auth.TokenTTL != 30*time.Minute {
		t.Errorf("Expected TTL 30m, got %s", cfg.Auth.TokenTTL)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Server.Port)
	}
	if cfg.Database.Name != "cms_test" {
		t.Errorf("Expected db cms_test, got %s", cfg.Database.Name)
	}
}

func TestGetDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host: "db", Port: "5433", User: "cms", Password: "pw", Name: "cms", SSLMode: "require",
	}
	want := "host=db port=5433 user=cms password=pw dbname=cms sslmode=require"
	if got := cfg.GetDSN(); got != want {
		t.Errorf("GetDSN() = %q, want %q", got, want)
	}
}
