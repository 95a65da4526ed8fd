package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/library")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ACCESS_TOKEN_TTL", "2m")
	t.Setenv("REFRESH_TOKEN_TTL", "72h")
	t.Setenv("HTTP_ADDRESS", ":8080")
}

func TestLoad_Success(t *testing.T) {
	setRequired(t)
	t.Setenv("ALLOWED_ORIGINS", `["https://app.example.com"]`)
	t.Setenv("ALLOW_CREDENTIALS", "true")
	t.Setenv("UPLOAD_DIR", "/tmp/covers")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AccessTokenTTL != 2*time.Minute {
		t.Fatalf("AccessTokenTTL want 2m, got %v", cfg.AccessTokenTTL)
	}
	if cfg.RefreshTokenTTL != 72*time.Hour {
		t.Fatalf("RefreshTokenTTL want 72h, got %v", cfg.RefreshTokenTTL)
	}
	if cfg.UploadDir != "/tmp/covers" {
		t.Fatalf("UploadDir want /tmp/covers, got %s", cfg.UploadDir)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "https://app.example.com" {
		t.Fatalf("AllowedOrigins got %v", cfg.AllowedOrigins)
	}
	if !cfg.AllowCredentials {
		t.Fatal("AllowCredentials want true")
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UploadDir != "./uploads" {
		t.Fatalf("UploadDir default want ./uploads, got %s", cfg.UploadDir)
	}
	if cfg.RateLimit != 50 || cfg.RateLimitBurst != 100 {
		t.Fatalf("rate limit defaults got %d/%d", cfg.RateLimit, cfg.RateLimitBurst)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error due to missing JWT_SECRET, got nil")
	}
}

func TestLoad_BadTTL(t *testing.T) {
	setRequired(t)
	t.Setenv("ACCESS_TOKEN_TTL", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("expected error due to malformed ACCESS_TOKEN_TTL, got nil")
	}
}

func TestLoad_NegativeTTL(t *testing.T) {
	setRequired(t)
	t.Setenv("REFRESH_TOKEN_TTL", "-1h")

	if _, err := Load(); err == nil {
		t.Fatal("expected error due to negative REFRESH_TOKEN_TTL, got nil")
	}
}
