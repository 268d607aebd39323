package config

import (
	"testing"
	"time"
)

func TestLoadAuth_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "")
	t.Setenv("LOGIN_RATE_LIMIT_WINDOW_MS", "")
	t.Setenv("LOGIN_RATE_LIMIT_MAX", "")

	cfg := LoadAuth()

	if cfg.Port != 5001 {
		t.Errorf("expected default port 5001, got %d", cfg.Port)
	}
	if cfg.TokenTTL != time.Hour {
		t.Errorf("expected 1h token TTL, got %v", cfg.TokenTTL)
	}
	if cfg.LoginRateLimit.Window != 15*time.Minute {
		t.Errorf("expected 15m window, got %v", cfg.LoginRateLimit.Window)
	}
	if cfg.LoginRateLimit.Max != 10 {
		t.Errorf("expected max 10, got %d", cfg.LoginRateLimit.Max)
	}
	if cfg.LoginBodyLimit != "2KB" {
		t.Errorf("expected 2KB body limit, got %s", cfg.LoginBodyLimit)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestLoadAuth_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9001")
	t.Setenv("LOGIN_RATE_LIMIT_WINDOW_MS", "60000")
	t.Setenv("LOGIN_RATE_LIMIT_MAX", "3")

	cfg := LoadAuth()

	if cfg.Port != 9001 {
		t.Errorf("expected port 9001, got %d", cfg.Port)
	}
	if cfg.LoginRateLimit.Window != time.Minute {
		t.Errorf("expected 1m window, got %v", cfg.LoginRateLimit.Window)
	}
	if cfg.LoginRateLimit.Max != 3 {
		t.Errorf("expected max 3, got %d", cfg.LoginRateLimit.Max)
	}
}

func TestLoad_BadNumericOverridesFallBack(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("MAX_TRANSFER_AMOUNT", "not-a-number")
	t.Setenv("API_RATE_LIMIT_MAX", "-5")

	cfg := LoadAPI()

	if cfg.MaxTransferAmount != 50000 {
		t.Errorf("unparseable max should fall back to 50000, got %v", cfg.MaxTransferAmount)
	}
	if cfg.APIRateLimit.Max != 300 {
		t.Errorf("negative max should fall back to 300, got %d", cfg.APIRateLimit.Max)
	}
}

func TestValidate_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "   ")

	auth := LoadAuth()
	if err := auth.Validate(); err != ErrMissingSecret {
		t.Errorf("auth: expected ErrMissingSecret, got %v", err)
	}

	api := LoadAPI()
	if err := api.Validate(); err != ErrMissingSecret {
		t.Errorf("api: expected ErrMissingSecret, got %v", err)
	}
}

func TestSecret_Trimmed(t *testing.T) {
	t.Setenv("JWT_SECRET", "  padded-secret  ")

	cfg := LoadAuth()
	if cfg.JWTSecret != "padded-secret" {
		t.Errorf("expected trimmed secret, got %q", cfg.JWTSecret)
	}
}
