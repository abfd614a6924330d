package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("MONGODB_URI", "mongodb://localhost:27017/testdb")
	os.Setenv("MONGODB_DATABASE", "portfolio_test")
	os.Setenv("ADMIN_EMAIL", "owner@example.com")
	os.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")
	os.Setenv("JWT_SECRET", "testsecret123456789012345678901234")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.MongoDB.URI == "" || cfg.Auth.OwnerEmail == "" {
		t.Fatalf("unexpected empty config values: %+v", cfg)
	}
	if cfg.Auth.TokenTTL != 7*24*time.Hour {
		t.Fatalf("default token TTL should be 7 days, got %v", cfg.Auth.TokenTTL)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.Port == "" {
		t.Fatalf("server port default missing")
	}
	if cfg.RateLimit.Burst <= 0 {
		t.Fatalf("rate limit burst default missing")
	}
}
