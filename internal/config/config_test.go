package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_FileValues(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8080
auth:
  jwt_secret: file-secret
delivery:
  free_threshold: 7000
  default_fee: 300
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Delivery.FreeThresholdAmount().String() != "7000" {
		t.Errorf("FreeThreshold = %s, want 7000", cfg.Delivery.FreeThresholdAmount())
	}
	if cfg.Delivery.DefaultFeeAmount().String() != "300" {
		t.Errorf("DefaultFee = %s, want 300", cfg.Delivery.DefaultFeeAmount())
	}
	// Untouched sections keep their defaults.
	if cfg.Database.Port != 5432 {
		t.Errorf("Database.Port = %d, want default 5432", cfg.Database.Port)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8080
auth:
  jwt_secret: file-secret
`)

	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("FREE_DELIVERY_THRESHOLD", "10000")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want env override 9090", cfg.Server.Port)
	}
	if cfg.Auth.JWTSecret != "env-secret" {
		t.Errorf("JWTSecret = %s, want env override", cfg.Auth.JWTSecret)
	}
	if cfg.Delivery.FreeThresholdAmount().String() != "10000" {
		t.Errorf("FreeThreshold = %s, want 10000", cfg.Delivery.FreeThresholdAmount())
	}
}

func TestLoad_MissingFileUsesEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-only-secret")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Auth.JWTSecret != "env-only-secret" {
		t.Errorf("JWTSecret = %s, want env value", cfg.Auth.JWTSecret)
	}
	if cfg.Server.Port != 4000 {
		t.Errorf("Server.Port = %d, want default 4000", cfg.Server.Port)
	}
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8080
`)
	if _, err := Load(path); err == nil {
		t.Fatal("Load() without jwt secret expected error")
	}
}

func TestDatabaseURL_EnvShortCircuit(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/custom")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := cfg.DatabaseURL(); got != "postgres://u:p@db:5432/custom" {
		t.Errorf("DatabaseURL() = %s, want DATABASE_URL value", got)
	}
}
