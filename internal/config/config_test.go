package config

import (
	"os"
	"reflect"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "LISTEN_ADDR", "DATABASE_URL", "DATABASE_PATH", "GIN_MODE",
		"LOG", "LOG_LEVEL", "LOG_FILE", "CORS_ALLOWED_ORIGINS", "SEED_ON_START",
	} {
		t.Setenv(key, "")
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	if cfg.Port != "8080" || cfg.ListenAddr != ":8080" {
		t.Fatalf("unexpected listen settings port=%q addr=%q", cfg.Port, cfg.ListenAddr)
	}
	if cfg.DatabaseURL != "directory.db" {
		t.Fatalf("expected default database, got %q", cfg.DatabaseURL)
	}
	if cfg.GinMode != "release" || cfg.Log != "prod" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected mode settings %+v", cfg)
	}
	if cfg.LogFile != "" {
		t.Fatalf("expected no log file, got %q", cfg.LogFile)
	}
	if !reflect.DeepEqual(cfg.CORSAllowedOrigins, []string{"*"}) {
		t.Fatalf("expected wildcard origin, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.SeedOnStart {
		t.Fatalf("expected seeding to be off by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://directory@localhost/directory")
	t.Setenv("LOG", "DEV")
	t.Setenv("LOG_LEVEL", "Debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://navarrolocal.com, https://admin.navarrolocal.com,")
	t.Setenv("SEED_ON_START", "true")

	cfg := Load()
	if cfg.ListenAddr != ":9000" {
		t.Fatalf("expected :9000, got %q", cfg.ListenAddr)
	}
	if cfg.DatabaseURL != "postgres://directory@localhost/directory" {
		t.Fatalf("unexpected database url %q", cfg.DatabaseURL)
	}
	if cfg.Log != "dev" || cfg.LogLevel != "debug" {
		t.Fatalf("expected lowercased log settings, got %q %q", cfg.Log, cfg.LogLevel)
	}
	want := []string{"https://navarrolocal.com", "https://admin.navarrolocal.com"}
	if !reflect.DeepEqual(cfg.CORSAllowedOrigins, want) {
		t.Fatalf("expected %v, got %v", want, cfg.CORSAllowedOrigins)
	}
	if !cfg.SeedOnStart {
		t.Fatalf("expected seeding to be on")
	}
}

func TestLoadFallsBackToDatabasePath(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_PATH", "data/navarro.db")

	if got := Load().DatabaseURL; got != "data/navarro.db" {
		t.Fatalf("expected DATABASE_PATH fallback, got %q", got)
	}
}

func TestValidateGinMode(t *testing.T) {
	tests := []struct {
		mode    string
		wantErr bool
	}{
		{mode: "debug"},
		{mode: "release"},
		{mode: "test"},
		{mode: "production", wantErr: true},
		{mode: "Release", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			err := AppConfig{GinMode: tt.mode}.Validate()
			if tt.wantErr {
				if err == nil || !strings.Contains(err.Error(), "GIN_MODE") {
					t.Fatalf("expected GIN_MODE error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadRejectsUnknownGinMode(t *testing.T) {
	clearEnv(t)
	t.Setenv("GIN_MODE", "staging")

	if err := Load().Validate(); err == nil {
		t.Fatalf("expected unknown GIN_MODE to be rejected")
	}
}
