package config

import (
	"strings"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/sports?sslmode=disable")
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	// Clear optional knobs so defaults are observable.
	t.Setenv("SERVER_PORT", "")
	t.Setenv("PUBLIC_BASE_URL", "")
	t.Setenv("UPLOAD_DIR", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("DB_MAX_OPEN_CONNS", "")
	t.Setenv("STORAGE_BACKEND", "")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("port = %d, want 8080", cfg.ServerPort)
	}
	if cfg.PublicBaseURL != "http://localhost:8080" {
		t.Errorf("public base URL = %q", cfg.PublicBaseURL)
	}
	if cfg.UploadDir != "./uploads" {
		t.Errorf("upload dir = %q", cfg.UploadDir)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Errorf("allowed origins = %v", cfg.AllowedOrigins)
	}
	if cfg.DBMaxOpenConns != 5 {
		t.Errorf("max open conns = %d, want 5", cfg.DBMaxOpenConns)
	}
	if cfg.StorageBackend != "local" {
		t.Errorf("storage backend = %q, want local", cfg.StorageBackend)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DATABASE_URL", "")
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "DATABASE_URL") {
		t.Errorf("missing DATABASE_URL: got %v", err)
	}

	setRequiredEnv(t)
	t.Setenv("JWT_SECRET_KEY", "")
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "JWT_SECRET_KEY") {
		t.Errorf("missing JWT_SECRET_KEY: got %v", err)
	}
}

func TestLoad_ParsesOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("PUBLIC_BASE_URL", "https://sports.example.edu/")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.edu, https://b.example.edu")
	t.Setenv("DB_MAX_OPEN_CONNS", "12")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerPort != 9000 {
		t.Errorf("port = %d", cfg.ServerPort)
	}
	if cfg.PublicBaseURL != "https://sports.example.edu" {
		t.Errorf("public base URL = %q, want trailing slash trimmed", cfg.PublicBaseURL)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example.edu" {
		t.Errorf("allowed origins = %v", cfg.AllowedOrigins)
	}
	if cfg.DBMaxOpenConns != 12 {
		t.Errorf("max open conns = %d", cfg.DBMaxOpenConns)
	}
}

func TestLoad_RejectsBadValues(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_PORT", "notaport")
	if _, err := Load(); err == nil {
		t.Error("bad SERVER_PORT accepted")
	}

	setRequiredEnv(t)
	t.Setenv("SERVER_PORT", "70000")
	if _, err := Load(); err == nil {
		t.Error("out-of-range SERVER_PORT accepted")
	}

	setRequiredEnv(t)
	t.Setenv("DB_MAX_OPEN_CONNS", "-1")
	if _, err := Load(); err == nil {
		t.Error("negative DB_MAX_OPEN_CONNS accepted")
	}

	setRequiredEnv(t)
	t.Setenv("STORAGE_BACKEND", "r2")
	if _, err := Load(); err == nil {
		t.Error("r2 backend without credentials accepted")
	}
}
