package config

import (
	"os"
	"path/filepath"
	"testing"
)

// Load is guarded by sync.Once, so a single test function exercises it.
func TestLoad_FileValuesAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`server:
  address: 127.0.0.1
  port: 5000
jwt:
  secret: from-file
  expire_hours: 24
database:
  path: data/test.db
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("ECOCRED_JWT_SECRET", "from-env")
	t.Setenv("ECOCRED_SERVER_PORT", "9000")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// env overrides win over file values
	if cfg.JWT.Secret != "from-env" {
		t.Errorf("JWT.Secret = %q, want env override %q", cfg.JWT.Secret, "from-env")
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want env override 9000", cfg.Server.Port)
	}

	// keys without overrides keep their file values
	if cfg.Server.Address != "127.0.0.1" {
		t.Errorf("Server.Address = %q, want %q", cfg.Server.Address, "127.0.0.1")
	}
	if cfg.JWT.ExpireHours != 24 {
		t.Errorf("JWT.ExpireHours = %d, want 24", cfg.JWT.ExpireHours)
	}
	if cfg.Database.Path != "data/test.db" {
		t.Errorf("Database.Path = %q, want %q", cfg.Database.Path, "data/test.db")
	}
}
