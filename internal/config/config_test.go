package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.test.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing config file must not be an error, got %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("expected default port 3000, got %d", cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("expected default driver sqlite, got %q", cfg.Database.Driver)
	}
	if cfg.Database.Path != "lifeline.db" {
		t.Errorf("expected default sqlite path, got %q", cfg.Database.Path)
	}
	if cfg.Redis.Enabled {
		t.Error("expected Redis disabled by default")
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8080
database:
  driver: mysql
  host: db.internal
  port: 3306
  user: lifeline
  password: secret
  name: lifeline
redis:
  enabled: true
  host: cache.internal
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Database.Driver != "mysql" {
		t.Errorf("expected driver mysql, got %q", cfg.Database.Driver)
	}
	if !cfg.Redis.Enabled || cfg.Redis.Host != "cache.internal" {
		t.Errorf("unexpected redis config: %+v", cfg.Redis)
	}

	dsn := cfg.Database.DSN()
	want := "lifeline:secret@tcp(db.internal:3306)/lifeline?charset=utf8mb4&parseTime=True&loc=Local"
	if dsn != want {
		t.Errorf("unexpected DSN:\n got %s\nwant %s", dsn, want)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("SQLITE_PATH", "/data/timeline.db")
	t.Setenv("REDIS_ENABLED", "true")

	path := writeConfig(t, "server:\n  port: 8080\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("expected env PORT to win, got %d", cfg.Server.Port)
	}
	if cfg.Database.Path != "/data/timeline.db" {
		t.Errorf("expected env SQLITE_PATH to win, got %q", cfg.Database.Path)
	}
	if !cfg.Redis.Enabled {
		t.Error("expected REDIS_ENABLED=true to enable Redis")
	}
}

func TestIsDevelopment(t *testing.T) {
	cfg := &Config{Env: "local"}
	if !cfg.IsDevelopment() {
		t.Error("local must count as development")
	}
	cfg.Env = "production"
	if cfg.IsDevelopment() {
		t.Error("production must not count as development")
	}
}
