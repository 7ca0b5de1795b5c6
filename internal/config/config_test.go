package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Mode != "comparison" {
		t.Errorf("Expected default mode comparison, got %s", cfg.Mode)
	}
	if cfg.CameraID != 0 {
		t.Errorf("Expected default camera 0, got %d", cfg.CameraID)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("Expected default addr :8080, got %s", cfg.HTTPAddr)
	}
	if cfg.MotionThreshold != 1.0 {
		t.Errorf("Expected default motion threshold 1.0, got %f", cfg.MotionThreshold)
	}
	if !strings.HasSuffix(cfg.DBPath, filepath.Join(".ganitha", "ganitha.db")) {
		t.Errorf("Expected db path under .ganitha, got %s", cfg.DBPath)
	}
	if !strings.HasSuffix(cfg.PluginDir, filepath.Join(".ganitha", "plugins")) {
		t.Errorf("Expected plugin dir under .ganitha, got %s", cfg.PluginDir)
	}
	if cfg.StaticDir != "" {
		t.Errorf("Expected empty static dir, got %s", cfg.StaticDir)
	}
}

func TestDefaultPath(t *testing.T) {
	path := DefaultPath()
	if !strings.HasSuffix(path, filepath.Join(".ganitha", "config.toml")) {
		t.Errorf("Expected config path under .ganitha, got %s", path)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Missing config file should not be an error, got %v", err)
	}

	// Defaults survive untouched.
	if cfg.Mode != "comparison" {
		t.Errorf("Expected default mode comparison, got %s", cfg.Mode)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("Expected default addr :8080, got %s", cfg.HTTPAddr)
	}
}

func TestLoad_Overlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `mode = "arithmetic"
http_addr = ":9090"
motion_threshold = 2.5
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Mode != "arithmetic" {
		t.Errorf("Expected mode arithmetic, got %s", cfg.Mode)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Errorf("Expected addr :9090, got %s", cfg.HTTPAddr)
	}
	if cfg.MotionThreshold != 2.5 {
		t.Errorf("Expected motion threshold 2.5, got %f", cfg.MotionThreshold)
	}

	// Keys absent from the file keep defaults.
	if cfg.CameraID != 0 {
		t.Errorf("Expected default camera 0, got %d", cfg.CameraID)
	}
	if !strings.HasSuffix(cfg.DBPath, "ganitha.db") {
		t.Errorf("Expected default db path, got %s", cfg.DBPath)
	}
}

func TestLoad_AllKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `mode = "comparison"
camera_id = 2
http_addr = "127.0.0.1:9000"
static_dir = "/srv/ganitha/web"
plugin_dir = "/srv/ganitha/plugins"
db_path = "/srv/ganitha/ganitha.db"
motion_threshold = 0.5
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.CameraID != 2 {
		t.Errorf("Expected camera 2, got %d", cfg.CameraID)
	}
	if cfg.StaticDir != "/srv/ganitha/web" {
		t.Errorf("Expected static dir /srv/ganitha/web, got %s", cfg.StaticDir)
	}
	if cfg.PluginDir != "/srv/ganitha/plugins" {
		t.Errorf("Expected plugin dir /srv/ganitha/plugins, got %s", cfg.PluginDir)
	}
	if cfg.DBPath != "/srv/ganitha/ganitha.db" {
		t.Errorf("Expected db path /srv/ganitha/ganitha.db, got %s", cfg.DBPath)
	}
	if cfg.MotionThreshold != 0.5 {
		t.Errorf("Expected motion threshold 0.5, got %f", cfg.MotionThreshold)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("mode = [broken"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Expected error for invalid TOML")
	}
	if !strings.Contains(err.Error(), "decode") {
		t.Errorf("Expected decode error, got %v", err)
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	if err == nil {
		t.Fatal("Expected error for empty path")
	}
}
