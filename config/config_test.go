package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	if cfg.Web.Port != 1816 || cfg.Storage.Type != "file" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoadConfigYamlOverrides(t *testing.T) {
	cfile := filepath.Join(t.TempDir(), "catalogd.yml")
	doc := `
web:
  port: 9090
storage:
  type: bolt
  path: /tmp/catalog.db
sync:
  enabled: true
  url: http://replica.local/api/products
`
	if err := os.WriteFile(cfile, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadConfig(cfile)
	if cfg.Web.Port != 9090 {
		t.Errorf("port = %d", cfg.Web.Port)
	}
	if cfg.Storage.Type != "bolt" || cfg.Storage.Path != "/tmp/catalog.db" {
		t.Errorf("storage = %+v", cfg.Storage)
	}
	if !cfg.Sync.Enabled || cfg.Sync.URL != "http://replica.local/api/products" {
		t.Errorf("sync = %+v", cfg.Sync)
	}
	// untouched sections keep their defaults
	if cfg.System.Appid != "catalogd" {
		t.Errorf("appid = %q", cfg.System.Appid)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("CATALOGD_WEB_PORT", "8088")
	t.Setenv("CATALOGD_STORAGE_TYPE", "memory")
	t.Setenv("CATALOGD_BACKUP_ENABLED", "false")

	cfg := LoadConfig("")
	if cfg.Web.Port != 8088 {
		t.Errorf("port = %d", cfg.Web.Port)
	}
	if cfg.Storage.Type != "memory" {
		t.Errorf("storage type = %q", cfg.Storage.Type)
	}
	if cfg.Backup.Enabled {
		t.Error("backup env override ignored")
	}
}

func TestLoadConfigDerivesStoragePath(t *testing.T) {
	cfile := filepath.Join(t.TempDir(), "catalogd.yml")
	doc := `
system:
  workdir: /opt/catalogd
storage:
  type: file
  path: ""
`
	if err := os.WriteFile(cfile, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadConfig(cfile)
	want := filepath.Join("/opt/catalogd", "data", "products.json")
	if cfg.Storage.Path != want {
		t.Errorf("path = %q, want %q", cfg.Storage.Path, want)
	}
}
