package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFileDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Driver != DefaultDriver {
		t.Errorf("Driver = %q, want %q", cfg.Driver, DefaultDriver)
	}
	if cfg.OutDir != DefaultOutDir {
		t.Errorf("OutDir = %q, want %q", cfg.OutDir, DefaultOutDir)
	}
	if cfg.Dev.Host != DefaultHost || cfg.Dev.Port != DefaultPort {
		t.Errorf("Dev = %+v", cfg.Dev)
	}
	if cfg.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", cfg.Dir(), dir)
	}
}

func TestLoadFileValues(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{
		"driver": "react",
		"outDir": "gen",
		"roots": [
			{"dir": "pages"},
			{"dir": "entrypoints/popup/pages", "scope": "popup"}
		],
		"dev": {"port": 4000}
	}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Driver != "react" {
		t.Errorf("Driver = %q", cfg.Driver)
	}
	if len(cfg.Roots) != 2 {
		t.Fatalf("Roots = %+v", cfg.Roots)
	}
	if cfg.Roots[0].Scope != GlobalScope {
		t.Errorf("unset root scope = %q, want %q", cfg.Roots[0].Scope, GlobalScope)
	}
	if cfg.Roots[1].Scope != "popup" {
		t.Errorf("popup root scope = %q", cfg.Roots[1].Scope)
	}
	if cfg.DevAddress() != "localhost:4000" {
		t.Errorf("DevAddress() = %q", cfg.DevAddress())
	}
	if cfg.OutPath() != filepath.Join(dir, "gen") {
		t.Errorf("OutPath() = %q", cfg.OutPath())
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestLoadFileInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{driver:}`)

	if _, err := Load(dir); err == nil {
		t.Fatal("expected an error for invalid JSON")
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"driver": "vue", "dev": {"port": 4000}}`)

	t.Setenv("PAGEGEN_DRIVER", "react")
	t.Setenv("PAGEGEN_DEV_PORT", "5000")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Driver != "react" {
		t.Errorf("Driver = %q, want env override react", cfg.Driver)
	}
	if cfg.Dev.Port != 5000 {
		t.Errorf("Dev.Port = %d, want env override 5000", cfg.Dev.Port)
	}
}

func TestNewAnchorsDir(t *testing.T) {
	cfg := New("/proj")
	if cfg.SrcPath() != filepath.Join("/proj", ".") {
		t.Errorf("SrcPath() = %q", cfg.SrcPath())
	}
	if cfg.Path() != "" {
		t.Errorf("Path() = %q, want empty for defaults", cfg.Path())
	}
}
