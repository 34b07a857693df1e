package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\") failed: %v", err)
	}
	if cfg.Logging != "info" {
		t.Errorf("Logging = %q, want info", cfg.Logging)
	}
	if !cfg.Adapters.Console {
		t.Error("console adapter should default to enabled")
	}
	if cfg.Adapters.Prometheus {
		t.Error("prometheus adapter should default to disabled")
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
logging: verbose
service: checkout
adapters:
  console: false
  prometheus: true
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if cfg.Logging != "verbose" {
		t.Errorf("Logging = %q, want verbose", cfg.Logging)
	}
	if cfg.Service != "checkout" {
		t.Errorf("Service = %q, want checkout", cfg.Service)
	}
	if cfg.Adapters.Console {
		t.Error("console should be disabled by the file")
	}
	if !cfg.Adapters.Prometheus {
		t.Error("prometheus should be enabled by the file")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("logging: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}
