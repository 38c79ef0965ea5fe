package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`format: json
color: never
no_mmap: true
log_level: debug
server_address: 0.0.0.0:9000
max_body_bytes: 4096
max_results: 8
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format != "json" || cfg.Color != "never" || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.NoMmap == nil || !*cfg.NoMmap {
		t.Fatal("no_mmap not parsed")
	}
	if cfg.ServerAddress != "0.0.0.0:9000" || cfg.MaxBodyBytes == nil || *cfg.MaxBodyBytes != 4096 {
		t.Fatalf("server settings not parsed: %+v", cfg)
	}
	if cfg.MaxResults == nil || *cfg.MaxResults != 8 {
		t.Fatal("max_results not parsed")
	}
}

func TestLoadConfigMissing(t *testing.T) {
	t.Parallel()
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if cfg != (Config{}) {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
	if cfg, err := LoadConfig(""); err != nil || cfg != (Config{}) {
		t.Fatalf("empty path: %+v %v", cfg, err)
	}
}

func TestConfigPath(t *testing.T) {
	if got := configPath("/etc/elfinfo.yaml"); got != "/etc/elfinfo.yaml" {
		t.Fatalf("flag value must win, got %q", got)
	}

	t.Setenv(envConfigPath, "/tmp/from-env.yaml")
	if got := configPath(""); got != "/tmp/from-env.yaml" {
		t.Fatalf("env override: got %q", got)
	}

	t.Setenv(envConfigPath, "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	t.Setenv("HOME", "/home/test")
	if got, want := configPath(""), filepath.Join("/xdg", "elfinfo", "config.yaml"); got != want {
		t.Fatalf("default path: got %q, want %q", got, want)
	}
}
