package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPaths(t *testing.T) {
	cfg := Default("/tmp/ws")

	if cfg.Database.Path != "/tmp/ws/memory/metacognition.json" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
	if cfg.Boot.Path != "/tmp/ws/BOOT.md" {
		t.Errorf("Boot.Path = %q", cfg.Boot.Path)
	}
	if cfg.Boot.StartMarker == "" || cfg.Boot.EndMarker == "" {
		t.Error("sentinel markers not set")
	}
	if cfg.Daemon.Schedule == "" {
		t.Error("daemon schedule not set")
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	ws := t.TempDir()
	cfg, err := LoadFrom(ws)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Workspace != ws {
		t.Errorf("Workspace = %q, want %q", cfg.Workspace, ws)
	}
	if cfg.Database.Path != filepath.Join(ws, "memory", "metacognition.json") {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
}

func TestLoadFromOverlay(t *testing.T) {
	ws := t.TempDir()
	yaml := `
database:
  path: state/beliefs.json
boot:
  path: /srv/agent/BOOT.md
evidence:
  recent_lines: 5
`
	if err := os.WriteFile(filepath.Join(ws, ConfigFileName), []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(ws)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Database.Path != filepath.Join(ws, "state", "beliefs.json") {
		t.Errorf("relative path not workspace-resolved: %q", cfg.Database.Path)
	}
	if cfg.Boot.Path != "/srv/agent/BOOT.md" {
		t.Errorf("absolute path rewritten: %q", cfg.Boot.Path)
	}
	if cfg.Evidence.RecentLines != 5 {
		t.Errorf("RecentLines = %d, want 5", cfg.Evidence.RecentLines)
	}
	// Untouched sections keep their defaults.
	if cfg.Boot.StartMarker != "<!-- LIVE_STATE_START -->" {
		t.Errorf("StartMarker lost default: %q", cfg.Boot.StartMarker)
	}
}

func TestLoadFromBadYAML(t *testing.T) {
	ws := t.TempDir()
	if err := os.WriteFile(filepath.Join(ws, ConfigFileName), []byte(":\nnot yaml {"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(ws); err == nil {
		t.Error("expected error for malformed config")
	}
}
