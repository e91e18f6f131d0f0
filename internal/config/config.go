// Package config holds all metacog configuration. Paths and sentinel strings
// are passed explicitly into each component rather than read from ambient
// globals.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is looked up inside the workspace.
const ConfigFileName = "metacog.yaml"

// Config is the root configuration structure. It is read-only after Load()
// returns.
type Config struct {
	Workspace string         `yaml:"workspace"`
	Database  DatabaseConfig `yaml:"database"`
	Boot      BootConfig     `yaml:"boot"`
	Evidence  EvidenceConfig `yaml:"evidence"`
	Daemon    DaemonConfig   `yaml:"daemon"`
	Legacy    LegacyConfig   `yaml:"legacy"`
}

// DatabaseConfig locates the belief document.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// BootConfig describes the external context document the lens is injected
// into. The engine never creates this file.
type BootConfig struct {
	Path        string `yaml:"path"`
	StartMarker string `yaml:"start_marker"`
	EndMarker   string `yaml:"end_marker"`
}

// EvidenceConfig drives the evidence gatherer.
type EvidenceConfig struct {
	ProbeCommand string `yaml:"probe_command"` // shell command whose first output line becomes the system status
	ProbeTimeout int    `yaml:"probe_timeout"` // seconds
	ActivityLog  string `yaml:"activity_log"`  // plain-text log tailed for recent activity
	RecentLines  int    `yaml:"recent_lines"`  // how many activity lines to include
}

// DaemonConfig controls the periodic gather→compile→inject loop.
type DaemonConfig struct {
	Schedule string `yaml:"schedule"` // cron spec, e.g. "@every 15m"
}

// LegacyConfig locates the old-schema documents consumed by `metacog migrate`.
type LegacyConfig struct {
	GeometryPath   string `yaml:"geometry_path"`
	PerceptionPath string `yaml:"perception_path"`
}

// Default returns a Config with all paths resolved under the workspace.
func Default(workspace string) Config {
	return Config{
		Workspace: workspace,
		Database: DatabaseConfig{
			Path: filepath.Join(workspace, "memory", "metacognition.json"),
		},
		Boot: BootConfig{
			Path:        filepath.Join(workspace, "BOOT.md"),
			StartMarker: "<!-- LIVE_STATE_START -->",
			EndMarker:   "<!-- LIVE_STATE_END -->",
		},
		Evidence: EvidenceConfig{
			ProbeTimeout: 15,
			ActivityLog:  filepath.Join(workspace, "activity.log"),
			RecentLines:  3,
		},
		Daemon: DaemonConfig{
			Schedule: "@every 15m",
		},
		Legacy: LegacyConfig{
			GeometryPath:   filepath.Join(workspace, "memory", "geometry_patterns.json"),
			PerceptionPath: filepath.Join(workspace, "memory", "perception.json"),
		},
	}
}

// Load resolves the workspace (METACOG_WORKSPACE env var, else the current
// directory), applies defaults, and overlays <workspace>/metacog.yaml when
// present. A missing config file is not an error.
func Load() (Config, error) {
	workspace := os.Getenv("METACOG_WORKSPACE")
	if workspace == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Config{}, err
		}
		workspace = wd
	}
	return LoadFrom(workspace)
}

// LoadFrom builds the config for an explicit workspace directory.
func LoadFrom(workspace string) (Config, error) {
	cfg := Default(workspace)

	data, err := os.ReadFile(filepath.Join(workspace, ConfigFileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	// Relative paths in the file are workspace-relative.
	cfg.Database.Path = resolve(workspace, cfg.Database.Path)
	cfg.Boot.Path = resolve(workspace, cfg.Boot.Path)
	cfg.Evidence.ActivityLog = resolve(workspace, cfg.Evidence.ActivityLog)
	cfg.Legacy.GeometryPath = resolve(workspace, cfg.Legacy.GeometryPath)
	cfg.Legacy.PerceptionPath = resolve(workspace, cfg.Legacy.PerceptionPath)
	return cfg, nil
}

func resolve(workspace, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(workspace, path)
}
