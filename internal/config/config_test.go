package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	cfg.Normalize()
	if cfg != DefaultConfig() {
		t.Errorf("embedded default = %+v, hardcoded = %+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte("database: /tmp/test.db\nfps: 60\nreplay:\n  speed: 2.0\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Database != "/tmp/test.db" || cfg.FPS != 60 || cfg.Replay.Speed != 2.0 {
		t.Errorf("loaded config = %+v", cfg)
	}
	// Unset fields fall back to defaults
	if cfg.Replay.FastForward != DefaultConfig().Replay.FastForward {
		t.Errorf("fast_forward = %v, want default", cfg.Replay.FastForward)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("missing explicit config path did not fail")
	}
}

func TestNormalizeClampsBadValues(t *testing.T) {
	cfg := Config{FPS: -5, Replay: ReplayConfig{Speed: 0, FastForward: -1}, SSH: SSHConfig{Port: 99999}}
	cfg.Normalize()
	def := DefaultConfig()
	if cfg.FPS != def.FPS || cfg.Replay.Speed != def.Replay.Speed || cfg.SSH.Port != def.SSH.Port {
		t.Errorf("normalized config = %+v", cfg)
	}
}
