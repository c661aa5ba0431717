package config

import (
	_ "embed"
)

//go:embed defaults/unblocked.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in default configuration.
func DefaultConfig() Config {
	return Config{
		Database:  "~/.unblocked/unblocked.db",
		LevelsDir: "",
		FPS:       30,
		Replay: ReplayConfig{
			Speed:       1.0,
			FastForward: 8.0,
		},
		SSH: SSHConfig{
			Host:    "0.0.0.0",
			Port:    2222,
			HostKey: "~/.unblocked/ssh_host_key",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
