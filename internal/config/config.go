// Package config provides YAML-based configuration loading for the
// puzzle application.
package config

// Config contains all application settings.
type Config struct {
	Database  string       `yaml:"database"`   // SQLite path, ~ is expanded by storage
	LevelsDir string       `yaml:"levels_dir"` // empty = built-in level set
	FPS       int          `yaml:"fps"`
	Replay    ReplayConfig `yaml:"replay"`
	SSH       SSHConfig    `yaml:"ssh"`
}

// ReplayConfig defines playback parameters.
type ReplayConfig struct {
	Speed       float64 `yaml:"speed"`        // normal playback speed multiplier
	FastForward float64 `yaml:"fast_forward"` // speed while fast-forward is held
}

// SSHConfig defines the SSH serving parameters.
type SSHConfig struct {
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	HostKey string `yaml:"host_key"`
}

// Normalize clamps nonsensical values back to defaults.
func (c *Config) Normalize() {
	def := DefaultConfig()
	if c.Database == "" {
		c.Database = def.Database
	}
	if c.FPS < 1 || c.FPS > 120 {
		c.FPS = def.FPS
	}
	if c.Replay.Speed <= 0 {
		c.Replay.Speed = def.Replay.Speed
	}
	if c.Replay.FastForward <= 0 {
		c.Replay.FastForward = def.Replay.FastForward
	}
	if c.SSH.Host == "" {
		c.SSH.Host = def.SSH.Host
	}
	if c.SSH.Port <= 0 || c.SSH.Port > 65535 {
		c.SSH.Port = def.SSH.Port
	}
	if c.SSH.HostKey == "" {
		c.SSH.HostKey = def.SSH.HostKey
	}
}
