package config

import (
	_ "embed"
)

//go:embed defaults/hatman.yaml
var defaultAppYAML []byte

// DefaultAppConfig returns the hardcoded configuration.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Display: DisplayConfig{
			TickRate: 60,
			MinCols:  40,
			MinRows:  16,
		},
		Controls: ControlsConfig{
			HoldTicks: 8,
		},
		Storage: StorageConfig{
			DBPath: "~/.hatman/scores.db",
		},
		Server: ServerConfig{
			Address:            ":23234",
			HostKeyPath:        ".ssh/hatman_ed25519",
			IdleTimeoutMinutes: 30,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
