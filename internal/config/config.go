// Package config provides YAML-based application configuration loading
// for the hatman binary.
package config

import "time"

// AppConfig contains all configuration for the hatman binary.
// Gameplay constants live in the game package and are not configurable.
type AppConfig struct {
	Display  DisplayConfig  `yaml:"display"`
	Controls ControlsConfig `yaml:"controls"`
	Storage  StorageConfig  `yaml:"storage"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
}

// DisplayConfig defines the terminal host parameters.
type DisplayConfig struct {
	TickRate int `yaml:"tick_rate"` // Simulation ticks per second
	MinCols  int `yaml:"min_cols"`
	MinRows  int `yaml:"min_rows"`
}

// ControlsConfig defines input emulation parameters.
type ControlsConfig struct {
	// HoldTicks is how long a movement key counts as held after a press
	// or a key repeat. Terminals report presses, not key state.
	HoldTicks int `yaml:"hold_ticks"`
}

// StorageConfig defines where finished runs are recorded.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig defines the SSH server parameters.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// LogConfig defines logging parameters.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Play mode log file; empty discards
}
