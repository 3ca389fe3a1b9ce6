package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LocalPath is the project-local config file, relative to the working directory.
const LocalPath = "configs/hatman.yaml"

// Load loads the application configuration.
// Search order: customPath -> ~/.hatman/config.yaml -> ./configs/hatman.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file may set only the keys it cares about.
func Load(customPath string) (AppConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultAppConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultAppConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(LocalPath); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultAppYAML)
	if err != nil {
		return DefaultAppConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML onto the hardcoded defaults and repairs
// out-of-range values.
func Parse(data []byte) (AppConfig, error) {
	cfg := DefaultAppConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.normalize()
	return cfg, nil
}

func (c *AppConfig) normalize() {
	def := DefaultAppConfig()
	if c.Display.TickRate <= 0 {
		c.Display.TickRate = def.Display.TickRate
	}
	if c.Display.MinCols <= 0 {
		c.Display.MinCols = def.Display.MinCols
	}
	if c.Display.MinRows <= 0 {
		c.Display.MinRows = def.Display.MinRows
	}
	if c.Controls.HoldTicks <= 0 {
		c.Controls.HoldTicks = def.Controls.HoldTicks
	}
	if c.Storage.DBPath == "" {
		c.Storage.DBPath = def.Storage.DBPath
	}
	if c.Server.Address == "" {
		c.Server.Address = def.Server.Address
	}
	if c.Server.HostKeyPath == "" {
		c.Server.HostKeyPath = def.Server.HostKeyPath
	}
	if c.Server.IdleTimeoutMinutes <= 0 {
		c.Server.IdleTimeoutMinutes = def.Server.IdleTimeoutMinutes
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

// Dir returns the per-user hatman directory (~/.hatman), or "" if the
// home directory is unknown.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hatman")
}

func userConfigPath(filename string) string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, filename)
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
