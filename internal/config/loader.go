package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the file name looked up in the user and local config directories.
const configFile = "ghostcatch.yaml"

// LoadGhostCatch loads Ghost Catcher configuration.
// Search order: customPath -> ~/.ghostcatcher/configs/ghostcatch.yaml -> ./configs/ghostcatch.yaml -> embedded default
// Files are applied on top of the defaults, so they only need the keys they change.
func LoadGhostCatch(customPath string) (GhostCatchConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GhostCatchConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return GhostCatchConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultGhostCatchYAML)
	if err != nil {
		return DefaultGhostCatchConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the default configuration and validates it.
func Parse(data []byte) (GhostCatchConfig, error) {
	cfg := DefaultGhostCatchConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GhostCatchConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return GhostCatchConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ghostcatcher", "configs", filename)
}
