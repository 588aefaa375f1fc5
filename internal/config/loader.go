package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const tennisFile = "tennis.yaml"

// LoadTennis loads tennis configuration.
// Search order: customPath -> ~/.tennis/configs/tennis.yaml -> ./configs/tennis.yaml -> embedded default.
// Files are merged onto DefaultTennisConfig, so a file may set only the keys it cares about.
func LoadTennis(customPath string) (TennisConfig, error) {
	cfg, err := loadTennis(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid tennis config: %w", err)
	}
	return cfg, nil
}

func loadTennis(customPath string) (TennisConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultTennisConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseTennis(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(tennisFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseTennis(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", tennisFile)); err == nil {
		if cfg, err := ParseTennis(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseTennis(defaultTennisYAML)
	if err != nil {
		return DefaultTennisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseTennis decodes YAML onto the built-in defaults.
func ParseTennis(data []byte) (TennisConfig, error) {
	cfg := DefaultTennisConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultTennisConfig(), err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tennis", "configs", filename)
}
