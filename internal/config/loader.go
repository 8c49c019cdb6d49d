package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRubik loads the game configuration.
// Search order: customPath -> ~/.rubik/configs/rubik.yaml -> ./configs/rubik.yaml -> embedded default
func LoadRubik(customPath string) (RubikConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readRubik(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("rubik.yaml"); userCfgPath != "" {
		if cfg, err := readRubik(userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := readRubik(filepath.Join("configs", "rubik.yaml")); err == nil && cfg.Validate() == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	var cfg RubikConfig
	if err := yaml.Unmarshal(defaultRubikYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultRubikConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func readRubik(path string) (RubikConfig, error) {
	var cfg RubikConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rubik", "configs", filename)
}
