package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// configNames lists the file names tried in each search directory, in order.
var configNames = []string{"shooter.yaml", "shooter.yml", "shooter.toml"}

// LoadShooter loads the shooter configuration.
// Search order: customPath -> ~/.tilt-shooter/configs/shooter.{yaml,yml,toml} ->
// ./configs/shooter.{yaml,yml,toml} -> embedded default.
// Files are decoded over the built-in defaults, so a file only needs the keys it changes.
// The format follows the file extension; anything but .toml is read as YAML.
func LoadShooter(customPath string) (ShooterConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseFile(customPath, data)
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	var dirs []string
	if userDir := userConfigDir(); userDir != "" {
		dirs = append(dirs, userDir)
	}
	dirs = append(dirs, "configs")

	for _, dir := range dirs {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			if cfg, err := parseFile(path, data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := parseShooter(defaultShooterYAML)
	if err != nil {
		return DefaultShooterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseFile decodes data in the format implied by path's extension.
func parseFile(path string, data []byte) (ShooterConfig, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return parseShooterTOML(data)
	}
	return parseShooter(data)
}

// parseShooter decodes YAML over the built-in defaults.
func parseShooter(data []byte) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ShooterConfig{}, err
	}
	return cfg, nil
}

// parseShooterTOML decodes TOML over the built-in defaults.
func parseShooterTOML(data []byte) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return ShooterConfig{}, err
	}
	return cfg, nil
}

// userConfigDir returns the user config directory, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tilt-shooter", "configs")
}
