package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigPath resolves the main config file location following the XDG
// layout: $XDG_CONFIG_HOME/ccswitch/config.json, defaulting to
// ~/.config/ccswitch/config.json. The providers document lives next to it.
func DefaultConfigPath() (string, error) {
	xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfigHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		xdgConfigHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(xdgConfigHome, "ccswitch", "config.json"), nil
}

// legacyConfigPath is the pre-XDG location, a single dotfile in the home
// directory.
func legacyConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".ccswitch.json"), nil
}
