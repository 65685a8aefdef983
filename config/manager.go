// Package config implements the profile store: persistence of named profiles
// and the active-profile pointer over a single JSON document. Every mutation
// follows the same discipline: load the full document, change it in memory,
// write the full document back.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"ccswitch/config/models"
	"ccswitch/config/storage"
	"ccswitch/config/validation"
)

// Manager manages the profile config document. Unlike the provider store,
// read failures here are hard errors; the manager itself never prints or
// logs, it returns typed conditions for the caller to render.
type Manager struct {
	configPath string
	mu         sync.Mutex
}

// NewManager creates a Manager over the default config path, migrating a
// legacy pre-XDG document if one exists.
func NewManager() (*Manager, error) {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if oldPath, err := legacyConfigPath(); err == nil {
		if storage.ShouldMigrateConfig(oldPath, configPath) {
			if err := storage.MigrateConfig(oldPath, configPath); err != nil {
				return nil, fmt.Errorf("failed to migrate legacy config: %w", err)
			}
		}
	}

	return &Manager{configPath: configPath}, nil
}

// NewManagerAt creates a Manager over an explicit config path. Tests use this
// to substitute a temporary directory.
func NewManagerAt(configPath string) *Manager {
	return &Manager{configPath: configPath}
}

// ConfigPath returns the path of the config document.
func (cm *Manager) ConfigPath() string {
	return cm.configPath
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// loadConfigFile reads the config document under a shared lock. An absent or
// empty file is first-run state; a malformed one is a *ParseError.
func (cm *Manager) loadConfigFile() (*models.File, error) {
	file, err := os.OpenFile(cm.configPath, os.O_RDONLY, 0600)
	if err != nil {
		if os.IsNotExist(err) {
			return &models.File{Version: models.ConfigVersion}, nil
		}
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	if err := lockFileShared(file); err != nil {
		return nil, fmt.Errorf("failed to lock config file: %w", err)
	}
	defer unlockFile(file)

	data, err := os.ReadFile(cm.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if len(data) == 0 {
		return &models.File{Version: models.ConfigVersion}, nil
	}

	var configFile models.File
	if err := json.Unmarshal(data, &configFile); err != nil {
		return nil, &ParseError{Path: cm.configPath, Err: err}
	}
	if configFile.Version == "" {
		configFile.Version = models.ConfigVersion
	}

	return &configFile, nil
}

// saveConfigFile writes the full document under an exclusive lock.
func (cm *Manager) saveConfigFile(configFile *models.File) error {
	data, err := json.MarshalIndent(configFile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cm.configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(cm.configPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	if err := lockFileExclusive(file); err != nil {
		return fmt.Errorf("failed to lock config file: %w", err)
	}
	defer unlockFile(file)

	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := file.Sync(); err != nil {
		return fmt.Errorf("failed to sync config file: %w", err)
	}

	return nil
}

// Create validates the profile and inserts it, rejecting duplicate names.
// Empty timestamps are filled with the current time. The provider id is not
// required to resolve at creation time; unknown providers surface later as a
// non-fatal notice when the profile is applied or displayed.
func (cm *Manager) Create(profile models.Profile) error {
	if err := validation.NewValidator().ValidateProfile(profile); err != nil {
		return err
	}

	cm.mu.Lock()
	defer cm.mu.Unlock()

	configFile, err := cm.loadConfigFile()
	if err != nil {
		return err
	}

	if configFile.Profiles.Has(profile.Name) {
		return fmt.Errorf("profile '%s': %w", profile.Name, ErrProfileExists)
	}

	now := timestamp()
	if profile.CreatedAt == "" {
		profile.CreatedAt = now
	}
	if profile.UpdatedAt == "" {
		profile.UpdatedAt = now
	}

	configFile.Profiles.Set(profile)
	return cm.saveConfigFile(configFile)
}

// Get returns the profile with the given name.
func (cm *Manager) Get(name string) (*models.Profile, error) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	configFile, err := cm.loadConfigFile()
	if err != nil {
		return nil, err
	}

	profile, ok := configFile.Profiles.Get(name)
	if !ok {
		return nil, fmt.Errorf("profile '%s': %w", name, ErrProfileNotFound)
	}
	profile = profile.Clone()
	return &profile, nil
}

// List returns all profiles in insertion order.
func (cm *Manager) List() ([]models.Profile, error) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	configFile, err := cm.loadConfigFile()
	if err != nil {
		return nil, err
	}
	return configFile.Profiles.Profiles(), nil
}

// Update replaces an existing profile's fields and bumps updatedAt. The
// profile keeps its name and creation time.
func (cm *Manager) Update(name string, profile models.Profile) error {
	profile.Name = name
	if err := validation.NewValidator().ValidateProfile(profile); err != nil {
		return err
	}

	cm.mu.Lock()
	defer cm.mu.Unlock()

	configFile, err := cm.loadConfigFile()
	if err != nil {
		return err
	}

	existing, ok := configFile.Profiles.Get(name)
	if !ok {
		return fmt.Errorf("profile '%s': %w", name, ErrProfileNotFound)
	}

	profile.CreatedAt = existing.CreatedAt
	profile.UpdatedAt = timestamp()
	configFile.Profiles.Set(profile)
	return cm.saveConfigFile(configFile)
}

// Remove deletes a profile by name. If it was the active profile, the active
// pointer is cleared; no other profile is promoted.
func (cm *Manager) Remove(name string) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	configFile, err := cm.loadConfigFile()
	if err != nil {
		return err
	}

	if !configFile.Profiles.Delete(name) {
		return fmt.Errorf("profile '%s': %w", name, ErrProfileNotFound)
	}
	if configFile.ActiveProfile == name {
		configFile.ActiveProfile = ""
	}
	return cm.saveConfigFile(configFile)
}

// SetActive points the active-profile marker at an existing profile.
func (cm *Manager) SetActive(name string) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	configFile, err := cm.loadConfigFile()
	if err != nil {
		return err
	}

	if !configFile.Profiles.Has(name) {
		return fmt.Errorf("profile '%s': %w", name, ErrProfileNotFound)
	}

	configFile.ActiveProfile = name
	return cm.saveConfigFile(configFile)
}

// ActiveProfile returns the currently active profile, or nil when no active
// profile is set. An active pointer naming a profile that no longer exists is
// treated the same as no active profile.
func (cm *Manager) ActiveProfile() (*models.Profile, error) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	configFile, err := cm.loadConfigFile()
	if err != nil {
		return nil, err
	}

	if configFile.ActiveProfile == "" {
		return nil, nil
	}
	profile, ok := configFile.Profiles.Get(configFile.ActiveProfile)
	if !ok {
		return nil, nil
	}
	profile = profile.Clone()
	return &profile, nil
}

// GetActiveName returns the raw active-profile pointer, which may be empty or
// dangling.
func (cm *Manager) GetActiveName() (string, error) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	configFile, err := cm.loadConfigFile()
	if err != nil {
		return "", err
	}
	return configFile.ActiveProfile, nil
}
