package config

import (
	"fmt"

	"ccswitch/config/models"
	"ccswitch/config/validation"
)

// ImportMode selects how a profile name collision is resolved during import.
type ImportMode string

const (
	// ImportSkip keeps the existing profile and drops the imported one.
	ImportSkip ImportMode = "skip"
	// ImportOverwrite replaces the existing profile with the imported one.
	ImportOverwrite ImportMode = "overwrite"
	// ImportRename imports under the first free "name-N" variant.
	ImportRename ImportMode = "rename"
)

// ParseImportMode converts a user-supplied mode string.
func ParseImportMode(s string) (ImportMode, error) {
	switch ImportMode(s) {
	case ImportSkip, ImportOverwrite, ImportRename:
		return ImportMode(s), nil
	}
	return "", fmt.Errorf("invalid import mode '%s' (expected skip, overwrite or rename)", s)
}

// ImportResult reports what happened to each imported profile.
type ImportResult struct {
	Imported    []string
	Skipped     []string
	Overwritten []string
	// Renamed maps the original profile name to the name it was imported
	// under.
	Renamed map[string]string
}

// Export produces a snapshot of the named profiles, or of all profiles when
// names is empty. With sanitize set, every apiKey is replaced by the fixed
// redaction marker; the document on disk is never touched.
func (cm *Manager) Export(names []string, sanitize bool) (*models.ExportFile, error) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	configFile, err := cm.loadConfigFile()
	if err != nil {
		return nil, err
	}

	if len(names) == 0 {
		names = configFile.Profiles.Names()
	}

	profiles := make([]models.Profile, 0, len(names))
	for _, name := range names {
		profile, ok := configFile.Profiles.Get(name)
		if !ok {
			return nil, fmt.Errorf("profile '%s': %w", name, ErrProfileNotFound)
		}
		profile = profile.Clone()
		if sanitize {
			profile.APIKey = models.RedactedAPIKey
		}
		profiles = append(profiles, profile)
	}

	return &models.ExportFile{
		Profiles:   profiles,
		ExportedAt: timestamp(),
		Version:    models.ExportVersion,
		Sanitized:  sanitize,
	}, nil
}

// Import merges an export snapshot into the profile collection. Validation is
// all-or-nothing: any invalid profile aborts the whole import before any
// write. Name collisions are then resolved per profile according to mode, and
// the document is written once.
func (cm *Manager) Import(export *models.ExportFile, mode ImportMode) (*ImportResult, error) {
	validator := validation.NewValidator()
	for _, profile := range export.Profiles {
		if err := validator.ValidateProfile(profile); err != nil {
			return nil, fmt.Errorf("profile '%s': %w", profile.Name, err)
		}
	}

	cm.mu.Lock()
	defer cm.mu.Unlock()

	configFile, err := cm.loadConfigFile()
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Renamed: make(map[string]string)}
	now := timestamp()

	for _, profile := range export.Profiles {
		profile = profile.Clone()
		if profile.CreatedAt == "" {
			profile.CreatedAt = now
		}
		if profile.UpdatedAt == "" {
			profile.UpdatedAt = now
		}

		if !configFile.Profiles.Has(profile.Name) {
			configFile.Profiles.Set(profile)
			result.Imported = append(result.Imported, profile.Name)
			continue
		}

		switch mode {
		case ImportSkip:
			result.Skipped = append(result.Skipped, profile.Name)
		case ImportOverwrite:
			configFile.Profiles.Set(profile)
			result.Overwritten = append(result.Overwritten, profile.Name)
		case ImportRename:
			renamed := freeName(&configFile.Profiles, profile.Name)
			result.Renamed[profile.Name] = renamed
			profile.Name = renamed
			configFile.Profiles.Set(profile)
		default:
			return nil, fmt.Errorf("invalid import mode '%s'", mode)
		}
	}

	if err := cm.saveConfigFile(configFile); err != nil {
		return nil, err
	}
	return result, nil
}

// freeName returns the first "name-N" (N starting at 2) not present in the
// collection. The base is truncated so the candidate never exceeds the
// validator's name length limit.
func freeName(profiles *models.ProfileMap, name string) string {
	for i := 2; ; i++ {
		suffix := fmt.Sprintf("-%d", i)
		base := name
		if max := validation.MaxNameLength - len(suffix); len(base) > max {
			base = base[:max]
		}
		candidate := base + suffix
		if !profiles.Has(candidate) {
			return candidate
		}
	}
}
