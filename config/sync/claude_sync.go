// Package sync applies a profile's effective configuration to the Claude
// Code settings file and to the caller's shell. It only ever touches the
// ANTHROPIC_* entries of the settings "env" object; everything else in the
// file is preserved byte-for-byte semantics and verified after each update.
package sync

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"ccswitch/config/storage"
)

// envPrefix marks the settings entries this tool owns.
const envPrefix = "ANTHROPIC_"

// ProfileEnvVar carries the active profile name into the shell environment.
const ProfileEnvVar = "CCSWITCH_PROFILE"

// ManagedEnvVars are the environment variables written and cleared by this
// package.
var ManagedEnvVars = []string{
	"ANTHROPIC_API_KEY",
	"ANTHROPIC_AUTH_TOKEN",
	"ANTHROPIC_BASE_URL",
	"ANTHROPIC_MODEL",
	ProfileEnvVar,
}

// Options controls how a settings update is performed.
type Options struct {
	PreserveOther bool // keep non-ANTHROPIC env entries
}

// UpdateEnvField rewrites the env object of a Claude Code settings document
// so its ANTHROPIC_* entries match env exactly. Non-ANTHROPIC entries are
// kept when opts.PreserveOther is set. The update is verified: any change
// outside the env field, or to a preserved entry, fails the call.
func UpdateEnvField(originalContent string, env map[string]string, opts Options) (string, error) {
	result := gjson.Parse(originalContent)
	if !result.Exists() {
		return "", fmt.Errorf("invalid JSON content")
	}

	existingEnv := make(map[string]string)
	if envResult := result.Get("env"); envResult.Exists() {
		envResult.ForEach(func(key, value gjson.Result) bool {
			existingEnv[key.Str] = value.Str
			return true
		})
	}

	updatedEnv := make(map[string]string)
	if opts.PreserveOther {
		for key, value := range existingEnv {
			if !strings.HasPrefix(strings.ToUpper(key), envPrefix) {
				updatedEnv[key] = value
			}
		}
	}
	for key, value := range env {
		if value != "" {
			updatedEnv[key] = value
		}
	}

	envJSON, err := json.Marshal(updatedEnv)
	if err != nil {
		return "", fmt.Errorf("failed to marshal updated env: %w", err)
	}

	updatedContent, err := sjson.SetRaw(originalContent, "env", string(envJSON))
	if err != nil {
		return "", fmt.Errorf("failed to update env field: %w", err)
	}

	if err := validateJSONUpdate(originalContent, updatedContent); err != nil {
		return "", fmt.Errorf("update validation failed: %w", err)
	}

	return updatedContent, nil
}

// SyncSettings applies env to the settings file at settingsPath. A missing
// file is not an error; this tool does not create Claude Code settings, it
// only edits existing ones. A backup is taken before the write and restored
// if the write fails.
func SyncSettings(settingsPath string, env map[string]string) error {
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		return nil
	}

	originalContent, err := os.ReadFile(settingsPath)
	if err != nil {
		return fmt.Errorf("failed to read settings file: %w", err)
	}

	updatedContent, err := UpdateEnvField(string(originalContent), env, Options{PreserveOther: true})
	if err != nil {
		return fmt.Errorf("failed to update settings content: %w", err)
	}

	if err := storage.AtomicFileUpdate(settingsPath, updatedContent, true); err != nil {
		bm := storage.NewBackupManager(storage.DefaultBackupRetention)
		if restoreErr := bm.RestoreFromLatestBackup(settingsPath); restoreErr != nil {
			return fmt.Errorf("failed to write settings file and restore from backup: write error=%v, restore error=%v", err, restoreErr)
		}
		return fmt.Errorf("failed to write settings file, restored from backup: %w", err)
	}

	return nil
}

// ClearSettings removes every ANTHROPIC_* entry from the settings file's env
// object. A missing file, or one without an env object, is not an error.
func ClearSettings(settingsPath string) error {
	data, err := os.ReadFile(settingsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read settings file: %w", err)
	}

	content := string(data)
	envResult := gjson.Get(content, "env")
	if !envResult.Exists() {
		return nil
	}

	var keys []string
	envResult.ForEach(func(key, value gjson.Result) bool {
		if strings.HasPrefix(strings.ToUpper(key.Str), envPrefix) {
			keys = append(keys, key.Str)
		}
		return true
	})

	for _, key := range keys {
		content, err = sjson.Delete(content, "env."+escapePathKey(key))
		if err != nil {
			return fmt.Errorf("failed to clear env entry %s: %w", key, err)
		}
	}

	if err := storage.AtomicFileUpdate(settingsPath, content, true); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// escapePathKey escapes sjson path separators inside a literal object key.
func escapePathKey(key string) string {
	key = strings.ReplaceAll(key, ".", `\.`)
	return strings.ReplaceAll(key, "*", `\*`)
}

// GenerateEnvScript renders an eval-able shell script that clears every
// managed variable and exports the given env plus the active profile name.
func GenerateEnvScript(env map[string]string, profileName string) string {
	var b strings.Builder
	for _, name := range ManagedEnvVars {
		fmt.Fprintf(&b, "unset %s\n", name)
	}

	keys := make([]string, 0, len(env))
	for key := range env {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if env[key] != "" {
			fmt.Fprintf(&b, "export %s=%q\n", key, env[key])
		}
	}
	if profileName != "" {
		fmt.Fprintf(&b, "export %s=%q\n", ProfileEnvVar, profileName)
	}
	return b.String()
}

// validateJSONUpdate verifies that only the env field changed between the
// original and updated documents.
func validateJSONUpdate(originalContent, updatedContent string) error {
	if !json.Valid([]byte(originalContent)) {
		return fmt.Errorf("original JSON is invalid")
	}
	if !json.Valid([]byte(updatedContent)) {
		return fmt.Errorf("updated JSON is invalid")
	}

	original, updated, err := parseToMaps(originalContent, updatedContent)
	if err != nil {
		return err
	}

	differences := deepCompare(original, updated)
	if len(differences) > 0 {
		return fmt.Errorf("unexpected changes to non-env fields: %s", strings.Join(differences, ", "))
	}

	originalEnv, err := extractEnv(originalContent)
	if err != nil {
		return err
	}
	updatedEnv, err := extractEnv(updatedContent)
	if err != nil {
		return err
	}

	for key, originalVal := range originalEnv {
		if strings.HasPrefix(strings.ToUpper(key), envPrefix) {
			continue
		}
		updatedVal, exists := updatedEnv[key]
		if !exists {
			return fmt.Errorf("non-ANTHROPIC env entry '%s' was deleted", key)
		}
		if fmt.Sprintf("%v", originalVal) != fmt.Sprintf("%v", updatedVal) {
			return fmt.Errorf("non-ANTHROPIC env entry '%s' was modified", key)
		}
	}

	return nil
}

// parseToMaps parses both documents for deep comparison.
func parseToMaps(originalStr, updatedStr string) (map[string]interface{}, map[string]interface{}, error) {
	var original map[string]interface{}
	if err := json.Unmarshal([]byte(originalStr), &original); err != nil {
		return nil, nil, fmt.Errorf("failed to parse original JSON: %w", err)
	}

	var updated map[string]interface{}
	if err := json.Unmarshal([]byte(updatedStr), &updated); err != nil {
		return nil, nil, fmt.Errorf("failed to parse updated JSON: %w", err)
	}

	return original, updated, nil
}

// deepCompare returns the fields, env excluded, that differ between the two
// documents.
func deepCompare(original, updated map[string]interface{}) []string {
	var differences []string

	for key, originalVal := range original {
		if key == "env" {
			continue
		}

		updatedVal, exists := updated[key]
		if !exists {
			differences = append(differences, key+" (missing)")
			continue
		}

		originalMap, originalIsMap := originalVal.(map[string]interface{})
		updatedMap, updatedIsMap := updatedVal.(map[string]interface{})
		if originalIsMap && updatedIsMap {
			for _, diff := range deepCompare(originalMap, updatedMap) {
				differences = append(differences, key+"."+diff)
			}
			continue
		}

		if fmt.Sprintf("%v", originalVal) != fmt.Sprintf("%v", updatedVal) {
			differences = append(differences, key)
		}
	}

	for key := range updated {
		if key == "env" {
			continue
		}
		if _, exists := original[key]; !exists {
			differences = append(differences, key+" (new)")
		}
	}

	return differences
}

// extractEnv returns the env object of a settings document, empty when the
// field is absent.
func extractEnv(jsonContent string) (map[string]interface{}, error) {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(jsonContent), &data); err != nil {
		return nil, err
	}

	env, exists := data["env"]
	if !exists {
		return make(map[string]interface{}), nil
	}

	envMap, ok := env.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("env field is not an object")
	}
	return envMap, nil
}
