package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ccswitch/config"
	"ccswitch/internal/providers"
)

// newStores wires the profile store, the user provider store and the merged
// resolver together. The providers document always lives next to the config
// file.
func newStores() (*config.Manager, *providers.Store, *providers.Resolver, error) {
	manager, err := config.NewManager()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize config manager: %w", err)
	}
	store := providers.NewStore(manager.ConfigPath())
	return manager, store, providers.NewResolver(store), nil
}

// claudeSettingsPath locates the Claude Code settings file this tool syncs
// into.
func claudeSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".claude", "settings.json")
}

// parseHeaders converts repeated "Key=Value" flags into a header map.
func parseHeaders(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	headers := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid header '%s' (expected Key=Value)", pair)
		}
		headers[strings.TrimSpace(key)] = value
	}
	return headers, nil
}

// isTerminal checks if stdin is a terminal.
func isTerminal() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
