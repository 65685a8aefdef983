package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	configsync "ccswitch/config/sync"
)

func init() {
	rootCmd.AddCommand(useCmd)
	useCmd.Flags().Bool("no-sync", false, "Do not update the Claude Code settings file")
}

var useCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Switch to the given profile",
	Long: `Switch the active profile and output export commands for its environment.

To make the environment variables effective in the current shell:
  eval "$(ccswitch use <name>)"

Unless --no-sync is given, the ANTHROPIC_* entries of ~/.claude/settings.json
are updated as well so new Claude Code sessions pick up the profile.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		noSync, _ := cmd.Flags().GetBool("no-sync")

		manager, _, resolver, err := newStores()
		if err != nil {
			return err
		}

		if err := manager.SetActive(name); err != nil {
			return err
		}
		profile, err := manager.Get(name)
		if err != nil {
			return err
		}

		effective, resolved := resolver.Effective(*profile)
		if !resolved {
			fmt.Fprintf(os.Stderr, "Note: provider '%s' is not in the registry; using the profile's own settings\n", profile.ProviderID)
		}
		env := effective.Env()

		if !noSync {
			if path := claudeSettingsPath(); path != "" {
				if err := configsync.SyncSettings(path, env); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: failed to sync Claude Code settings: %v\n", err)
				}
			}
		}

		// The export script goes to stdout so it can be eval'd; the
		// confirmation goes to stderr.
		fmt.Print(configsync.GenerateEnvScript(env, name))

		successStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
		fmt.Fprintln(os.Stderr, successStyle.Render(fmt.Sprintf("Switched to profile: %s", name)))
		return nil
	},
}
