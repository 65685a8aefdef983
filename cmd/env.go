package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	configsync "ccswitch/config/sync"
)

func init() {
	rootCmd.AddCommand(envCmd)
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the shell environment of the active profile (for shell initialization)",
	Long: `Print export commands for the active profile's environment. Meant for shell
initialization scripts: eval "$(ccswitch env)". When no profile is active,
only unset commands are printed so stale variables are cleared.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, _, resolver, err := newStores()
		if err != nil {
			return err
		}

		profile, err := manager.ActiveProfile()
		if err != nil {
			return err
		}
		if profile == nil {
			fmt.Print(configsync.GenerateEnvScript(nil, ""))
			return nil
		}

		effective, _ := resolver.Effective(*profile)
		fmt.Print(configsync.GenerateEnvScript(effective.Env(), profile.Name))
		return nil
	},
}
