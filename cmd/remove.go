package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Remove a profile",
	Long:    "Remove a profile by name. Removing the active profile clears the active marker.",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		manager, _, _, err := newStores()
		if err != nil {
			return err
		}

		if err := manager.Remove(name); err != nil {
			return err
		}

		fmt.Printf("Removed profile: %s\n", name)
		return nil
	},
}
