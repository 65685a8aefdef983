package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ccswitch/internal/utils"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	Long:  "List all saved profiles with their provider, model and masked API key",
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, _, resolver, err := newStores()
		if err != nil {
			return err
		}

		profiles, err := manager.List()
		if err != nil {
			return err
		}

		if len(profiles) == 0 {
			fmt.Println("No profiles available")
			return nil
		}

		activeName, err := manager.GetActiveName()
		if err != nil {
			return err
		}

		fmt.Println("Available profiles:")
		for _, profile := range profiles {
			activeMarker := " "
			if profile.Name == activeName {
				activeMarker = "*"
			}

			providerNote := ""
			if _, ok := resolver.Resolve(profile.ProviderID); !ok {
				providerNote = " [unknown provider]"
			}

			fmt.Printf("%s %s: %s%s (key: %s, model: %s)\n",
				activeMarker, profile.Name, profile.ProviderID, providerNote,
				utils.MaskAPIKey(profile.APIKey), profile.Model)
		}

		if activeName != "" {
			fmt.Printf("\n* indicates the currently active profile\n")
		}
		return nil
	},
}
