package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ccswitch/internal/utils"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active profile",
	Long:  "Show the active profile and the provider configuration it resolves to",
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
			fmt.Println("No active profile")
			fmt.Println("\nHint: run 'ccswitch use <name>' to activate one")
			return nil
		}

		effective, resolved := resolver.Effective(*profile)

		fmt.Println("Active profile:")
		fmt.Printf("  Name:     %s\n", profile.Name)
		fmt.Printf("  Provider: %s\n", profile.ProviderID)
		if !resolved {
			fmt.Printf("            (unknown provider: not found in the registry)\n")
		}
		fmt.Printf("  API Key:  %s\n", utils.MaskAPIKey(profile.APIKey))
		fmt.Printf("  Model:    %s\n", effective.Model)
		if effective.BaseURL != "" {
			fmt.Printf("  Base URL: %s\n", effective.BaseURL)
		}
		for key, value := range effective.Headers {
			fmt.Printf("  Header:   %s: %s\n", key, value)
		}
		return nil
	},
}
