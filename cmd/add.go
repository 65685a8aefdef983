package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ccswitch/config/models"
	"ccswitch/internal/tui"
)

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringP("provider", "p", "", "Provider id (interactive picker when omitted)")
	addCmd.Flags().StringP("key", "k", "", "API key")
	addCmd.Flags().StringP("model", "m", "", "Model name (defaults to the provider's first model)")
	addCmd.Flags().StringP("url", "u", "", "Base URL override")
	addCmd.Flags().StringArrayP("header", "H", nil, "Extra header as Key=Value (repeatable)")
}

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new profile",
	Long: `Add a new profile binding an API key and model to a provider.

Examples:
  ccswitch add work --provider anthropic --key sk-xxx --model claude-3-5-sonnet-20241022
  ccswitch add deepseek-main -p deepseek -k sk-xxx
  ccswitch add gateway -p custom -k sk-xxx -m my-model -u https://llm.internal.example.com`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		providerID, _ := cmd.Flags().GetString("provider")
		apiKey, _ := cmd.Flags().GetString("key")
		model, _ := cmd.Flags().GetString("model")
		baseURL, _ := cmd.Flags().GetString("url")
		headerFlags, _ := cmd.Flags().GetStringArray("header")

		headers, err := parseHeaders(headerFlags)
		if err != nil {
			return err
		}

		manager, _, resolver, err := newStores()
		if err != nil {
			return err
		}

		if providerID == "" {
			if !isTerminal() {
				return fmt.Errorf("no provider given; pass --provider in non-interactive mode")
			}
			picked, ok, err := tui.PickProvider(resolver.All())
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no provider selected")
			}
			providerID = picked.ID
		}

		// Fill the model from the provider's defaults when not given.
		if model == "" {
			if preset, ok := resolver.Resolve(providerID); ok && len(preset.DefaultModels) > 0 {
				model = preset.DefaultModels[0]
			}
		}

		profile := models.Profile{
			Name:       name,
			ProviderID: providerID,
			APIKey:     apiKey,
			Model:      model,
			BaseURL:    baseURL,
			Headers:    headers,
		}
		if err := manager.Create(profile); err != nil {
			return err
		}

		if _, ok := resolver.Resolve(providerID); !ok {
			fmt.Printf("Note: provider '%s' is not in the registry; the profile will work once it is added\n", providerID)
		}
		fmt.Printf("Added profile: %s\n", name)
		return nil
	},
}
