package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"ccswitch/config/models"
	"ccswitch/internal/providers"
)

func init() {
	rootCmd.AddCommand(providerCmd)
	providerCmd.AddCommand(providerListCmd)
	providerCmd.AddCommand(providerAddCmd)
	providerCmd.AddCommand(providerRemoveCmd)
	providerCmd.AddCommand(providerShowCmd)

	providerListCmd.Flags().Bool("chinese", false, "Show only built-in Chinese providers")
	providerListCmd.Flags().Bool("international", false, "Show only built-in international providers")

	providerAddCmd.Flags().StringP("name", "n", "", "Provider name (defaults to the id)")
	providerAddCmd.Flags().String("display-name", "", "Display name (defaults to the name)")
	providerAddCmd.Flags().StringP("url", "u", "", "Base URL (required)")
	providerAddCmd.Flags().StringP("auth", "a", models.AuthTypeBearer, "Auth type: bearer, api-key or custom")
	providerAddCmd.Flags().StringSliceP("models", "m", nil, "Comma-separated model list")
	providerAddCmd.Flags().StringArrayP("header", "H", nil, "Default header as Key=Value (repeatable)")
	providerAddCmd.Flags().String("docs", "", "Documentation URL")
	providerAddCmd.Flags().Bool("chinese", false, "Flag the provider as Chinese")
}

var providerCmd = &cobra.Command{
	Use:   "provider",
	Short: "Manage providers",
	Long:  "Inspect built-in provider presets and manage user-defined providers",
}

var providerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List providers in the merged registry",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, resolver, err := newStores()
		if err != nil {
			return err
		}

		chinese, _ := cmd.Flags().GetBool("chinese")
		international, _ := cmd.Flags().GetBool("international")

		var list []models.ProviderPreset
		switch {
		case chinese:
			list = providers.ChinesePresets()
		case international:
			list = providers.InternationalPresets()
		default:
			list = resolver.All()
		}

		if len(list) == 0 {
			fmt.Println("No providers available")
			return nil
		}

		for _, p := range list {
			marker := " "
			if store.Exists(p.ID) {
				marker = "+" // user-defined, possibly shadowing a built-in
			}
			baseURL := p.BaseURL
			if baseURL == "" {
				baseURL = "(template)"
			}
			fmt.Printf("%s %-14s %-10s %s\n", marker, p.ID, p.AuthType, baseURL)
		}
		fmt.Println("\n+ indicates a user-defined provider")
		return nil
	},
}

var providerAddCmd = &cobra.Command{
	Use:   "add <id>",
	Short: "Add or update a user-defined provider",
	Long: `Add a user-defined provider, or override a built-in one by reusing its id.

Example:
  ccswitch provider add mygateway --url https://llm.internal.example.com --auth bearer --models my-model-a,my-model-b`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		name, _ := cmd.Flags().GetString("name")
		displayName, _ := cmd.Flags().GetString("display-name")
		baseURL, _ := cmd.Flags().GetString("url")
		authType, _ := cmd.Flags().GetString("auth")
		modelList, _ := cmd.Flags().GetStringSlice("models")
		headerFlags, _ := cmd.Flags().GetStringArray("header")
		docs, _ := cmd.Flags().GetString("docs")
		chinese, _ := cmd.Flags().GetBool("chinese")

		if name == "" {
			name = id
		}
		if displayName == "" {
			displayName = name
		}

		headers, err := parseHeaders(headerFlags)
		if err != nil {
			return err
		}

		_, store, _, err := newStores()
		if err != nil {
			return err
		}

		provider := models.ProviderPreset{
			ID:            id,
			Name:          name,
			DisplayName:   displayName,
			BaseURL:       baseURL,
			DefaultModels: modelList,
			AuthType:      authType,
			Headers:       headers,
			Docs:          docs,
			IsChinese:     chinese,
		}
		if err := store.Upsert(provider); err != nil {
			return err
		}

		fmt.Printf("Saved provider: %s\n", id)
		return nil
	},
}

var providerRemoveCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a user-defined provider",
	Long:    "Remove a user-defined provider. Built-in presets cannot be removed; removing an override restores the built-in.",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		_, store, _, err := newStores()
		if err != nil {
			return err
		}

		removed, err := store.Delete(id)
		if err != nil {
			return err
		}
		if !removed {
			fmt.Printf("No user-defined provider '%s'\n", id)
			return nil
		}

		fmt.Printf("Removed provider: %s\n", id)
		return nil
	},
}

var providerShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a provider from the merged registry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		_, _, resolver, err := newStores()
		if err != nil {
			return err
		}

		provider, ok := resolver.Resolve(id)
		if !ok {
			return fmt.Errorf("provider '%s' not found", id)
		}

		data, err := json.MarshalIndent(provider, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

