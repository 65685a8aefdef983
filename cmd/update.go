package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().StringP("provider", "p", "", "New provider id")
	updateCmd.Flags().StringP("key", "k", "", "New API key")
	updateCmd.Flags().StringP("model", "m", "", "New model name")
	updateCmd.Flags().StringP("url", "u", "", "New base URL override (pass 'none' to clear)")
	updateCmd.Flags().StringArrayP("header", "H", nil, "Replacement header as Key=Value (repeatable)")
}

var updateCmd = &cobra.Command{
	Use:   "update <name>",
	Short: "Update fields of an existing profile",
	Long: `Update only the given fields of an existing profile; everything else is kept.

Examples:
  ccswitch update work --model claude-3-5-haiku-20241022
  ccswitch update work --key sk-new
  ccswitch update gateway --url none`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		manager, _, _, err := newStores()
		if err != nil {
			return err
		}

		profile, err := manager.Get(name)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("provider") {
			profile.ProviderID, _ = cmd.Flags().GetString("provider")
		}
		if cmd.Flags().Changed("key") {
			profile.APIKey, _ = cmd.Flags().GetString("key")
		}
		if cmd.Flags().Changed("model") {
			profile.Model, _ = cmd.Flags().GetString("model")
		}
		if cmd.Flags().Changed("url") {
			url, _ := cmd.Flags().GetString("url")
			if url == "none" {
				url = ""
			}
			profile.BaseURL = url
		}
		if cmd.Flags().Changed("header") {
			headerFlags, _ := cmd.Flags().GetStringArray("header")
			headers, err := parseHeaders(headerFlags)
			if err != nil {
				return err
			}
			profile.Headers = headers
		}

		if err := manager.Update(name, *profile); err != nil {
			return err
		}

		fmt.Printf("Updated profile: %s\n", name)
		return nil
	},
}
