package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")
	exportCmd.Flags().StringSliceP("profiles", "p", nil, "Comma-separated profile names (all when omitted)")
	exportCmd.Flags().BoolP("sanitize", "s", false, "Redact API keys in the export")
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export profiles to a JSON snapshot",
	Long: `Export some or all profiles as a JSON snapshot.

With --sanitize, every API key in the snapshot is replaced by a redaction
marker, so the file is safe to share; the stored profiles are not modified.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		names, _ := cmd.Flags().GetStringSlice("profiles")
		sanitize, _ := cmd.Flags().GetBool("sanitize")

		manager, _, _, err := newStores()
		if err != nil {
			return err
		}

		export, err := manager.Export(names, sanitize)
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(export, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize export: %w", err)
		}

		if output == "" {
			fmt.Println(string(data))
			return nil
		}

		if err := os.WriteFile(output, data, 0600); err != nil {
			return fmt.Errorf("failed to write export file: %w", err)
		}
		fmt.Printf("Exported %d profile(s) to %s\n", len(export.Profiles), output)
		if sanitize {
			fmt.Println("API keys were redacted; re-enter them after import")
		}
		return nil
	},
}
