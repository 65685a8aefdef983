package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ccswitch/config"
	"ccswitch/config/models"
)

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringP("mode", "m", string(config.ImportSkip), "Conflict policy: skip, overwrite or rename")
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import profiles from a JSON snapshot",
	Long: `Import profiles from an export snapshot.

Validation is all-or-nothing: if any profile in the snapshot is invalid,
nothing is imported. Name collisions are resolved by --mode:
  skip       keep the existing profile (default)
  overwrite  replace the existing profile
  rename     import under the first free name-N variant`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		modeFlag, _ := cmd.Flags().GetString("mode")

		mode, err := config.ParseImportMode(modeFlag)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read import file: %w", err)
		}

		var export models.ExportFile
		if err := json.Unmarshal(data, &export); err != nil {
			return fmt.Errorf("failed to parse import file: %w", err)
		}

		manager, _, _, err := newStores()
		if err != nil {
			return err
		}

		result, err := manager.Import(&export, mode)
		if err != nil {
			return err
		}

		if len(result.Imported) > 0 {
			fmt.Printf("Imported: %d\n", len(result.Imported))
		}
		if len(result.Overwritten) > 0 {
			fmt.Printf("Overwritten: %d\n", len(result.Overwritten))
		}
		if len(result.Skipped) > 0 {
			fmt.Printf("Skipped (name taken): %d\n", len(result.Skipped))
		}
		for original, renamed := range result.Renamed {
			fmt.Printf("Renamed: %s -> %s\n", original, renamed)
		}
		if export.Sanitized {
			fmt.Println("Note: this snapshot was sanitized; imported API keys are redaction markers")
		}
		return nil
	},
}
