// Package cmd implements the ccswitch command line interface. Commands are
// thin callers into the profile store and provider registry; all invariants
// live in those packages.
package cmd

import (
	"github.com/spf13/cobra"
)

// Version information
var (
	version string
	commit  string
	date    string
)

// SetVersionInfo sets the version information shown by --version.
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

var rootCmd = &cobra.Command{
	Use:   "ccswitch",
	Short: "Claude Code provider and profile switcher",
	Long:  "A command line tool for managing AI provider profiles and switching which provider Claude Code uses",
}

// Execute executes the root command.
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(`ccswitch {{.Version}}
Commit: ` + commit + `
Date: ` + date + `
`)

	return rootCmd.Execute()
}
