// Package main provides the entry point for the docfetch CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for docfetch.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docfetch",
		Short: "Download documentation sites as Markdown artifacts",
		Long: `Docfetch downloads API documentation sites into single Markdown artifacts.

It fetches a seed page, detects the documentation generator that produced it,
collects the navigation links, and crawls one level deep. Every page is
stripped of boilerplate, converted to Markdown, and appended to one artifact
file per run. Past crawls are recorded in a local history database.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewFetchCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
