// Package main provides the entry point for the seoaudit CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for seoaudit.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seoaudit",
		Short: "Single-page SEO audit tool",
		Long: `seoaudit analyzes a web page for common SEO issues.

It fetches the page once, runs independent checks covering the title, meta
description, heading structure, images, links, mobile friendliness,
performance signals, structured data, canonical URL, and social tags, then
produces a scored report.`,
		Version:       resolveBuildInfo().version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Shared by every subcommand.
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewAuditCmd(), NewInitCmd(), NewVersionCmd())

	return cmd
}

// Execute runs the CLI, printing any error to stderr and exiting
// nonzero.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
