package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Bandit-AI/seo-auditor/internal/config"
	"github.com/spf13/cobra"
)

//go:embed templates/seoaudit.yaml
var configTemplate embed.FS

// defaultInitPath returns the default location for a new configuration
// file: the XDG config directory, where the audit command searches last.
func defaultInitPath() string {
	return filepath.Join(config.XDGConfigDir(), config.DefaultConfigFile)
}

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new seoaudit configuration file",
		Long: `Initialize creates a new seoaudit.yaml configuration file.

By default the file is written to the XDG config directory, where the
audit command picks it up automatically.

The generated file includes:
- Default settings for the timeout, concurrency, and User-Agent
- Commented examples for custom headers and report output
- Documentation for all available options

Examples:
  # Create the config file in the XDG config directory
  seoaudit init

  # Create a config file in the current directory
  seoaudit init -o seoaudit.yaml

  # Force overwrite existing file
  seoaudit init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", defaultInitPath(),
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if err := writeConfigTemplate(outputPath, force); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created configuration file: %s\n\n", outputPath)
	fmt.Fprintln(out, "Edit this file to set audit defaults such as:")
	fmt.Fprintln(out, "  - Target URLs to audit")
	fmt.Fprintln(out, "  - HTTP timeout and custom headers")
	fmt.Fprintln(out, "  - Report format and output file")

	return nil
}

// writeConfigTemplate materializes the embedded starter configuration
// at path, creating parent directories as needed. Unless force is set,
// an existing file is left untouched.
func writeConfigTemplate(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", path)
	}

	content, err := configTemplate.ReadFile("templates/seoaudit.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	// Owner-only permissions; the file may hold custom auth headers.
	if err := os.WriteFile(path, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	return nil
}
