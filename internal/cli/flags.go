// Package cli provides flag binding and validation for the preflight CLI.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/preflight/internal/config"
)

// BindFlags registers all CLI flags on the given cobra command.
// The flags directly modify fields in the provided config pointer.
// Call ValidateFlags after parsing to check flag combinations.
func BindFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	// Catalog & configuration files
	flags.StringVar(&cfg.CatalogFile, "catalog", "", "Path to a YAML catalog replacing the built-in requirement table")
	flags.StringVar(&cfg.ConfigFile, "config", "", "Path to additional config file")

	// Probe settings
	flags.StringSliceVar(&cfg.FallbackDirs, "fallback-dir", cfg.FallbackDirs, "Directory searched for executables missing from PATH (repeatable)")
	flags.StringVar(&cfg.Python, "python", cfg.Python, "Interpreter used for binding probes")

	// Remediation settings
	flags.StringVar(&cfg.Installer, "installer", cfg.Installer, "Package manager command used to install missing packages")
	flags.StringVar(&cfg.Escalator, "escalator", cfg.Escalator, "Privilege escalation command for unprivileged installs")
	flags.BoolVarP(&cfg.AssumeYes, "yes", "y", cfg.AssumeYes, "Run the package manager non-interactively")
	flags.BoolVar(&cfg.ReportOnly, "report-only", false, "Audit and report without installing anything")

	// Output
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Enable debug output")
}

// ValidateFlags checks flag values after parsing.
// Must be called after cmd.Execute() or cmd.ParseFlags().
func ValidateFlags(cmd *cobra.Command, cfg *config.Config) error {
	// --catalog must exist if provided
	if cfg.CatalogFile != "" {
		if _, err := os.Stat(cfg.CatalogFile); err != nil {
			return fmt.Errorf("--catalog: %w", err)
		}
	}

	// --config must exist if provided
	if cfg.ConfigFile != "" {
		if _, err := os.Stat(cfg.ConfigFile); err != nil {
			return fmt.Errorf("--config: %w", err)
		}
	}

	if cfg.Installer == "" {
		return fmt.Errorf("--installer must not be empty")
	}
	if cfg.Escalator == "" {
		return fmt.Errorf("--escalator must not be empty")
	}

	return nil
}
