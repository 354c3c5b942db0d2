package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/preflight/internal/banner"
	"github.com/CodexForgeBR/preflight/internal/catalog"
	"github.com/CodexForgeBR/preflight/internal/cli"
	"github.com/CodexForgeBR/preflight/internal/config"
	"github.com/CodexForgeBR/preflight/internal/exitcode"
	"github.com/CodexForgeBR/preflight/internal/logging"
	"github.com/CodexForgeBR/preflight/internal/probe"
	"github.com/CodexForgeBR/preflight/internal/remedy"
	"github.com/CodexForgeBR/preflight/internal/report"
	"github.com/CodexForgeBR/preflight/internal/resolve"
	sighandler "github.com/CodexForgeBR/preflight/internal/signal"
)

// version vars injected via ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Config file search locations, lowest precedence first.
const (
	globalConfigPath  = "/etc/preflight.conf"
	projectConfigPath = ".preflight.conf"
)

func main() {
	cfg := config.NewDefaultConfig()

	rootCmd := &cobra.Command{
		Use:     "preflight",
		Short:   "Audit the host for required tools and install what is missing",
		Long:    "Preflight audits the host for the command-line tools and language bindings the installer depends on, then installs missing packages through the host package manager.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validate flags after parsing
			if err := cli.ValidateFlags(cmd, cfg); err != nil {
				return err
			}
			return runAudit(cmd, cfg)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Bind all CLI flags to the config
	cli.BindFlags(rootCmd, cfg)

	// Set custom help template
	cli.SetCustomHelp(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitcode.InstallFailed)
	}
}

// buildCLIOverrides creates a map of CLI flag overrides from the config.
// Uses cmd.Flags().Changed() to only include flags explicitly set by the user,
// ensuring config file values are not accidentally overridden by default values.
func buildCLIOverrides(cmd *cobra.Command, cfg *config.Config) map[string]string {
	overrides := make(map[string]string)

	// String flags: only include if explicitly set via CLI
	stringFlags := map[string]struct {
		key string
		val string
	}{
		"catalog":   {"CATALOG_FILE", cfg.CatalogFile},
		"python":    {"PYTHON", cfg.Python},
		"installer": {"INSTALLER", cfg.Installer},
		"escalator": {"ESCALATOR", cfg.Escalator},
	}
	for flag, mapping := range stringFlags {
		if cmd.Flags().Changed(flag) {
			overrides[mapping.key] = mapping.val
		}
	}

	// Bool flags
	boolFlags := map[string]struct {
		key string
		val bool
	}{
		"yes":         {"ASSUME_YES", cfg.AssumeYes},
		"report-only": {"REPORT_ONLY", cfg.ReportOnly},
		"verbose":     {"VERBOSE", cfg.Verbose},
	}
	for flag, mapping := range boolFlags {
		if cmd.Flags().Changed(flag) {
			if mapping.val {
				overrides[mapping.key] = "true"
			} else {
				overrides[mapping.key] = "false"
			}
		}
	}

	// Repeatable flags join to the config-file list syntax
	if cmd.Flags().Changed("fallback-dir") {
		overrides["FALLBACK_DIRS"] = strings.Join(cfg.FallbackDirs, ":")
	}

	return overrides
}

func runAudit(cmd *cobra.Command, cfg *config.Config) error {
	// Build CLI overrides map using Changed() for accurate detection
	cliOverrides := buildCLIOverrides(cmd, cfg)

	// Load config with precedence
	finalCfg, err := config.LoadWithPrecedence(globalConfigPath, projectConfigPath, cfg.ConfigFile, cliOverrides)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Merge CLI-only flags (not in config files)
	finalCfg.ConfigFile = cfg.ConfigFile
	cfg = finalCfg

	logging.SetVerbose(cfg.Verbose)

	// Privilege level is read once, before anything else runs.
	priv := remedy.CurrentPrivileges()

	entries := catalog.Default()
	catalogSource := "built-in"
	if cfg.CatalogFile != "" {
		entries, err = catalog.LoadFile(cfg.CatalogFile)
		if err != nil {
			return err
		}
		catalogSource = cfg.CatalogFile
	}

	banner.PrintStartupBanner(catalogSource, len(entries), priv.Elevated)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup signal handler so an interrupt kills a running installer
	sighandler.SetupSignalHandler(ctx, cancel, func() {
		logging.Warn("Interrupted — stopping...")
	})

	prober := probe.New()
	prober.FallbackDirs = cfg.FallbackDirs
	prober.Python = cfg.Python

	logging.Phase("Auditing host capabilities")
	results, missing := resolve.Resolve(ctx, entries, prober.Probe)
	report.PrintResults(entries, results)
	report.PrintSummary(missing)

	installer := &remedy.AptInstaller{Binary: cfg.Installer, AssumeYes: cfg.AssumeYes}
	escalator := &remedy.SudoEscalator{Binary: cfg.Escalator, Inner: installer}

	var res remedy.Result
	switch {
	case cfg.ReportOnly && len(missing) > 0:
		// Audit-only mode: hand the user the exact command instead.
		cmdline := installer.Command(missing)
		if !priv.Elevated {
			cmdline = escalator.Command(missing)
		}
		res = remedy.Result{Outcome: remedy.ReportedOnly, ManualCommand: cmdline}
	case len(missing) > 0:
		logging.Phase("Installing missing packages")
		res = remedy.Remediate(ctx, missing, priv, installer, escalator)
	default:
		res = remedy.Remediate(ctx, missing, priv, installer, escalator)
	}

	report.PrintOutcome(res)

	code := exitcode.Success
	switch {
	case ctx.Err() != nil:
		code = exitcode.Interrupted
	case res.Outcome == remedy.Failed:
		code = exitcode.InstallFailed
	case res.Outcome == remedy.ReportedOnly:
		code = exitcode.ManualAction
	}

	banner.PrintCompletionBanner(code)
	os.Exit(code)
	return nil // unreachable
}
