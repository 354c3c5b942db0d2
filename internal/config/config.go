// Package config defines the preflight configuration model and default values.
//
// Configuration is assembled from multiple sources with a strict precedence
// chain: built-in defaults < global config file < project config file <
// explicit config file < CLI flag overrides.
package config

import "strings"

// WhitelistedVars lists every configuration variable name that may appear in
// config files. Variables not in this list are silently ignored during loading.
var WhitelistedVars = [8]string{
	"CATALOG_FILE",
	"FALLBACK_DIRS",
	"PYTHON",
	"INSTALLER",
	"ESCALATOR",
	"ASSUME_YES",
	"REPORT_ONLY",
	"VERBOSE",
}

// Config holds every configuration field for the preflight CLI.
type Config struct {
	// CatalogFile optionally replaces the built-in requirement catalog.
	CatalogFile string

	// Probe settings.
	FallbackDirs []string
	Python       string

	// Remediation settings.
	Installer  string
	Escalator  string
	AssumeYes  bool
	ReportOnly bool

	// Output settings.
	Verbose bool

	// ConfigFile is the explicit config path from the CLI; never read from
	// config files themselves.
	ConfigFile string
}

// NewDefaultConfig returns a Config populated with built-in defaults.
func NewDefaultConfig() *Config {
	return &Config{
		FallbackDirs: []string{"/sbin", "/usr/sbin", "/usr/local/sbin"},
		Python:       "python3",
		Installer:    "apt-get",
		Escalator:    "sudo",
		AssumeYes:    true,
	}
}

// ParseDirList splits a colon-separated directory list, dropping empty
// elements. Used for the FALLBACK_DIRS variable.
func ParseDirList(value string) []string {
	var dirs []string
	for _, d := range strings.Split(value, ":") {
		if d = strings.TrimSpace(d); d != "" {
			dirs = append(dirs, d)
		}
	}
	return dirs
}
