// Package banner provides colored banner display functions for the preflight CLI.
//
// Banner functions write formatted output to stdout with color-coded headers
// and separators, marking the start and end of an audit run.
package banner

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/CodexForgeBR/preflight/internal/exitcode"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold).SprintFunc()
	successColor = color.New(color.FgGreen, color.Bold).SprintFunc()
	errorColor   = color.New(color.FgRed, color.Bold).SprintFunc()
	warnColor    = color.New(color.FgYellow, color.Bold).SprintFunc()
)

const separator = "═══════════════════════════════════════════════════"

// PrintStartupBanner displays the startup banner with audit parameters.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  preflight - host dependency audit
//	═══════════════════════════════════════════════════
//	  Catalog:    built-in (9 entries)
//	  Elevated:   false
//	═══════════════════════════════════════════════════
func PrintStartupBanner(catalogSource string, entryCount int, elevated bool) {
	sep := headerColor(separator)
	fmt.Println(sep)
	fmt.Println(headerColor("  preflight - host dependency audit"))
	fmt.Println(sep)
	fmt.Printf("  Catalog:    %s (%d entries)\n", catalogSource, entryCount)
	fmt.Printf("  Elevated:   %t\n", elevated)
	fmt.Println(sep)
}

// PrintCompletionBanner displays the final banner colored by exit code.
func PrintCompletionBanner(code int) {
	colorize := successColor
	switch code {
	case exitcode.InstallFailed, exitcode.Interrupted:
		colorize = errorColor
	case exitcode.ManualAction:
		colorize = warnColor
	}

	sep := colorize(separator)
	fmt.Println(sep)
	fmt.Println(colorize(fmt.Sprintf("  preflight finished: %s (exit %d)", exitcode.Name(code), code)))
	fmt.Println(sep)
}
