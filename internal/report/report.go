// Package report renders probe results and the final remediation outcome.
//
// It is purely observational: every decision has already been made by the
// resolver and remediator by the time anything here runs.
package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/CodexForgeBR/preflight/internal/catalog"
	"github.com/CodexForgeBR/preflight/internal/logging"
	"github.com/CodexForgeBR/preflight/internal/probe"
	"github.com/CodexForgeBR/preflight/internal/remedy"
	"github.com/CodexForgeBR/preflight/internal/resolve"
)

var (
	presentTag = color.New(color.FgGreen).SprintFunc()
	absentTag  = color.New(color.FgRed).SprintFunc()
	cmdStyle   = color.New(color.Bold).SprintFunc()
)

// PrintResults prints one line per catalog entry:
//
//	[present] parted (parted)
//	[absent]  nmcli (network-manager)
//
// results must be in catalog order, as returned by resolve.Resolve.
func PrintResults(entries []catalog.Descriptor, results []probe.Result) {
	for i, d := range entries {
		pkgs := strings.Join(d.Packages, ", ")
		if results[i].Present {
			fmt.Printf("%s %s (%s)\n", presentTag("[present]"), d.ID, pkgs)
		} else {
			fmt.Printf("%s  %s (%s)\n", absentTag("[absent]"), d.ID, pkgs)
		}
	}
}

// PrintSummary prints the missing-package summary after the per-entry lines.
func PrintSummary(set resolve.InstallationSet) {
	if len(set) == 0 {
		logging.Success("All required capabilities are present")
		return
	}
	logging.Warn(fmt.Sprintf("Missing packages: %s", strings.Join(set, ", ")))
}

// PrintOutcome reports the terminal remediation result.
func PrintOutcome(res remedy.Result) {
	switch res.Outcome {
	case remedy.AlreadySatisfied:
		// PrintSummary already said everything there is to say.
	case remedy.InstalledDirectly:
		logging.Success("Missing packages installed")
	case remedy.InstalledViaEscalation:
		logging.Success("Missing packages installed (via escalation)")
	case remedy.ReportedOnly:
		logging.Warn("Privilege escalation unavailable; run the following as an administrator:")
		fmt.Println("  " + cmdStyle(res.ManualCommand))
	case remedy.Failed:
		logging.Error(fmt.Sprintf("Installation failed: %v", res.Err))
	}
}
