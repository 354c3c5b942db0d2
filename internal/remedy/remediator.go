// Package remedy applies, escalates, or reports the installation needed to
// satisfy missing capabilities.
//
// The decision procedure is a small state machine over the current
// privilege level: elevated processes install directly, unprivileged ones
// try escalation, and a declined escalation downgrades to a printed manual
// command rather than a failure.
package remedy

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/CodexForgeBR/preflight/internal/resolve"
)

// Outcome is the terminal result of one audit-and-fix run.
type Outcome int

const (
	// AlreadySatisfied means nothing was missing; no installer ran.
	AlreadySatisfied Outcome = iota
	// InstalledDirectly means the elevated process installed the set itself.
	InstalledDirectly
	// InstalledViaEscalation means the set was installed under escalated
	// privileges.
	InstalledViaEscalation
	// ReportedOnly means escalation was unavailable or declined and the
	// manual command was reported instead. Deliberately non-fatal.
	ReportedOnly
	// Failed means the installer itself reported an error.
	Failed
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case AlreadySatisfied:
		return "AlreadySatisfied"
	case InstalledDirectly:
		return "InstalledDirectly"
	case InstalledViaEscalation:
		return "InstalledViaEscalation"
	case ReportedOnly:
		return "ReportedOnly"
	case Failed:
		return "Failed"
	default:
		return "unknown"
	}
}

// Result couples an Outcome with its payload.
type Result struct {
	Outcome Outcome
	// ManualCommand is the exact command a human can run verbatim.
	// Set only for ReportedOnly.
	ManualCommand string
	// Err carries the installer failure. Set only for Failed.
	Err error
}

// PrivilegeContext captures the effective privilege level, read once at
// process start and immutable thereafter.
type PrivilegeContext struct {
	Elevated bool
}

// CurrentPrivileges reads the process's effective user identity.
func CurrentPrivileges() PrivilegeContext {
	return PrivilegeContext{Elevated: os.Geteuid() == 0}
}

// Installer installs an ordered list of packages through the host package
// manager, streaming the manager's own output to the user as it runs.
type Installer interface {
	Install(ctx context.Context, packages []string) error
	// Command returns the literal command line the install would run.
	Command(packages []string) string
}

// Escalator runs the installer under elevated privileges.
type Escalator interface {
	Installer
	// Available reports whether escalation can proceed right now.
	Available(ctx context.Context) bool
}

// AptInstaller shells out to the apt-get frontend.
type AptInstaller struct {
	// Binary is the package manager command, default apt-get.
	Binary string
	// AssumeYes passes -y so apt never prompts.
	AssumeYes bool
}

func (a *AptInstaller) binary() string {
	if a.Binary == "" {
		return "apt-get"
	}
	return a.Binary
}

func (a *AptInstaller) args(packages []string) []string {
	args := []string{"install"}
	if a.AssumeYes {
		args = append(args, "-y")
	}
	return append(args, packages...)
}

// Command returns the literal apt-get command line for packages.
func (a *AptInstaller) Command(packages []string) string {
	return a.binary() + " " + strings.Join(a.args(packages), " ")
}

// Install runs the package manager with stdout and stderr passed straight
// through, so a human watching stays informed during a slow network-bound
// run and failure diagnostics are never swallowed.
func (a *AptInstaller) Install(ctx context.Context, packages []string) error {
	cmd := exec.CommandContext(ctx, a.binary(), a.args(packages)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", a.binary(), err)
	}
	return nil
}

// SudoEscalator wraps an AptInstaller in a sudo invocation.
//
// Availability is checked with a non-interactive `sudo -n true`, so a
// headless run under the parent application never hangs on a password
// prompt. Refusal is not an error; it downgrades the run to a report.
type SudoEscalator struct {
	// Binary is the escalation command, default sudo.
	Binary string
	// Inner is the installer to run under escalation.
	Inner *AptInstaller
}

func (s *SudoEscalator) binary() string {
	if s.Binary == "" {
		return "sudo"
	}
	return s.Binary
}

// Available reports whether escalation would succeed without prompting.
func (s *SudoEscalator) Available(ctx context.Context) bool {
	return exec.CommandContext(ctx, s.binary(), "-n", "true").Run() == nil
}

// Command returns the escalated command line a human could run verbatim.
func (s *SudoEscalator) Command(packages []string) string {
	return s.binary() + " " + s.Inner.Command(packages)
}

// Install runs the wrapped installer under escalation, streaming output.
func (s *SudoEscalator) Install(ctx context.Context, packages []string) error {
	args := append([]string{s.Inner.binary()}, s.Inner.args(packages)...)
	cmd := exec.CommandContext(ctx, s.binary(), args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s failed: %w", s.binary(), s.Inner.binary(), err)
	}
	return nil
}

// Remediate resolves the installation set to a terminal outcome.
//
// Empty set: AlreadySatisfied, no installer invocation. Elevated: install
// directly; installer failure is fatal. Not elevated: install via the
// escalator when it is available, otherwise report the exact command a
// human must run.
func Remediate(ctx context.Context, set resolve.InstallationSet, priv PrivilegeContext, installer Installer, esc Escalator) Result {
	if len(set) == 0 {
		return Result{Outcome: AlreadySatisfied}
	}

	if priv.Elevated {
		if err := installer.Install(ctx, set); err != nil {
			return Result{Outcome: Failed, Err: err}
		}
		return Result{Outcome: InstalledDirectly}
	}

	if esc == nil || !esc.Available(ctx) {
		cmd := installer.Command(set)
		if esc != nil {
			cmd = esc.Command(set)
		}
		return Result{Outcome: ReportedOnly, ManualCommand: cmd}
	}

	if err := esc.Install(ctx, set); err != nil {
		return Result{Outcome: Failed, Err: err}
	}
	return Result{Outcome: InstalledViaEscalation}
}
