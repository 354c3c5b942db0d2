// Package probe answers whether a single cataloged capability is currently
// present on the host.
//
// Probes never fail: anything that prevents verification (missing
// permission, crashed subprocess, timeout) is reported as absent, because
// "cannot verify" and "definitely missing" both lead to the same remedial
// action.
package probe

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/CodexForgeBR/preflight/internal/catalog"
)

// Result records the outcome of probing one catalog entry.
type Result struct {
	DescriptorID string
	Present      bool
}

// Runner executes a short-lived host command and returns its stdout and
// stderr. Injected so tests can stub host state instead of spawning
// processes.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)
}

// ExecRunner runs commands on the real host.
type ExecRunner struct{}

// Run executes name with args and captures stdout and stderr separately.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// DefaultFallbackDirs are the privileged-binary directories searched when a
// command does not resolve via $PATH. On Debian, sbin tools are not on a
// normal user's PATH even when installed.
var DefaultFallbackDirs = []string{"/sbin", "/usr/sbin", "/usr/local/sbin"}

// DefaultTimeout bounds each probe subprocess. A timed-out probe counts as
// absent.
const DefaultTimeout = 10 * time.Second

// Prober checks capability descriptors against the host.
type Prober struct {
	// FallbackDirs are extra directories consulted for ExecutableOnPath
	// probes after $PATH lookup fails.
	FallbackDirs []string
	// Python is the interpreter used for BindingImportable probes.
	Python string
	// Timeout bounds each probe subprocess.
	Timeout time.Duration
	// Runner spawns probe subprocesses.
	Runner Runner
}

// New returns a Prober with host defaults.
func New() *Prober {
	return &Prober{
		FallbackDirs: DefaultFallbackDirs,
		Python:       "python3",
		Timeout:      DefaultTimeout,
		Runner:       ExecRunner{},
	}
}

// Probe reports whether the capability described by d is present.
//
// It never returns an error; see the package comment for the rationale.
func (p *Prober) Probe(ctx context.Context, d catalog.Descriptor) Result {
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	var present bool
	switch d.Kind {
	case catalog.ExecutableOnPath:
		present = p.executablePresent(d.ProbeArgs[0])
	case catalog.PackageRegistered:
		present = p.packageInstalled(ctx, d.ProbeArgs[0])
	case catalog.BindingImportable:
		present = p.bindingImports(ctx, d.ProbeArgs)
	}

	return Result{DescriptorID: d.ID, Present: present}
}

// executablePresent resolves name via $PATH, falling back to the configured
// privileged-binary directories.
func (p *Prober) executablePresent(name string) bool {
	if _, err := exec.LookPath(name); err == nil {
		return true
	}
	for _, dir := range p.FallbackDirs {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		if info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0 {
			return true
		}
	}
	return false
}

// packageInstalled asks the dpkg database whether pkg is registered as
// installed. The database is trusted as-is: a package whose files were
// partially removed still counts as present.
func (p *Prober) packageInstalled(ctx context.Context, pkg string) bool {
	stdout, _, err := p.Runner.Run(ctx, "dpkg-query", "-W", "-f=${Status}", pkg)
	if err != nil {
		return false
	}
	return strings.Contains(stdout, "install ok installed")
}

// bindingImports runs the target interpreter with an import of the binding
// module plus its version negotiation call. Present only when the
// interpreter exits zero with no diagnostic output.
//
// args is [module] or [module, namespace, version]; the three-element form
// maps to gi-style `require_version` negotiation before the namespace
// import.
func (p *Prober) bindingImports(ctx context.Context, args []string) bool {
	var script string
	if len(args) >= 3 {
		script = fmt.Sprintf("import %s; %s.require_version(%q, %q); from %s.repository import %s",
			args[0], args[0], args[1], args[2], args[0], args[1])
	} else {
		script = fmt.Sprintf("import %s", args[0])
	}

	_, stderr, err := p.Runner.Run(ctx, p.Python, "-c", script)
	if err != nil {
		return false
	}
	return strings.TrimSpace(stderr) == ""
}
