// Package catalog defines the static table of host capabilities the parent
// application requires, each annotated with the Debian package(s) that
// provide it.
//
// Adding or removing a requirement is a data change here, never a logic
// change elsewhere: the resolver and probes are generic over the entries.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ProbeKind selects how a capability is verified on the host.
type ProbeKind string

// Probe kinds recognized by the prober.
const (
	// ExecutableOnPath checks that a command resolves via $PATH or one of
	// the configured fallback directories.
	ExecutableOnPath ProbeKind = "executable"
	// PackageRegistered checks the host package database, regardless of
	// whether the package's files are currently resolvable.
	PackageRegistered ProbeKind = "package"
	// BindingImportable checks that a language binding imports cleanly in
	// the target interpreter.
	BindingImportable ProbeKind = "binding"
)

// Descriptor describes one required capability.
//
// ProbeArgs are kind-specific: the executable name for ExecutableOnPath,
// the package name for PackageRegistered, and module/namespace/version for
// BindingImportable. Packages lists the installable package name(s) that
// satisfy the capability when it is absent.
type Descriptor struct {
	ID        string    `yaml:"id"`
	Kind      ProbeKind `yaml:"kind"`
	ProbeArgs []string  `yaml:"args"`
	Packages  []string  `yaml:"packages"`
}

// Default returns the built-in catalog in declared order.
//
// The entries cover the disk, network, and GUI-binding tools the installer
// shells out to. Order matters: it drives probe order and the order of the
// resulting installation set.
func Default() []Descriptor {
	return []Descriptor{
		{ID: "parted", Kind: ExecutableOnPath, ProbeArgs: []string{"parted"}, Packages: []string{"parted"}},
		{ID: "partprobe", Kind: ExecutableOnPath, ProbeArgs: []string{"partprobe"}, Packages: []string{"parted"}},
		{ID: "mkfs.vfat", Kind: ExecutableOnPath, ProbeArgs: []string{"mkfs.vfat"}, Packages: []string{"dosfstools"}},
		{ID: "fsck.vfat", Kind: ExecutableOnPath, ProbeArgs: []string{"fsck.vfat"}, Packages: []string{"dosfstools"}},
		{ID: "lsblk", Kind: ExecutableOnPath, ProbeArgs: []string{"lsblk"}, Packages: []string{"util-linux"}},
		{ID: "udisksctl", Kind: ExecutableOnPath, ProbeArgs: []string{"udisksctl"}, Packages: []string{"udisks2"}},
		{ID: "nmcli", Kind: ExecutableOnPath, ProbeArgs: []string{"nmcli"}, Packages: []string{"network-manager"}},
		{ID: "python3-gi", Kind: PackageRegistered, ProbeArgs: []string{"python3-gi"}, Packages: []string{"python3-gi"}},
		{ID: "gtk3-binding", Kind: BindingImportable, ProbeArgs: []string{"gi", "Gtk", "3.0"}, Packages: []string{"python3-gi", "gir1.2-gtk-3.0"}},
	}
}

// catalogFile is the on-disk YAML shape accepted by LoadFile.
type catalogFile struct {
	Entries []Descriptor `yaml:"entries"`
}

// LoadFile reads a catalog override from a YAML file and validates it.
//
// The file must contain a top-level "entries" list; each entry uses the
// same fields as Descriptor. The loaded catalog fully replaces the
// built-in one.
func LoadFile(path string) ([]Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}

	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	if err := Validate(cf.Entries); err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return cf.Entries, nil
}

// Validate checks the catalog invariants: at least one entry, unique
// non-empty ids, a recognized probe kind, at least one probe argument,
// and a non-empty package list per entry.
func Validate(entries []Descriptor) error {
	if len(entries) == 0 {
		return fmt.Errorf("catalog has no entries")
	}

	seen := make(map[string]bool, len(entries))
	for i, d := range entries {
		if d.ID == "" {
			return fmt.Errorf("entry %d: missing id", i)
		}
		if seen[d.ID] {
			return fmt.Errorf("duplicate id: %s", d.ID)
		}
		seen[d.ID] = true

		switch d.Kind {
		case ExecutableOnPath, PackageRegistered, BindingImportable:
		default:
			return fmt.Errorf("entry %s: unknown probe kind: %q", d.ID, d.Kind)
		}

		if len(d.ProbeArgs) == 0 {
			return fmt.Errorf("entry %s: missing probe args", d.ID)
		}
		if len(d.Packages) == 0 {
			return fmt.Errorf("entry %s: no packages listed", d.ID)
		}
	}
	return nil
}
