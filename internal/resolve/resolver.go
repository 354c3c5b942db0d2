// Package resolve turns probe results into the ordered set of packages
// that must be installed to satisfy every missing capability.
package resolve

import (
	"context"

	"github.com/CodexForgeBR/preflight/internal/catalog"
	"github.com/CodexForgeBR/preflight/internal/probe"
)

// ProbeFunc checks one catalog entry against the host.
type ProbeFunc func(ctx context.Context, d catalog.Descriptor) probe.Result

// InstallationSet is an ordered, duplicate-free list of package names.
// Order is first-seen order across the catalog scan, so previews and test
// expectations are deterministic.
type InstallationSet []string

// Contains reports whether pkg is already in the set.
func (s InstallationSet) Contains(pkg string) bool {
	for _, p := range s {
		if p == pkg {
			return true
		}
	}
	return false
}

// Resolve probes every catalog entry in declared order and folds the
// packages of each absent capability into an installation set.
//
// Resolution cannot fail; the worst case is a set covering the catalog's
// full package universe. Probe results are returned alongside the set so
// the caller can report every entry individually.
func Resolve(ctx context.Context, entries []catalog.Descriptor, probeFn ProbeFunc) ([]probe.Result, InstallationSet) {
	results := make([]probe.Result, 0, len(entries))
	seen := make(map[string]bool)
	var set InstallationSet

	for _, d := range entries {
		res := probeFn(ctx, d)
		results = append(results, res)
		if res.Present {
			continue
		}
		for _, pkg := range d.Packages {
			if seen[pkg] {
				continue
			}
			seen[pkg] = true
			set = append(set, pkg)
		}
	}

	return results, set
}
