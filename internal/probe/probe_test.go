package probe

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/preflight/internal/catalog"
)

// stubRunner returns canned subprocess results and records invocations.
type stubRunner struct {
	stdout string
	stderr string
	err    error

	calls [][]string
}

func (s *stubRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	s.calls = append(s.calls, append([]string{name}, args...))
	return s.stdout, s.stderr, s.err
}

func newProber(r Runner) *Prober {
	p := New()
	p.Runner = r
	return p
}

func TestProbeExecutableOnPath(t *testing.T) {
	desc := func(name string) catalog.Descriptor {
		return catalog.Descriptor{ID: name, Kind: catalog.ExecutableOnPath, ProbeArgs: []string{name}, Packages: []string{name}}
	}

	t.Run("present when on PATH", func(t *testing.T) {
		p := newProber(&stubRunner{})
		res := p.Probe(context.Background(), desc("ls"))
		assert.Equal(t, "ls", res.DescriptorID)
		assert.True(t, res.Present)
	})

	t.Run("absent when nowhere", func(t *testing.T) {
		p := newProber(&stubRunner{})
		p.FallbackDirs = nil
		res := p.Probe(context.Background(), desc("this-tool-definitely-does-not-exist-12345"))
		assert.False(t, res.Present)
	})

	t.Run("found via fallback dir", func(t *testing.T) {
		dir := t.TempDir()
		bin := filepath.Join(dir, "fakeparted")
		require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755))

		p := newProber(&stubRunner{})
		p.FallbackDirs = []string{dir}
		res := p.Probe(context.Background(), desc("fakeparted"))
		assert.True(t, res.Present)
	})

	t.Run("fallback requires the executable bit", func(t *testing.T) {
		dir := t.TempDir()
		bin := filepath.Join(dir, "fakeparted")
		require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o644))

		p := newProber(&stubRunner{})
		p.FallbackDirs = []string{dir}
		res := p.Probe(context.Background(), desc("fakeparted"))
		assert.False(t, res.Present)
	})

	t.Run("fallback ignores directories", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "fakeparted"), 0o755))

		p := newProber(&stubRunner{})
		p.FallbackDirs = []string{dir}
		res := p.Probe(context.Background(), desc("fakeparted"))
		assert.False(t, res.Present)
	})
}

func TestProbePackageRegistered(t *testing.T) {
	desc := catalog.Descriptor{
		ID:        "python3-gi",
		Kind:      catalog.PackageRegistered,
		ProbeArgs: []string{"python3-gi"},
		Packages:  []string{"python3-gi"},
	}

	t.Run("present when dpkg reports installed", func(t *testing.T) {
		r := &stubRunner{stdout: "install ok installed"}
		res := newProber(r).Probe(context.Background(), desc)
		assert.True(t, res.Present)

		require.Len(t, r.calls, 1)
		assert.Equal(t, []string{"dpkg-query", "-W", "-f=${Status}", "python3-gi"}, r.calls[0])
	})

	t.Run("absent when package is deinstalled", func(t *testing.T) {
		r := &stubRunner{stdout: "deinstall ok config-files"}
		res := newProber(r).Probe(context.Background(), desc)
		assert.False(t, res.Present)
	})

	t.Run("probe errors collapse to absent", func(t *testing.T) {
		r := &stubRunner{err: errors.New("dpkg-query: no packages found")}
		res := newProber(r).Probe(context.Background(), desc)
		assert.False(t, res.Present)
	})
}

func TestProbeBindingImportable(t *testing.T) {
	desc := catalog.Descriptor{
		ID:        "gtk3-binding",
		Kind:      catalog.BindingImportable,
		ProbeArgs: []string{"gi", "Gtk", "3.0"},
		Packages:  []string{"python3-gi", "gir1.2-gtk-3.0"},
	}

	t.Run("present on clean import", func(t *testing.T) {
		r := &stubRunner{}
		res := newProber(r).Probe(context.Background(), desc)
		assert.True(t, res.Present)

		require.Len(t, r.calls, 1)
		assert.Equal(t, "python3", r.calls[0][0])
		assert.Equal(t, "-c", r.calls[0][1])
		assert.Equal(t, `import gi; gi.require_version("Gtk", "3.0"); from gi.repository import Gtk`, r.calls[0][2])
	})

	t.Run("absent on nonzero exit", func(t *testing.T) {
		r := &stubRunner{stderr: "ModuleNotFoundError: No module named 'gi'", err: errors.New("exit status 1")}
		res := newProber(r).Probe(context.Background(), desc)
		assert.False(t, res.Present)
	})

	t.Run("absent when diagnostics appear despite exit 0", func(t *testing.T) {
		r := &stubRunner{stderr: "Gtk-WARNING: version mismatch"}
		res := newProber(r).Probe(context.Background(), desc)
		assert.False(t, res.Present)
	})

	t.Run("single-arg form imports the module only", func(t *testing.T) {
		r := &stubRunner{}
		d := catalog.Descriptor{ID: "yaml-binding", Kind: catalog.BindingImportable, ProbeArgs: []string{"yaml"}, Packages: []string{"python3-yaml"}}
		newProber(r).Probe(context.Background(), d)

		require.Len(t, r.calls, 1)
		assert.Equal(t, "import yaml", r.calls[0][2])
	})

	t.Run("honors a custom interpreter", func(t *testing.T) {
		r := &stubRunner{}
		p := newProber(r)
		p.Python = "python3.11"
		p.Probe(context.Background(), desc)

		require.Len(t, r.calls, 1)
		assert.Equal(t, "python3.11", r.calls[0][0])
	})
}
