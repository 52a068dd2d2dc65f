// Package manager runs install and upgrade over the tool roster, one tool
// at a time, turning every per-tool failure into a printed line.
package manager

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sahilm/fuzzy"

	"oreutils/internal/crates"
	"oreutils/internal/system"
	"oreutils/internal/tools"
	"oreutils/internal/ui"
)

// ErrNotImplemented is returned by Uninstall.
var ErrNotImplemented = errors.New("uninstall is not implemented")

// Manager dispatches commands over a roster.
type Manager struct {
	Roster   tools.Roster
	Resolver *tools.Resolver
	Builder  tools.Builder
	Finder   tools.Finder
	Out      io.Writer
}

func (m *Manager) out() io.Writer {
	if m.Out == nil {
		return os.Stdout
	}
	return m.Out
}

func (m *Manager) printf(format string, a ...any) {
	fmt.Fprintf(m.out(), format, a...)
}

// selectTools resolves selector against the roster and explains an empty
// result.
func (m *Manager) selectTools(selector string) []tools.Tool {
	sel := m.Roster.Select(selector)
	system.Logger.Debug("selected tools", "selector", selector, "count", len(sel))
	if len(sel) == 0 {
		if hint := m.suggest(selector); hint != "" {
			m.printf("No tool matches %q, did you mean %q?\n", selector, hint)
		} else {
			m.printf("No tool matches %q\n", selector)
		}
	}
	return sel
}

func (m *Manager) suggest(selector string) string {
	if selector == "" {
		return ""
	}
	matches := fuzzy.Find(selector, m.Roster.Identities())
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

// Install builds every selected tool whose executable is not on PATH.
func (m *Manager) Install(ctx context.Context, selector string) error {
	selected := m.selectTools(selector)
	for i, t := range selected {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.printf("[%d/%d] %s\n", i+1, len(selected), ui.Bold(t.Name))
		if path, err := m.Finder.LookPath(t.CLI); err == nil {
			system.Logger.Debug("found executable", "cli", t.CLI, "path", path)
			m.printf("  %s Tool %q already installed, use `oreutils upgrade` to upgrade\n", ui.Skip(), t.Name)
			continue
		}
		m.printf("  %s Installing %s…\n", ui.Run(), t.Package)
		if err := m.Builder.Install(ctx, t.Package, false); err != nil {
			m.printf("  %s Installing %q failed: %v\n", ui.Fail(), t.Package, err)
			continue
		}
		m.printf("  %s Installed %s\n", ui.OK(), t.Name)
	}
	return nil
}

// Upgrade resolves every selected tool and reports one line per outcome.
func (m *Manager) Upgrade(ctx context.Context, selector string) error {
	selected := m.selectTools(selector)
	for i, t := range selected {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.printf("[%d/%d] %s\n", i+1, len(selected), ui.Bold(t.Name))
		res, err := m.Resolver.Resolve(ctx, t)
		m.printf("  %s\n", m.describe(t, res, err))
	}
	return nil
}

func (m *Manager) describe(t tools.Tool, res tools.Resolved, err error) string {
	var (
		broken *tools.VersionBrokenError
		fetch  *tools.FetchError
		build  *tools.BuildError
	)
	switch {
	case err == nil && res.Upgraded:
		return fmt.Sprintf("%s Tool %s upgraded from %s to %s", ui.OK(), t.Name, res.Installed, res.Version)
	case err == nil:
		return fmt.Sprintf("%s Tool %s already up to date (%s)", ui.OK(), t.Name, res.Version)
	case errors.Is(err, tools.ErrNotFound):
		return fmt.Sprintf("%s Tool %s not installed, use `oreutils install` to install", ui.Skip(), t.Name)
	case errors.As(err, &broken) && broken.HasRaw:
		return fmt.Sprintf("%s `%s --version` didn't produce expected output: could not parse %s", ui.Fail(), t.CLI, broken.Raw)
	case errors.As(err, &broken):
		return fmt.Sprintf("%s `%s --version` didn't produce expected output", ui.Fail(), t.CLI)
	case errors.As(err, &fetch):
		return fmt.Sprintf("%s Could not check crates.io for %s: %s", ui.Fail(), t.Package, registryReason(fetch.Err))
	case errors.As(err, &build):
		return fmt.Sprintf("%s Upgrading %s from %s failed: %v", ui.Fail(), t.Name, res.Installed, build.Err)
	default:
		return fmt.Sprintf("%s Tool %s: %v", ui.Fail(), t.Name, err)
	}
}

func registryReason(err error) string {
	switch {
	case errors.Is(err, crates.ErrNoCrate):
		return "no crate found"
	case errors.Is(err, crates.ErrNoVersions):
		return "crate has no release versions"
	case errors.Is(err, crates.ErrBadResponse):
		return "bad response from registry"
	default:
		return err.Error()
	}
}

// Uninstall is a stub; it always fails.
func (m *Manager) Uninstall(ctx context.Context, selector string) error {
	return ErrNotImplemented
}
