package manager

import (
	"context"
	"errors"
	"fmt"

	"oreutils/internal/tools"
	"oreutils/internal/ui"
)

// List prints the installed version of every tool.
func (m *Manager) List(ctx context.Context) error {
	for _, t := range m.Roster {
		if err := ctx.Err(); err != nil {
			return err
		}
		v, err := m.Resolver.Installed(ctx, t)
		var broken *tools.VersionBrokenError
		switch {
		case err == nil:
			m.printf("- %s (%s): %s\n", t.Name, t.CLI, v)
		case errors.Is(err, tools.ErrNotFound):
			m.printf("- %s (%s): not installed\n", t.Name, t.CLI)
		case errors.As(err, &broken):
			m.printf("- %s (%s): ? (%v)\n", t.Name, t.CLI, broken)
		default:
			m.printf("- %s (%s): %v\n", t.Name, t.CLI, err)
		}
	}
	return nil
}

// ListRemote prints the latest stable registry version of every tool.
func (m *Manager) ListRemote(ctx context.Context) error {
	for _, t := range m.Roster {
		if err := ctx.Err(); err != nil {
			return err
		}
		v, err := m.Resolver.Registry.LatestVersion(ctx, t.Package)
		if err != nil {
			m.printf("- %s: %s %s\n", t.Package, ui.Fail(), registryReason(err))
			continue
		}
		m.printf("- %s: %s\n", t.Package, v)
	}
	return nil
}

// Summary is a one-line description of the roster, used in help text.
func Summary(r tools.Roster) string {
	s := ""
	for i, t := range r {
		if i > 0 {
			s += ", "
		}
		s += t.Name
	}
	return fmt.Sprintf("Install the basic utilities: %s", s)
}
