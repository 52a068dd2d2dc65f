package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"

	"oreutils/internal/system"
)

// ErrNotFound means the tool's executable could not be run.
var ErrNotFound = errors.New("not installed")

// FetchError wraps a registry failure; errors.Is sees the crates kind.
type FetchError struct {
	Package string
	Err     error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching latest %s: %v", e.Package, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// BuildError wraps a failed reinstall.
type BuildError struct {
	Package string
	Err     error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("installing %s failed: %v", e.Package, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// Fetcher returns the latest stable version of a registry package.
type Fetcher interface {
	LatestVersion(ctx context.Context, pkg string) (*semver.Version, error)
}

// Resolved is the result of an upgrade check.
type Resolved struct {
	Installed *semver.Version
	// Version is what is installed afterwards: the registry latest when
	// Upgraded, otherwise Installed.
	Version  *semver.Version
	Upgraded bool
}

// Resolver decides whether a tool needs a reinstall and performs it.
type Resolver struct {
	Runner   Runner
	Registry Fetcher
	Builder  Builder
}

// Installed runs `<cli> --version` and parses the result.
func (r *Resolver) Installed(ctx context.Context, t Tool) (*semver.Version, error) {
	out, err := r.Runner.Output(ctx, t.CLI, "--version")
	if err != nil {
		system.Logger.Debug("version query failed", "cli", t.CLI, "err", err)
		return nil, ErrNotFound
	}
	return ParseInstalledVersion(out)
}

// Resolve compares the installed version with the registry and forces a
// reinstall when the installed one is older.
func (r *Resolver) Resolve(ctx context.Context, t Tool) (Resolved, error) {
	cur, err := r.Installed(ctx, t)
	if err != nil {
		return Resolved{}, err
	}
	latest, err := r.Registry.LatestVersion(ctx, t.Package)
	if err != nil {
		return Resolved{}, &FetchError{Package: t.Package, Err: err}
	}
	system.Logger.Debug("compared versions", "tool", t.Name, "installed", cur, "latest", latest)

	if !cur.LessThan(latest) {
		return Resolved{Installed: cur, Version: cur}, nil
	}
	if err := r.Builder.Install(ctx, t.Package, true); err != nil {
		return Resolved{Installed: cur}, &BuildError{Package: t.Package, Err: err}
	}
	return Resolved{Installed: cur, Version: latest, Upgraded: true}, nil
}
