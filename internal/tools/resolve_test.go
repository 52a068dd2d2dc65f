package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/Masterminds/semver/v3"

	"oreutils/internal/crates"
)

type fakeRunner struct {
	out   map[string]string
	calls []string
}

func (f *fakeRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, name)
	if len(args) != 1 || args[0] != "--version" {
		return nil, errors.New("unexpected args")
	}
	s, ok := f.out[name]
	if !ok {
		return nil, errors.New("exec: not found")
	}
	return []byte(s), nil
}

type fakeRegistry struct {
	latest map[string]string
	err    error
	calls  int
}

func (f *fakeRegistry) LatestVersion(ctx context.Context, pkg string) (*semver.Version, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return semver.MustParse(f.latest[pkg]), nil
}

type buildCall struct {
	pkg   string
	force bool
}

type fakeBuilder struct {
	calls []buildCall
	err   error
}

func (f *fakeBuilder) Install(ctx context.Context, pkg string, force bool) error {
	f.calls = append(f.calls, buildCall{pkg, force})
	return f.err
}

var bat = Tool{Name: "bat", Package: "bat", CLI: "bat"}

func newResolver(out, latest string) (*Resolver, *fakeRegistry, *fakeBuilder) {
	reg := &fakeRegistry{latest: map[string]string{"bat": latest}}
	b := &fakeBuilder{}
	return &Resolver{
		Runner:   &fakeRunner{out: map[string]string{"bat": out}},
		Registry: reg,
		Builder:  b,
	}, reg, b
}

func TestResolve_UpgradesWhenBehind(t *testing.T) {
	r, _, b := newResolver("bat 0.18.3\n", "0.24.0")
	res, err := r.Resolve(context.Background(), bat)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if !res.Upgraded || res.Version.String() != "0.24.0" || res.Installed.String() != "0.18.3" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(b.calls) != 1 || b.calls[0] != (buildCall{"bat", true}) {
		t.Fatalf("expected one forced build, got %+v", b.calls)
	}
}

func TestResolve_UpToDate(t *testing.T) {
	for _, tc := range []struct{ installed, latest string }{
		{"bat 0.24.0", "0.24.0"},
		{"bat 0.25.0", "0.24.0"},
	} {
		r, _, b := newResolver(tc.installed, tc.latest)
		res, err := r.Resolve(context.Background(), bat)
		if err != nil {
			t.Fatalf("Resolve error: %v", err)
		}
		if res.Upgraded {
			t.Fatalf("did not expect upgrade for %s vs %s", tc.installed, tc.latest)
		}
		if res.Version.String() != res.Installed.String() {
			t.Fatalf("up-to-date should report installed version, got %+v", res)
		}
		if len(b.calls) != 0 {
			t.Fatalf("builder must not run, got %+v", b.calls)
		}
	}
}

func TestResolve_NotInstalled(t *testing.T) {
	reg := &fakeRegistry{}
	r := &Resolver{Runner: &fakeRunner{}, Registry: reg, Builder: &fakeBuilder{}}
	_, err := r.Resolve(context.Background(), bat)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if reg.calls != 0 {
		t.Fatalf("registry should not be queried for a missing tool")
	}
}

func TestResolve_VersionBroken(t *testing.T) {
	r, reg, b := newResolver("unknown\n", "1.0.0")
	_, err := r.Resolve(context.Background(), bat)
	var vb *VersionBrokenError
	if !errors.As(err, &vb) || !vb.HasRaw || vb.Raw != "unknown" {
		t.Fatalf("expected VersionBroken(unknown), got %v", err)
	}
	if reg.calls != 0 || len(b.calls) != 0 {
		t.Fatalf("nothing should run after a parse failure")
	}
}

func TestResolve_RegistryErrorPropagates(t *testing.T) {
	for _, kind := range []error{crates.ErrNoCrate, crates.ErrBadResponse, crates.ErrNoVersions} {
		r, reg, b := newResolver("bat 0.18.3", "")
		reg.err = kind
		_, err := r.Resolve(context.Background(), bat)
		var fe *FetchError
		if !errors.As(err, &fe) {
			t.Fatalf("expected FetchError, got %v", err)
		}
		if !errors.Is(err, kind) {
			t.Fatalf("expected %v to be wrapped, got %v", kind, err)
		}
		if len(b.calls) != 0 {
			t.Fatalf("builder must not run on registry failure")
		}
	}
}

func TestResolve_BuildFailure(t *testing.T) {
	r, _, b := newResolver("bat 0.18.3", "0.24.0")
	b.err = errors.New("exit status 101")
	res, err := r.Resolve(context.Background(), bat)
	var be *BuildError
	if !errors.As(err, &be) || be.Package != "bat" {
		t.Fatalf("expected BuildError, got %v", err)
	}
	if res.Upgraded {
		t.Fatalf("failed build must not report an upgrade")
	}
}
