package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"

	"oreutils/internal/crates"
	tu "oreutils/internal/testutil"
)

func TestLoad_Defaults(t *testing.T) {
	defer tu.WithEnv(t, "OREUTILS_REGISTRY", "")()
	defer tu.WithEnv(t, "OREUTILS_TIMEOUT", "")()

	s := Load(New())
	if s.Registry != crates.DefaultHost {
		t.Errorf("Registry = %q", s.Registry)
	}
	if s.Cargo != "cargo" {
		t.Errorf("Cargo = %q", s.Cargo)
	}
	if s.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v", s.Timeout)
	}
	if s.Rustflags != "-Ctarget-cpu=native" {
		t.Errorf("Rustflags = %q", s.Rustflags)
	}
}

func TestLoad_Env(t *testing.T) {
	defer tu.WithEnv(t, "OREUTILS_REGISTRY", "http://mirror.local")()
	defer tu.WithEnv(t, "OREUTILS_TIMEOUT", "3s")()
	defer tu.WithEnv(t, "OREUTILS_RUSTFLAGS", "-Copt-level=3")()

	s := Load(New())
	if s.Registry != "http://mirror.local" || s.Timeout != 3*time.Second || s.Rustflags != "-Copt-level=3" {
		t.Fatalf("unexpected settings: %+v", s)
	}
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	defer tu.WithEnv(t, "OREUTILS_CARGO", "cargo-from-env")()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String(KeyCargo, "cargo", "")
	fs.Duration(KeyTimeout, crates.DefaultTimeout, "")
	if err := fs.Parse([]string{"--cargo", "/opt/cargo", "--timeout", "0s"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	v := New()
	if err := BindFlags(v, fs); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	s := Load(v)
	if s.Cargo != "/opt/cargo" {
		t.Errorf("Cargo = %q, want flag value", s.Cargo)
	}
	if s.Timeout != crates.DefaultTimeout {
		t.Errorf("non-positive timeout should fall back to default, got %v", s.Timeout)
	}
}
