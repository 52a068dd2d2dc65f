package tools

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"oreutils/internal/system"
)

// DefaultRustflags asks rustc to optimize for the host CPU.
const DefaultRustflags = "-Ctarget-cpu=native"

// Builder installs a package from the registry.
type Builder interface {
	Install(ctx context.Context, pkg string, force bool) error
}

// Cargo runs `cargo install [-f] <pkg>`.
type Cargo struct {
	Bin       string // defaults to "cargo"
	Rustflags string // defaults to DefaultRustflags
	Stdout    io.Writer
	Stderr    io.Writer
}

// Args returns the argument list for installing pkg.
func (c Cargo) Args(pkg string, force bool) []string {
	if force {
		return []string{"install", "-f", pkg}
	}
	return []string{"install", pkg}
}

// Install runs cargo and waits for it to exit.
func (c Cargo) Install(ctx context.Context, pkg string, force bool) error {
	bin := c.Bin
	if bin == "" {
		bin = "cargo"
	}
	flags := c.Rustflags
	if flags == "" {
		flags = DefaultRustflags
	}
	args := c.Args(pkg, force)
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Env = append(os.Environ(), "RUSTFLAGS="+flags)
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	system.Logger.Debug("running build command", "bin", bin, "args", args, "rustflags", flags)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("installing %q: %w", pkg, err)
	}
	return nil
}
