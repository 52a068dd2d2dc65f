package tools

import (
	"context"
	"errors"
	"os"
	"os/exec"
)

// Runner runs a command and returns what it wrote to stdout.
type Runner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// Finder resolves an executable on PATH.
type Finder interface {
	LookPath(file string) (string, error)
}

// ExecRunner runs commands on the host.
type ExecRunner struct{}

// Output executes name with args. A non-zero exit is not an error here:
// whatever the command printed is still returned. Only failing to start
// the process is reported.
func (ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	// Avoid colored or paged version banners
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return out, nil
	}
	return out, err
}

// PathFinder looks executables up with exec.LookPath.
type PathFinder struct{}

func (PathFinder) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}
