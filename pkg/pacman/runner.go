package pacman

import (
	"context"
	"errors"
	"os"
	"os/exec"
)

// Runner abstracts process execution so command construction can be
// tested without touching the system.
type Runner interface {
	// Run executes a command with inherited stdio. Interactive tools
	// (sudo, makepkg) need the terminal.
	Run(ctx context.Context, name string, args ...string) error

	// RunIn is Run with an explicit working directory.
	RunIn(ctx context.Context, dir, name string, args ...string) error

	// RunQuiet executes a command with discarded output and returns
	// its exit code. A non-zero exit is not an error.
	RunQuiet(ctx context.Context, name string, args ...string) (int, error)

	// LookPath reports where a binary resolves on PATH.
	LookPath(name string) (string, error)
}

// execRunner is the production Runner backed by os/exec.
type execRunner struct{}

// NewExecRunner creates the production process runner.
func NewExecRunner() Runner {
	return &execRunner{}
}

func (r *execRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (r *execRunner) RunIn(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (r *execRunner) RunQuiet(ctx context.Context, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}

func (r *execRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
