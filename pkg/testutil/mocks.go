package testutil

import (
	"context"
	"fmt"
	"strings"

	"github.com/dotup-sh/dotup/pkg/types"
)

// BatchCall records one InstallBatch invocation on the MockManager.
type BatchCall struct {
	Names  []string
	Source types.Source
}

// MockManager is an in-memory pacman.Manager for tests.
type MockManager struct {
	// Installed is the simulated package database.
	Installed map[string]bool

	// FailSources makes InstallBatch fail for the listed sources
	// without touching Installed.
	FailSources map[types.Source]bool

	// Batches records every InstallBatch call in order.
	Batches []BatchCall
}

// NewMockManager creates a MockManager with the given packages installed.
func NewMockManager(installed ...string) *MockManager {
	m := &MockManager{
		Installed:   make(map[string]bool),
		FailSources: make(map[types.Source]bool),
	}
	for _, name := range installed {
		m.Installed[name] = true
	}
	return m
}

// QueryInstalled reports simulated installed state. Absence is a normal
// false, mirroring the production adapter.
func (m *MockManager) QueryInstalled(_ context.Context, name string) (bool, error) {
	return m.Installed[name], nil
}

// InstallBatch records the call and marks the batch installed unless
// the source is configured to fail.
func (m *MockManager) InstallBatch(_ context.Context, names []string, source types.Source) error {
	m.Batches = append(m.Batches, BatchCall{Names: append([]string(nil), names...), Source: source})
	if m.FailSources[source] {
		return fmt.Errorf("simulated batch failure for %s", source)
	}
	for _, name := range names {
		m.Installed[name] = true
	}
	return nil
}

// FakeRunner is an in-memory pacman.Runner for tests.
type FakeRunner struct {
	// Binaries maps binary names to fake paths for LookPath.
	Binaries map[string]string

	// QuietExitCodes maps a joined command line to its exit code.
	QuietExitCodes map[string]int

	// RunErrors maps a joined command line to an injected error.
	RunErrors map[string]error

	// RunErrorPrefixes injects errors for command lines by prefix,
	// for commands whose arguments contain temp paths.
	RunErrorPrefixes map[string]error

	// Commands records every Run/RunIn/RunQuiet command line in order.
	Commands []string
}

// NewFakeRunner creates an empty FakeRunner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		Binaries:         make(map[string]string),
		QuietExitCodes:   make(map[string]int),
		RunErrors:        make(map[string]error),
		RunErrorPrefixes: make(map[string]error),
	}
}

func (r *FakeRunner) record(name string, args ...string) string {
	line := strings.Join(append([]string{name}, args...), " ")
	r.Commands = append(r.Commands, line)
	return line
}

func (r *FakeRunner) errorFor(line string) error {
	if err, ok := r.RunErrors[line]; ok {
		return err
	}
	for prefix, err := range r.RunErrorPrefixes {
		if strings.HasPrefix(line, prefix) {
			return err
		}
	}
	return nil
}

// Run records the command and returns any injected error.
func (r *FakeRunner) Run(_ context.Context, name string, args ...string) error {
	return r.errorFor(r.record(name, args...))
}

// RunIn behaves like Run; the directory is not recorded.
func (r *FakeRunner) RunIn(_ context.Context, _ string, name string, args ...string) error {
	return r.errorFor(r.record(name, args...))
}

// RunQuiet records the command and returns the configured exit code.
func (r *FakeRunner) RunQuiet(_ context.Context, name string, args ...string) (int, error) {
	line := r.record(name, args...)
	if err := r.errorFor(line); err != nil {
		return -1, err
	}
	return r.QuietExitCodes[line], nil
}

// LookPath resolves against the Binaries map.
func (r *FakeRunner) LookPath(name string) (string, error) {
	if path, ok := r.Binaries[name]; ok {
		return path, nil
	}
	return "", fmt.Errorf("%s: executable file not found in $PATH", name)
}
