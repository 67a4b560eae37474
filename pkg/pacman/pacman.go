// Package pacman is the typed adapter over the system package manager.
// The core installer logic never parses command output; installed state
// and install results are surfaced as typed values.
package pacman

import (
	"context"

	"github.com/dotup-sh/dotup/pkg/errors"
	"github.com/dotup-sh/dotup/pkg/logging"
	"github.com/dotup-sh/dotup/pkg/types"
)

// Manager is the capability surface the installer needs from a
// package manager.
type Manager interface {
	// QueryInstalled reports whether a package is installed.
	// Absence is a normal false result, not an error.
	QueryInstalled(ctx context.Context, name string) (bool, error)

	// InstallBatch installs all named packages in a single bulk
	// invocation for the given source.
	InstallBatch(ctx context.Context, names []string, source types.Source) error
}

// System is the production Manager backed by pacman and an AUR helper.
type System struct {
	runner Runner
	helper string
}

// NewSystem creates a Manager that shells out to pacman. The helper is
// the AUR helper binary used for AUR batches; it may be empty when no
// AUR packages will be installed.
func NewSystem(runner Runner, helper string) *System {
	if runner == nil {
		runner = NewExecRunner()
	}
	return &System{runner: runner, helper: helper}
}

// SetHelper sets the AUR helper binary after detection or bootstrap.
func (s *System) SetHelper(helper string) {
	s.helper = helper
}

// QueryInstalled runs `pacman -Q <name>`. A non-zero exit means the
// package is not installed.
func (s *System) QueryInstalled(ctx context.Context, name string) (bool, error) {
	code, err := s.runner.RunQuiet(ctx, "pacman", "-Q", "--", name)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrQueryFailed, "failed to query package %s", name)
	}
	return code == 0, nil
}

// InstallBatch issues exactly one bulk install call for the batch.
// There is no per-package fallback: on failure the caller reports and
// the operator re-runs, relying on QueryInstalled being re-evaluated.
func (s *System) InstallBatch(ctx context.Context, names []string, source types.Source) error {
	if len(names) == 0 {
		return nil
	}
	logger := logging.GetLogger("pacman")

	var cmd string
	var args []string
	switch source {
	case types.SourceRepo:
		cmd = "sudo"
		args = append([]string{"pacman", "-S", "--needed", "--"}, names...)
	case types.SourceAUR:
		if s.helper == "" {
			return errors.New(errors.ErrNoAURHelper, "no AUR helper configured for AUR batch")
		}
		cmd = s.helper
		args = append([]string{"-S", "--needed", "--"}, names...)
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown package source %q", source)
	}

	logger.Info().Str("source", string(source)).Strs("packages", names).Msg("Installing package batch")
	logging.LogCommand(cmd, args)

	if err := s.runner.Run(ctx, cmd, args...); err != nil {
		return errors.Wrapf(err, errors.ErrInstallFailed,
			"batch install failed for %d %s package(s)", len(names), source)
	}
	return nil
}
