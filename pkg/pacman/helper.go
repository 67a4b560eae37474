package pacman

import (
	"context"
	"os"
	"path/filepath"

	"github.com/dotup-sh/dotup/pkg/errors"
	"github.com/dotup-sh/dotup/pkg/logging"
)

// DetectHelper returns the first AUR helper from the preference-ordered
// candidate list that resolves on PATH. It returns a NO_AUR_HELPER error
// when none is found.
func DetectHelper(runner Runner, candidates []string) (string, error) {
	if runner == nil {
		runner = NewExecRunner()
	}
	logger := logging.GetLogger("pacman.helper")

	for _, candidate := range candidates {
		if path, err := runner.LookPath(candidate); err == nil {
			logger.Debug().Str("helper", candidate).Str("path", path).Msg("AUR helper found")
			return candidate, nil
		}
	}
	return "", errors.Newf(errors.ErrNoAURHelper,
		"no AUR helper found (tried: %v)", candidates)
}

// BootstrapHelper builds and installs an AUR helper from source by
// cloning its AUR repository and running makepkg. Requires network
// access and elevated privileges; failure is fatal for the caller
// because AUR-sourced required packages become uninstallable.
func BootstrapHelper(ctx context.Context, runner Runner, repoURL, pkgName string) error {
	if runner == nil {
		runner = NewExecRunner()
	}
	logger := logging.GetLogger("pacman.helper")
	logger.Info().Str("repo", repoURL).Str("package", pkgName).Msg("Bootstrapping AUR helper")

	buildDir, err := os.MkdirTemp("", "dotup-aur-*")
	if err != nil {
		return errors.Wrap(err, errors.ErrHelperBootstrap, "failed to create build directory")
	}
	defer func() {
		if err := os.RemoveAll(buildDir); err != nil {
			logger.Warn().Err(err).Str("dir", buildDir).Msg("Failed to clean up build directory")
		}
	}()

	cloneDir := filepath.Join(buildDir, pkgName)
	if err := runner.Run(ctx, "git", "clone", "--depth=1", repoURL, cloneDir); err != nil {
		return errors.Wrapf(err, errors.ErrHelperBootstrap, "failed to clone %s", repoURL)
	}

	// makepkg resolves build deps and installs the result via sudo pacman -U
	if err := runner.RunIn(ctx, cloneDir, "makepkg", "-si", "--noconfirm"); err != nil {
		return errors.Wrapf(err, errors.ErrHelperBootstrap, "makepkg failed for %s", pkgName)
	}

	logger.Info().Str("package", pkgName).Msg("AUR helper installed")
	return nil
}
