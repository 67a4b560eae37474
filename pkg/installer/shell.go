package installer

import (
	"context"
	"os"

	"github.com/dotup-sh/dotup/pkg/errors"
)

// EnsureShell compares the current login shell to the configured target
// and offers to change it via chsh. Declines and chsh failures are
// warnings, never fatal: the configuration still works with a different
// login shell, just degraded.
func (i *Installer) EnsureShell(ctx context.Context) {
	target := i.cfg.Shell.Target
	current := os.Getenv("SHELL")

	if current == target {
		i.logger.Debug().Str("shell", target).Msg("Login shell already set")
		return
	}

	if _, err := i.runner.LookPath(target); err != nil {
		i.logger.Warn().Str("shell", target).Msg("Target shell not installed, skipping shell change")
		return
	}

	ok, err := i.prompter.Confirm("Change login shell to "+target, false)
	if err != nil {
		i.logger.Warn().Err(err).Msg("Shell change prompt failed, skipping")
		return
	}
	if !ok {
		i.logger.Info().Str("shell", target).Msg("Shell change declined")
		return
	}

	if i.dryRun {
		i.logger.Info().Str("shell", target).Msg("Would change login shell (dry run)")
		return
	}

	if err := i.runner.Run(ctx, "chsh", "-s", target); err != nil {
		werr := errors.Wrapf(err, errors.ErrShellChange, "failed to change login shell to %s", target)
		i.logger.Warn().Err(werr).Msg("Shell change failed, continuing")
		return
	}
	i.logger.Info().Str("shell", target).Msg("Login shell changed (takes effect on next login)")
}
