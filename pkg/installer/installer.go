// Package installer brings the system's installed-package set up to the
// declared PackageSpec set. Installed state is recomputed on every run,
// which makes re-runs after a failed batch naturally idempotent.
package installer

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/dotup-sh/dotup/pkg/config"
	"github.com/dotup-sh/dotup/pkg/errors"
	"github.com/dotup-sh/dotup/pkg/logging"
	"github.com/dotup-sh/dotup/pkg/pacman"
	"github.com/dotup-sh/dotup/pkg/types"
	"github.com/dotup-sh/dotup/pkg/ui/confirm"
)

// Mode selects which part of the declared package set is installed.
type Mode string

const (
	// ModeInteractive installs required packages and prompts per
	// missing optional package.
	ModeInteractive Mode = "interactive"

	// ModeMinimal installs required packages only.
	ModeMinimal Mode = "minimal"

	// ModeAll installs required and optional packages without prompting.
	ModeAll Mode = "all"
)

// Options configures an Installer.
type Options struct {
	Config   *config.Config
	Manager  pacman.Manager
	Runner   pacman.Runner
	Prompter confirm.Prompter
	DryRun   bool
}

// Installer executes the dependency installation workflow.
type Installer struct {
	cfg      *config.Config
	manager  pacman.Manager
	runner   pacman.Runner
	prompter confirm.Prompter
	dryRun   bool
	logger   zerolog.Logger
}

// New creates an Installer.
func New(opts Options) *Installer {
	runner := opts.Runner
	if runner == nil {
		runner = pacman.NewExecRunner()
	}
	manager := opts.Manager
	if manager == nil {
		manager = pacman.NewSystem(runner, "")
	}
	prompter := opts.Prompter
	if prompter == nil {
		prompter = confirm.NewConsole()
	}
	return &Installer{
		cfg:      opts.Config,
		manager:  manager,
		runner:   runner,
		prompter: prompter,
		dryRun:   opts.DryRun,
		logger:   logging.GetLogger("installer"),
	}
}

// ComputeMissing partitions specs by the queried installed map. It is a
// pure function of its inputs: applied twice against the same state it
// returns the same result.
func ComputeMissing(specs []types.PackageSpec, installed map[string]bool) types.Plan {
	var plan types.Plan
	for _, spec := range specs {
		if installed[spec.Name] {
			plan.Satisfied = append(plan.Satisfied, spec)
		} else {
			plan.Missing = append(plan.Missing, spec)
		}
	}
	return plan
}

// QueryStates queries the package manager for every spec. The result is
// a point-in-time snapshot, never cached.
func (i *Installer) QueryStates(ctx context.Context, specs []types.PackageSpec) (map[string]bool, error) {
	installed := make(map[string]bool, len(specs))
	for _, spec := range specs {
		ok, err := i.manager.QueryInstalled(ctx, spec.Name)
		if err != nil {
			return nil, err
		}
		installed[spec.Name] = ok
	}
	return installed, nil
}

// Check reports the install plan for the full declared set without
// mutating anything.
func (i *Installer) Check(ctx context.Context) (types.Plan, error) {
	installed, err := i.QueryStates(ctx, i.cfg.Packages)
	if err != nil {
		return types.Plan{}, err
	}
	return ComputeMissing(i.cfg.Packages, installed), nil
}

// Run executes the install workflow for the given mode and returns the
// final summary. The returned error is non-nil iff a required package
// is still missing afterwards, or a fatal condition (no AUR helper)
// aborted the run.
func (i *Installer) Run(ctx context.Context, mode Mode) (types.Summary, error) {
	var summary types.Summary

	installed, err := i.QueryStates(ctx, i.cfg.Packages)
	if err != nil {
		return summary, err
	}
	plan := ComputeMissing(i.cfg.Packages, installed)
	summary.Satisfied = len(plan.Satisfied)

	toInstall, skipped, err := i.selectPackages(plan.Missing, mode)
	if err != nil {
		return summary, err
	}
	summary.Skipped = len(skipped)

	if len(toInstall) == 0 {
		i.logger.Info().Msg("Nothing to install")
		return summary, nil
	}

	if i.dryRun {
		for _, spec := range toInstall {
			i.logger.Info().Str("package", spec.Name).Str("source", string(spec.Source)).
				Msg("Would install (dry run)")
		}
		summary.Skipped += len(toInstall)
		return summary, nil
	}

	if err := i.ensureHelper(ctx, toInstall); err != nil {
		return summary, err
	}

	// One bulk invocation per source group. A failed batch is reported
	// as-is; the other group still runs.
	batches := groupBySource(toInstall)
	for _, source := range []types.Source{types.SourceRepo, types.SourceAUR} {
		names := batches[source]
		if len(names) == 0 {
			continue
		}
		if err := i.manager.InstallBatch(ctx, names, source); err != nil {
			i.logger.Error().Err(err).Str("source", string(source)).Msg("Batch install failed")
		}
	}

	// Recheck the attempted set so the summary reflects real state,
	// not what the batch call claimed.
	for _, spec := range toInstall {
		ok, err := i.manager.QueryInstalled(ctx, spec.Name)
		if err != nil {
			return summary, err
		}
		if ok {
			summary.Installed++
		} else {
			summary.Failed++
		}
	}

	if missing := i.missingRequired(ctx); len(missing) > 0 {
		return summary, errors.Newf(errors.ErrStillMissing,
			"%d required package(s) still missing: %v", len(missing), missing)
	}
	return summary, nil
}

// selectPackages decides which missing packages to attempt for the mode.
// Declined or out-of-mode optional packages are returned as skipped.
func (i *Installer) selectPackages(missing []types.PackageSpec, mode Mode) (toInstall, skipped []types.PackageSpec, err error) {
	for _, spec := range missing {
		if spec.Required {
			toInstall = append(toInstall, spec)
			continue
		}
		switch mode {
		case ModeAll:
			toInstall = append(toInstall, spec)
		case ModeMinimal:
			skipped = append(skipped, spec)
		default:
			prompt := "Install optional package " + spec.Name
			if spec.Description != "" {
				prompt += " (" + spec.Description + ")"
			}
			ok, perr := i.prompter.Confirm(prompt, true)
			if perr != nil {
				return nil, nil, errors.Wrap(perr, errors.ErrInternal, "confirmation prompt failed")
			}
			if ok {
				toInstall = append(toInstall, spec)
			} else {
				skipped = append(skipped, spec)
			}
		}
	}
	return toInstall, skipped, nil
}

// ensureHelper makes sure an AUR helper exists when the install set
// contains AUR packages, offering to bootstrap one if none is found.
// Declining the bootstrap is fatal: AUR-sourced packages would be
// uninstallable.
func (i *Installer) ensureHelper(ctx context.Context, toInstall []types.PackageSpec) error {
	needsAUR := false
	for _, spec := range toInstall {
		if spec.Source == types.SourceAUR {
			needsAUR = true
			break
		}
	}
	if !needsAUR {
		return nil
	}

	helper, err := pacman.DetectHelper(i.runner, i.cfg.AUR.Helpers)
	if err == nil {
		i.setHelper(helper)
		return nil
	}
	if !errors.IsErrorCode(err, errors.ErrNoAURHelper) {
		return err
	}

	ok, perr := i.prompter.Confirm(
		"No AUR helper found. Build and install "+i.cfg.AUR.BootstrapPackage+" from the AUR", true)
	if perr != nil {
		return errors.Wrap(perr, errors.ErrInternal, "confirmation prompt failed")
	}
	if !ok {
		return errors.New(errors.ErrNoAURHelper,
			"AUR helper required for AUR packages and bootstrap was declined")
	}

	if err := pacman.BootstrapHelper(ctx, i.runner, i.cfg.AUR.BootstrapRepo, i.cfg.AUR.BootstrapPackage); err != nil {
		return err
	}
	helper, err = pacman.DetectHelper(i.runner, i.cfg.AUR.Helpers)
	if err != nil {
		return errors.Wrap(err, errors.ErrHelperBootstrap,
			"helper bootstrap succeeded but no helper resolves on PATH")
	}
	i.setHelper(helper)
	return nil
}

func (i *Installer) setHelper(helper string) {
	if system, ok := i.manager.(*pacman.System); ok {
		system.SetHelper(helper)
	}
	i.logger.Debug().Str("helper", helper).Msg("Using AUR helper")
}

// missingRequired re-queries required packages after the attempt.
func (i *Installer) missingRequired(ctx context.Context) []string {
	var missing []string
	for _, spec := range i.cfg.RequiredPackages() {
		ok, err := i.manager.QueryInstalled(ctx, spec.Name)
		if err != nil || !ok {
			missing = append(missing, spec.Name)
		}
	}
	sort.Strings(missing)
	return missing
}

// groupBySource collects package names per source, preserving the
// declared order within each group.
func groupBySource(specs []types.PackageSpec) map[types.Source][]string {
	groups := make(map[types.Source][]string)
	for _, spec := range specs {
		groups[spec.Source] = append(groups[spec.Source], spec.Name)
	}
	return groups
}
