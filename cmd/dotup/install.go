package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotup-sh/dotup/pkg/config"
	"github.com/dotup-sh/dotup/pkg/errors"
	"github.com/dotup-sh/dotup/pkg/installer"
	"github.com/dotup-sh/dotup/pkg/style"
	"github.com/dotup-sh/dotup/pkg/ui/confirm"
)

func newInstallCmd() *cobra.Command {
	var (
		configPath string
		minimal    bool
		all        bool
		check      bool
		yes        bool
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:     "install",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.LoadOptions{ConfigFile: configPath})
			if err != nil {
				return err
			}

			var prompter confirm.Prompter = confirm.NewConsole()
			if yes {
				prompter = confirm.AssumeYes{}
			}

			inst := installer.New(installer.Options{
				Config:   cfg,
				Prompter: prompter,
				DryRun:   dryRun,
			})

			ctx := cmd.Context()

			if check {
				plan, err := inst.Check(ctx)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), style.RenderPlan(plan))
				if missing := plan.MissingRequired(); len(missing) > 0 {
					return errors.Newf(errors.ErrStillMissing,
						"%d required package(s) missing", len(missing))
				}
				return nil
			}

			mode := installer.ModeInteractive
			switch {
			case minimal:
				mode = installer.ModeMinimal
			case all:
				mode = installer.ModeAll
			}

			summary, runErr := inst.Run(ctx, mode)
			inst.EnsureShell(ctx)
			fmt.Fprint(cmd.OutOrStdout(), style.RenderSummary(summary))
			return runErr
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to the dotup config file")
	cmd.Flags().BoolVar(&minimal, "minimal", false, "Install required packages only")
	cmd.Flags().BoolVar(&all, "all", false, "Install required and optional packages")
	cmd.Flags().BoolVar(&check, "check", false, "Report state only, install nothing")
	cmd.Flags().BoolVar(&yes, "yes", false, "Assume yes on all prompts")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without executing them")

	cmd.MarkFlagsMutuallyExclusive("minimal", "all", "check")

	return cmd
}
