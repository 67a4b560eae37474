package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotup-sh/dotup/pkg/config"
	"github.com/dotup-sh/dotup/pkg/filesystem"
	"github.com/dotup-sh/dotup/pkg/installer"
	"github.com/dotup-sh/dotup/pkg/seeder"
	"github.com/dotup-sh/dotup/pkg/style"
)

func newStatusCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "status",
		Short: MsgStatusShort,
		Long:  MsgStatusLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.LoadOptions{ConfigFile: configPath})
			if err != nil {
				return err
			}

			inst := installer.New(installer.Options{Config: cfg})
			plan, err := inst.Check(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), style.RenderPlan(plan))
			fmt.Fprintln(cmd.OutOrStdout())

			seederCfg, err := resolveSeederPaths(cfg.Seeder)
			if err != nil {
				return err
			}
			report, err := seeder.New(filesystem.NewOS(), seederCfg).Check()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), style.RenderSeedReport(report, true))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to the dotup config file")

	return cmd
}
