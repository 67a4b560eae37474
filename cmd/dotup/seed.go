package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotup-sh/dotup/pkg/config"
	"github.com/dotup-sh/dotup/pkg/filesystem"
	"github.com/dotup-sh/dotup/pkg/paths"
	"github.com/dotup-sh/dotup/pkg/seeder"
	"github.com/dotup-sh/dotup/pkg/style"
)

func newSeedCmd() *cobra.Command {
	var (
		configPath string
		targetFile string
		backupDir  string
		check      bool
	)

	cmd := &cobra.Command{
		Use:     "seed",
		Short:   MsgSeedShort,
		Long:    MsgSeedLong,
		Example: MsgSeedExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if targetFile != "" {
				overrides["seeder.config_file"] = targetFile
			}
			if backupDir != "" {
				overrides["seeder.backup_dir"] = backupDir
			}

			cfg, err := config.Load(config.LoadOptions{
				ConfigFile: configPath,
				Overrides:  overrides,
			})
			if err != nil {
				return err
			}

			seederCfg, err := resolveSeederPaths(cfg.Seeder)
			if err != nil {
				return err
			}

			s := seeder.New(filesystem.NewOS(), seederCfg)

			if check {
				report, err := s.Check()
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), style.RenderSeedReport(report, true))
				return nil
			}

			report, err := s.Seed()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), style.RenderSeedReport(report, false))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to the dotup config file")
	cmd.Flags().StringVar(&targetFile, "config-file", "", "Target config file to seed")
	cmd.Flags().StringVar(&backupDir, "backup-dir", "", "Directory for pre-mutation backups")
	cmd.Flags().BoolVar(&check, "check", false, "Report state only, never mutate")

	return cmd
}

// resolveSeederPaths expands ~ in the seeder paths. Ambient state like
// the working directory is never consulted.
func resolveSeederPaths(cfg config.SeederConfig) (config.SeederConfig, error) {
	configFile, err := paths.ExpandHome(cfg.ConfigFile)
	if err != nil {
		return cfg, err
	}
	backupDir, err := paths.ExpandHome(cfg.BackupDir)
	if err != nil {
		return cfg, err
	}
	cfg.ConfigFile = configFile
	cfg.BackupDir = backupDir
	return cfg, nil
}
