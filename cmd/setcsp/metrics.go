package main

import (
	"fmt"

	"github.com/gitrdm/setcsp/internal/csperrors"
	"github.com/gitrdm/setcsp/internal/sgp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

func newMetricsCmd(log *logrus.Logger) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Solve the default instance and print counters as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := fileConfig{Players: 12, GroupSize: 4, Weeks: 4, Symmetry: "advanced", NumSolutions: 1, Seed: 1}
			if configPath != "" {
				loaded, err := loadConfigFile(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			mode, err := symmetryMode(cfg.Symmetry)
			if err != nil {
				return err
			}
			enc, err := sgp.Build(sgp.Config{Players: cfg.Players, GroupSize: cfg.GroupSize, Weeks: cfg.Weeks, Symmetry: mode})
			if err != nil {
				return err
			}

			result, err := enc.Problem.Solve(cmd.Context())
			if err != nil && err != csperrors.Unsatisfiable && err != csperrors.Interrupted {
				return err
			}

			out, marshalErr := yaml.Marshal(result.Metrics)
			if marshalErr != nil {
				return marshalErr
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return err
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file")
	return cmd
}
