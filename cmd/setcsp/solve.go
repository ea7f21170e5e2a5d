package main

import (
	"fmt"

	"github.com/gitrdm/setcsp/internal/csperrors"
	"github.com/gitrdm/setcsp/internal/search"
	"github.com/gitrdm/setcsp/internal/sgp"
	"github.com/gitrdm/setcsp/pkg/setcsp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newSolveCmd(log *logrus.Logger) *cobra.Command {
	var (
		configPath       string
		players          int
		groupSize        int
		weeks            int
		symmetry         string
		variableStrategy string
		valueStrategy    string
		restartStrategy  string
		numSolutions     int
		seed             int64
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a Social Golfer Problem instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := fileConfig{
				Players: players, GroupSize: groupSize, Weeks: weeks,
				Symmetry: symmetry, VariableStrategy: variableStrategy,
				ValueStrategy: valueStrategy, RestartStrategy: restartStrategy,
				NumSolutions: numSolutions, Seed: seed,
			}
			if configPath != "" {
				loaded, err := loadConfigFile(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			return runSolve(cmd, log, cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file (overrides all other flags)")
	cmd.Flags().IntVar(&players, "players", 12, "number of players")
	cmd.Flags().IntVar(&groupSize, "group-size", 4, "players per group")
	cmd.Flags().IntVar(&weeks, "weeks", 4, "number of weeks")
	cmd.Flags().StringVar(&symmetry, "symmetry", "advanced", "none|simple|advanced")
	cmd.Flags().StringVar(&variableStrategy, "variable-strategy", string(search.SmallestDomain), "variable choice heuristic")
	cmd.Flags().StringVar(&valueStrategy, "value-strategy", string(search.RandomValue), "value choice heuristic")
	cmd.Flags().StringVar(&restartStrategy, "restart-strategy", string(search.ConstrainedRandomRestart), "restart detour strategy")
	cmd.Flags().IntVar(&numSolutions, "num-solutions", 1, "solutions to collect (-1 for all)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")

	return cmd
}

func runSolve(cmd *cobra.Command, log *logrus.Logger, cfg fileConfig) error {
	mode, err := symmetryMode(cfg.Symmetry)
	if err != nil {
		return err
	}

	enc, err := sgp.Build(sgp.Config{
		Players:   cfg.Players,
		GroupSize: cfg.GroupSize,
		Weeks:     cfg.Weeks,
		Symmetry:  mode,
	})
	if err != nil {
		return err
	}

	opts := []setcsp.SolveOption{
		WithVariableStrategyName(cfg.VariableStrategy),
		WithValueStrategyName(cfg.ValueStrategy),
		WithRestartStrategyName(cfg.RestartStrategy),
		setcsp.WithSeed(cfg.Seed),
	}
	if cfg.NumSolutions == search.AllSolutions {
		opts = append(opts, setcsp.WithAllSolutions())
	} else if cfg.NumSolutions > 0 {
		opts = append(opts, setcsp.WithNumSolutions(cfg.NumSolutions))
	}

	result, err := enc.Problem.Solve(cmd.Context(), opts...)
	if err != nil && err != csperrors.Unsatisfiable && err != csperrors.Interrupted {
		return err
	}
	if err != nil {
		log.WithError(err).Warn("solve did not produce a schedule")
		fmt.Fprintln(cmd.OutOrStdout(), result.Metrics.String())
		return err
	}

	for i, sol := range result.Solutions {
		sched := enc.Extract(sol)
		fmt.Fprintf(cmd.OutOrStdout(), "solution %d:\n", i)
		for w, week := range sched {
			fmt.Fprintf(cmd.OutOrStdout(), "  week %d: %v\n", w, week)
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.Metrics.String())
	return nil
}

func WithVariableStrategyName(name string) setcsp.SolveOption {
	if name == "" {
		name = string(search.SmallestDomain)
	}
	return setcsp.WithVariableStrategy(search.VariableStrategy(name))
}

func WithValueStrategyName(name string) setcsp.SolveOption {
	if name == "" {
		name = string(search.RandomValue)
	}
	return setcsp.WithValueStrategy(search.ValueStrategy(name))
}

func WithRestartStrategyName(name string) setcsp.SolveOption {
	if name == "" {
		name = string(search.ConstrainedRandomRestart)
	}
	return setcsp.WithRestartStrategy(search.RestartStrategy(name))
}
