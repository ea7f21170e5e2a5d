package main

import (
	"os"

	"github.com/gitrdm/setcsp/internal/csperrors"
	"github.com/gitrdm/setcsp/internal/sgp"
	"gopkg.in/yaml.v2"
)

// fileConfig is the YAML shape accepted by --config, restored from
// the original implementation's run.py config-file convention.
type fileConfig struct {
	Players         int    `yaml:"players"`
	GroupSize       int    `yaml:"group_size"`
	Weeks           int    `yaml:"weeks"`
	Symmetry        string `yaml:"symmetry"`
	VariableStrategy string `yaml:"variable_strategy"`
	ValueStrategy    string `yaml:"value_strategy"`
	RestartStrategy  string `yaml:"restart_strategy"`
	NumSolutions     int    `yaml:"num_solutions"`
	Seed             int64  `yaml:"seed"`
}

func loadConfigFile(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, csperrors.NewInvariantViolation(path, err.Error())
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, csperrors.NewInvariantViolation(path, err.Error())
	}
	return cfg, nil
}

func symmetryMode(name string) (sgp.SymmetryMode, error) {
	switch name {
	case "", "none":
		return sgp.NoSymmetryBreak, nil
	case "simple":
		return sgp.SimpleSymmetryBreak, nil
	case "advanced":
		return sgp.AdvancedSymmetryBreak, nil
	default:
		return 0, csperrors.NewUnsupportedOption("symmetry=" + name)
	}
}
