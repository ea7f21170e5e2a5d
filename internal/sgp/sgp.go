// Package sgp encodes the Social Golfer Problem as a set-CSP: an
// external-collaborator example consuming only the public pkg/setcsp
// API (spec §1, "external collaborator" non-goal notwithstanding the
// encoder itself is fair game as a worked example). Restored from the
// original implementation's sgp.py, which offered the same three
// symmetry-breaking variants this package exposes as SymmetryMode.
package sgp

import (
	"fmt"

	"github.com/gitrdm/setcsp/internal/csperrors"
	"github.com/gitrdm/setcsp/pkg/setcsp"
)

// SymmetryMode selects how much symmetry-breaking structure is baked
// into the encoding before search begins.
type SymmetryMode int

const (
	// NoSymmetryBreak encodes the bare problem: groups are cardinality-
	// fixed, partition a week, and no player pair repeats across weeks.
	NoSymmetryBreak SymmetryMode = iota
	// SimpleSymmetryBreak additionally fixes week 0 to the canonical
	// partition {0..s-1}, {s..2s-1}, ..., eliminating the symmetry of
	// relabelling which group is "first".
	SimpleSymmetryBreak
	// AdvancedSymmetryBreak additionally lex-orders the groups within
	// every non-canonical week and lex-orders weeks by their first
	// group, eliminating both within-week group permutation and
	// between-week reordering symmetry.
	AdvancedSymmetryBreak
)

// Config describes one Social Golfer Problem instance: Players players
// split into groups of GroupSize over Weeks weeks, such that no two
// players share a group more than once.
type Config struct {
	Players   int
	GroupSize int
	Weeks     int
	Symmetry  SymmetryMode
}

// Groups returns the number of groups per week implied by the
// instance (Players / GroupSize).
func (c Config) Groups() int {
	return c.Players / c.GroupSize
}

// Schedule is a solved instance: Schedule[week][group] lists the
// player ids assigned to that group, ascending.
type Schedule [][][]int

// Encoding is a built-but-unsolved instance: the underlying problem
// plus the variable-name grid a solution is read back from.
type Encoding struct {
	Problem *setcsp.Problem
	names   [][]string // [week][group]
	cfg     Config
}

func varName(week, group int) string {
	return fmt.Sprintf("w%d_g%d", week, group)
}

// Build encodes cfg as a set-CSP. It returns an InvariantViolation if
// Players is not an exact multiple of GroupSize.
func Build(cfg Config) (*Encoding, error) {
	if cfg.GroupSize <= 0 || cfg.Players%cfg.GroupSize != 0 {
		return nil, csperrors.NewInvariantViolation("players", "must be an exact multiple of group_size")
	}
	groups := cfg.Groups()
	p := setcsp.New()

	allPlayers := make([]int, cfg.Players)
	for i := range allPlayers {
		allPlayers[i] = i
	}

	names := make([][]string, cfg.Weeks)
	for w := 0; w < cfg.Weeks; w++ {
		names[w] = make([]string, groups)
		for g := 0; g < groups; g++ {
			name := varName(w, g)
			names[w][g] = name

			lower, upper := []int{}, allPlayers
			if w == 0 && cfg.Symmetry != NoSymmetryBreak {
				canonical := allPlayers[g*cfg.GroupSize : (g+1)*cfg.GroupSize]
				lower, upper = canonical, canonical
			}
			if err := p.AddVariable(name, lower, upper, cfg.GroupSize, cfg.GroupSize); err != nil {
				return nil, err
			}
			if err := p.AddCardinalityEq(name, cfg.GroupSize); err != nil {
				return nil, err
			}
		}
	}

	// Each week partitions the player set: pairwise-disjoint groups of
	// sizes summing to Players is equivalent to a full partition.
	for w := 0; w < cfg.Weeks; w++ {
		for g1 := 0; g1 < groups; g1++ {
			for g2 := g1 + 1; g2 < groups; g2++ {
				if err := p.AddBoundedIntersection(names[w][g1], names[w][g2], 0); err != nil {
					return nil, err
				}
			}
		}
	}

	// No two players may share a group in more than one week.
	for w1 := 0; w1 < cfg.Weeks; w1++ {
		for w2 := w1 + 1; w2 < cfg.Weeks; w2++ {
			for g1 := 0; g1 < groups; g1++ {
				for g2 := 0; g2 < groups; g2++ {
					if err := p.AddBoundedIntersection(names[w1][g1], names[w2][g2], 1); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	if cfg.Symmetry == AdvancedSymmetryBreak {
		for w := 1; w < cfg.Weeks; w++ {
			for g := 0; g < groups-1; g++ {
				if err := p.AddLexLess(names[w][g], names[w][g+1]); err != nil {
					return nil, err
				}
			}
		}
		for w := 1; w < cfg.Weeks-1; w++ {
			if err := p.AddLexLess(names[w][0], names[w+1][0]); err != nil {
				return nil, err
			}
		}
	}

	return &Encoding{Problem: p, names: names, cfg: cfg}, nil
}

// Extract reads a schedule back out of one of Result.Solutions.
func (e *Encoding) Extract(solution map[string][]int) Schedule {
	sched := make(Schedule, e.cfg.Weeks)
	for w := range e.names {
		sched[w] = make([][]int, len(e.names[w]))
		for g, name := range e.names[w] {
			sched[w][g] = solution[name]
		}
	}
	return sched
}
