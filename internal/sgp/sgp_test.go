package sgp

import (
	"context"
	"testing"

	"github.com/gitrdm/setcsp/pkg/setcsp"
)

func TestBuildRejectsGroupSizeNotDividingPlayers(t *testing.T) {
	_, err := Build(Config{Players: 10, GroupSize: 3, Weeks: 2})
	if err == nil {
		t.Fatalf("expected an InvariantViolation for 10 players not divisible by group size 3")
	}
}

func TestGroupsComputesGroupCount(t *testing.T) {
	cfg := Config{Players: 9, GroupSize: 3, Weeks: 3}
	if got := cfg.Groups(); got != 3 {
		t.Fatalf("Groups() = %d, want 3", got)
	}
}

func TestBuildDeclaresOneVariablePerWeekAndGroup(t *testing.T) {
	cfg := Config{Players: 6, GroupSize: 3, Weeks: 2, Symmetry: NoSymmetryBreak}
	enc, err := Build(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(enc.names) != 2 {
		t.Fatalf("expected 2 weeks of variable names, got %d", len(enc.names))
	}
	for w, row := range enc.names {
		if len(row) != 2 {
			t.Fatalf("week %d: expected 2 groups, got %d", w, len(row))
		}
	}
}

func TestBuildSimpleSymmetryBreakFixesWeekZero(t *testing.T) {
	cfg := Config{Players: 6, GroupSize: 3, Weeks: 2, Symmetry: SimpleSymmetryBreak}
	enc, err := Build(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if enc == nil {
		t.Fatalf("expected a non-nil encoding")
	}
}

// TestSocialGolfer3x2x2SolvesWithNoRepeatedPairings is spec §8 scenario
// 4: 3 groups of 2 players over 2 weeks, expecting a schedule where no
// pair of players shares a group twice.
func TestSocialGolfer3x2x2SolvesWithNoRepeatedPairings(t *testing.T) {
	cfg := Config{Players: 6, GroupSize: 2, Weeks: 2, Symmetry: AdvancedSymmetryBreak}
	enc, err := Build(cfg)
	if err != nil {
		t.Fatalf("unexpected error building encoding: %v", err)
	}

	result, err := enc.Problem.Solve(context.Background(), setcsp.WithSeed(1))
	if err != nil {
		t.Fatalf("unexpected solve error: %v", err)
	}
	if len(result.Solutions) == 0 {
		t.Fatalf("expected at least one solution")
	}

	sched := enc.Extract(result.Solutions[0])
	if len(sched) != 2 {
		t.Fatalf("expected a 2-week schedule, got %d weeks", len(sched))
	}

	pairCount := make(map[[2]int]int)
	for _, week := range sched {
		for _, group := range week {
			if len(group) != 2 {
				t.Fatalf("expected every group to have 2 players, got %v", group)
			}
			a, b := group[0], group[1]
			if a > b {
				a, b = b, a
			}
			pairCount[[2]int{a, b}]++
		}
	}
	for pair, count := range pairCount {
		if count > 1 {
			t.Fatalf("pair %v played together %d times, want at most 1", pair, count)
		}
	}
}

func TestExtractReadsBackTheVariableGrid(t *testing.T) {
	cfg := Config{Players: 4, GroupSize: 2, Weeks: 1, Symmetry: NoSymmetryBreak}
	enc, err := Build(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	solution := map[string][]int{
		varName(0, 0): {0, 1},
		varName(0, 1): {2, 3},
	}
	sched := enc.Extract(solution)
	if len(sched) != 1 || len(sched[0]) != 2 {
		t.Fatalf("unexpected schedule shape: %+v", sched)
	}
	if sched[0][0][0] != 0 || sched[0][0][1] != 1 {
		t.Fatalf("unexpected group 0 contents: %v", sched[0][0])
	}
}
