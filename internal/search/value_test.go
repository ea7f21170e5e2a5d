package search

import (
	"testing"

	"github.com/gitrdm/setcsp/internal/constraint"
	"github.com/gitrdm/setcsp/internal/setvar"
)

func oneVarVars(t *testing.T) constraint.Vars {
	t.Helper()
	uni := setvar.NewUniverse()
	return constraint.Vars{
		"X": setvar.NewVariable("X", setvar.EmptyBound(uni), setvar.NewBound(uni, []int{1, 2, 3, 4}), 0, 4),
	}
}

func TestChooseValuesSimpleReturnsCandidatesUnmodified(t *testing.T) {
	vars := oneVarVars(t)
	e := New([]string{"X"}, nil, nil, DefaultConfig(), nil, nil)
	e.config.ValueStrategy = Simple

	got := e.chooseValues("X", vars)
	want := vars["X"].Undetermined()
	if len(got) != len(want) {
		t.Fatalf("expected %d candidates, got %d", len(want), len(got))
	}
	for i, x := range want {
		if got[i] != x {
			t.Fatalf("SIMPLE must preserve candidate order, got %v want %v", got, want)
		}
	}
}

func TestChooseValuesRandomPermutesCandidates(t *testing.T) {
	vars := oneVarVars(t)
	cfg := DefaultConfig()
	cfg.ValueStrategy = RandomValue
	cfg.Seed = 42
	e := New([]string{"X"}, nil, nil, cfg, nil, nil)

	got := e.chooseValues("X", vars)
	want := vars["X"].Undetermined()
	if len(got) != len(want) {
		t.Fatalf("RANDOM must not drop or add candidates, got %d want %d", len(got), len(want))
	}
	seen := make(map[int]bool, len(got))
	for _, x := range got {
		seen[x] = true
	}
	for _, x := range want {
		if !seen[x] {
			t.Fatalf("RANDOM permutation lost candidate %d", x)
		}
	}
}

func TestChooseValuesLowestFrequencyOrdersByPriorChoices(t *testing.T) {
	vars := oneVarVars(t)
	cfg := DefaultConfig()
	cfg.ValueStrategy = LowestFrequency
	e := New([]string{"X"}, nil, nil, cfg, nil, nil)

	e.metrics.RecordValueChoice("X", 1)
	e.metrics.RecordValueChoice("X", 1)
	e.metrics.RecordValueChoice("X", 2)

	got := e.chooseValues("X", vars)
	pos := make(map[int]int, len(got))
	for i, x := range got {
		pos[x] = i
	}
	if pos[3] > pos[1] {
		t.Fatalf("never-chosen value 3 should sort before frequently-chosen value 1, got order %v", got)
	}
	if pos[3] > pos[2] {
		t.Fatalf("never-chosen value 3 should sort before value 2, got order %v", got)
	}
	if pos[2] > pos[1] {
		t.Fatalf("less-frequent value 2 should sort before more-frequent value 1, got order %v", got)
	}
}
