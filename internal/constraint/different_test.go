package constraint

import (
	"testing"

	"github.com/gitrdm/setcsp/internal/csperrors"
	"github.com/gitrdm/setcsp/internal/setvar"
)

// TestDifferentFailsOnGroundEquality is the spec's concrete scenario 5:
// two determined variables with identical content and a Different
// constraint must fail (search reports no solution).
func TestDifferentFailsOnGroundEquality(t *testing.T) {
	uni := setvar.NewUniverse()
	same := setvar.NewBound(uni, []int{1, 2})
	f := setvar.NewVariable("F", same, same, 2, 2)
	g := setvar.NewVariable("G", same.Clone(), same.Clone(), 2, 2)
	vars := Vars{"F": f, "G": g}

	_, err := NewDifferent("F", "G").Filter(vars)
	if err == nil {
		t.Fatalf("expected a failure for two identical ground variables")
	}
	if !csperrors.IsInconsistencyFault(err) {
		t.Fatalf("expected an InconsistencyFault, got %v", err)
	}
}

func TestDifferentDoesNotTightenPreGround(t *testing.T) {
	uni := setvar.NewUniverse()
	f := setvar.NewVariable("F", setvar.EmptyBound(uni), setvar.NewBound(uni, []int{1, 2}), 0, 2)
	g := setvar.NewVariable("G", setvar.EmptyBound(uni), setvar.NewBound(uni, []int{1, 2}), 0, 2)
	vars := Vars{"F": f, "G": g}

	changed, err := NewDifferent("F", "G").Filter(vars)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(changed) != 0 {
		t.Fatalf("expected no tightening pre-ground, got %v", changed)
	}
}

func TestDifferentEvaluate(t *testing.T) {
	uni := setvar.NewUniverse()
	f := setvar.NewVariable("F", setvar.NewBound(uni, []int{1}), setvar.NewBound(uni, []int{1}), 1, 1)
	g := setvar.NewVariable("G", setvar.NewBound(uni, []int{2}), setvar.NewBound(uni, []int{2}), 1, 1)
	vars := Vars{"F": f, "G": g}

	if !NewDifferent("F", "G").Evaluate(vars) {
		t.Fatalf("expected {1} != {2}")
	}
}
