package constraint

import (
	"testing"

	"github.com/gitrdm/setcsp/internal/setvar"
)

// TestUnionPropagationScenario is the spec's concrete scenario 3:
// F: lower={1}, upper={1,2}; G: lower={3}, upper={3,4}; H: lower={},
// upper={1,2,3,4}; constraint H = F ∪ G. Initial filtering yields
// H.lower ⊇ {1,3}, H.upper ⊆ {1,2,3,4}, H.min_card ≥ 2.
func TestUnionPropagationScenario(t *testing.T) {
	uni := setvar.NewUniverse()
	f := setvar.NewVariable("F", setvar.NewBound(uni, []int{1}), setvar.NewBound(uni, []int{1, 2}), 1, 2)
	g := setvar.NewVariable("G", setvar.NewBound(uni, []int{3}), setvar.NewBound(uni, []int{3, 4}), 1, 2)
	h := setvar.NewVariable("H", setvar.EmptyBound(uni), setvar.NewBound(uni, []int{1, 2, 3, 4}), 0, 4)
	vars := Vars{"F": f, "G": g, "H": h}

	if _, err := NewUnion("H", "F", "G", nil).Filter(vars); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !h.Lower.Contains(1) || !h.Lower.Contains(3) {
		t.Fatalf("H.lower = %v, want a superset of {1,3}", h.Lower.Elements())
	}
	if !h.Upper.IsSubsetOf(setvar.NewBound(uni, []int{1, 2, 3, 4})) {
		t.Fatalf("H.upper = %v, want a subset of {1,2,3,4}", h.Upper.Elements())
	}
	if h.MinCard < 2 {
		t.Fatalf("H.min_card = %d, want >= 2", h.MinCard)
	}
}

func TestUnionFilterTightensOperands(t *testing.T) {
	uni := setvar.NewUniverse()
	h := setvar.NewVariable("H", setvar.NewBound(uni, []int{1}), setvar.NewBound(uni, []int{1, 2}), 1, 2)
	f := setvar.NewVariable("F", setvar.EmptyBound(uni), setvar.NewBound(uni, []int{1, 2, 3}), 0, 3)
	g := setvar.NewVariable("G", setvar.EmptyBound(uni), setvar.NewBound(uni, []int{1, 2, 3}), 0, 3)
	vars := Vars{"H": h, "F": f, "G": g}

	if _, err := NewUnion("H", "F", "G", nil).Filter(vars); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Upper.Contains(3) || g.Upper.Contains(3) {
		t.Fatalf("F/G upper should be pruned to H.upper={1,2}: got F=%v G=%v", f.Upper.Elements(), g.Upper.Elements())
	}
}

func TestUnionEvaluateGround(t *testing.T) {
	uni := setvar.NewUniverse()
	det := func(xs ...int) *setvar.Variable {
		b := setvar.NewBound(uni, xs)
		return setvar.NewVariable("v", b, b, len(xs), len(xs))
	}
	vars := Vars{"H": det(1, 2, 3), "F": det(1, 2), "G": det(3)}
	if !NewUnion("H", "F", "G", nil).Evaluate(vars) {
		t.Fatalf("expected {1,2,3} == {1,2} ∪ {3}")
	}
}
