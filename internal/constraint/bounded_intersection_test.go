package constraint

import (
	"testing"

	"github.com/gitrdm/setcsp/internal/setvar"
)

func TestBoundedIntersectionFailsWhenCommittedIntersectionExceedsK(t *testing.T) {
	uni := setvar.NewUniverse()
	f := setvar.NewVariable("F", setvar.NewBound(uni, []int{1}), setvar.NewBound(uni, []int{1, 2, 3}), 1, 2)
	g := setvar.NewVariable("G", setvar.NewBound(uni, []int{1}), setvar.NewBound(uni, []int{1, 2, 3}), 1, 2)
	vars := Vars{"F": f, "G": g}

	if _, err := NewBoundedIntersection("F", "G", 0, nil).Filter(vars); err == nil {
		t.Fatalf("expected failure: F.lower ∩ G.lower already contains 1, exceeding k=0")
	}
}

func TestBoundedIntersectionPrunesCandidatesThatWouldExceedK(t *testing.T) {
	uni := setvar.NewUniverse()
	f := setvar.NewVariable("F", setvar.EmptyBound(uni), setvar.NewBound(uni, []int{1, 2, 3}), 0, 3)
	g := setvar.NewVariable("G", setvar.NewBound(uni, []int{1}), setvar.NewBound(uni, []int{1, 2, 3}), 1, 3)
	vars := Vars{"F": f, "G": g}

	if _, err := NewBoundedIntersection("F", "G", 0, nil).Filter(vars); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Upper.Contains(1) {
		t.Fatalf("F.upper should exclude 1: committing it would push |F∩G| past k=0, got %v", f.Upper.Elements())
	}
	if !f.Upper.Contains(2) || !f.Upper.Contains(3) {
		t.Fatalf("F.upper should retain elements not in G.lower, got %v", f.Upper.Elements())
	}
}

func TestBoundedIntersectionEvaluate(t *testing.T) {
	uni := setvar.NewUniverse()
	det := func(xs ...int) *setvar.Variable {
		b := setvar.NewBound(uni, xs)
		return setvar.NewVariable("v", b, b, len(xs), len(xs))
	}
	vars := Vars{"F": det(1, 2), "G": det(2, 3)}
	c := NewBoundedIntersection("F", "G", 1, nil)
	if !c.Evaluate(vars) {
		t.Fatalf("expected |{1,2} ∩ {2,3}| = 1 <= 1")
	}
	if NewBoundedIntersection("F", "G", 0, nil).Evaluate(vars) {
		t.Fatalf("expected |{1,2} ∩ {2,3}| = 1 > 0 to fail")
	}
}
