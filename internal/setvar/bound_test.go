package setvar

import (
	"reflect"
	"testing"
)

func TestBoundSetOps(t *testing.T) {
	uni := NewUniverse()
	a := NewBound(uni, []int{1, 2, 3})
	b := NewBound(uni, []int{2, 3, 4})

	if got := a.Union(b).Elements(); !reflect.DeepEqual(got, []int{1, 2, 3, 4}) {
		t.Fatalf("Union = %v", got)
	}
	if got := a.Intersect(b).Elements(); !reflect.DeepEqual(got, []int{2, 3}) {
		t.Fatalf("Intersect = %v", got)
	}
	if got := a.Difference(b).Elements(); !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("Difference = %v", got)
	}
}

func TestBoundSubsetAndEqual(t *testing.T) {
	uni := NewUniverse()
	a := NewBound(uni, []int{1, 2})
	b := NewBound(uni, []int{1, 2, 3})

	if !a.IsSubsetOf(b) {
		t.Fatalf("expected {1,2} ⊆ {1,2,3}")
	}
	if b.IsSubsetOf(a) {
		t.Fatalf("expected {1,2,3} ⊄ {1,2}")
	}
	if a.Equal(b) {
		t.Fatalf("expected bounds to differ")
	}
	if !a.Equal(NewBound(uni, []int{2, 1})) {
		t.Fatalf("Equal must be order-independent")
	}
}

func TestBoundSupportsNegativeAndSparseElements(t *testing.T) {
	uni := NewUniverse()
	b := NewBound(uni, []int{-5, 0, 1000})
	if !b.Contains(-5) || !b.Contains(0) || !b.Contains(1000) {
		t.Fatalf("expected negative/sparse elements to round-trip")
	}
	if got := b.Elements(); !reflect.DeepEqual(got, []int{-5, 0, 1000}) {
		t.Fatalf("Elements() = %v, want ascending order", got)
	}
}

func TestBoundWithAddedAndRemovedAreImmutable(t *testing.T) {
	uni := NewUniverse()
	base := NewBound(uni, []int{1})
	added := base.WithAdded(2)
	if base.Contains(2) {
		t.Fatalf("WithAdded must not mutate the receiver")
	}
	if !added.Contains(2) {
		t.Fatalf("expected the returned bound to contain the added element")
	}

	removed := added.WithRemoved(1)
	if !added.Contains(1) {
		t.Fatalf("WithRemoved must not mutate the receiver")
	}
	if removed.Contains(1) {
		t.Fatalf("expected the returned bound to have removed the element")
	}
}

func TestBoundCloneIsIndependent(t *testing.T) {
	uni := NewUniverse()
	b := NewBound(uni, []int{1, 2})
	clone := b.Clone()
	mutated := clone.WithAdded(99)
	if b.Contains(99) || clone.Contains(99) {
		t.Fatalf("Clone and WithAdded must both be non-mutating")
	}
	_ = mutated
}
