package setvar

import "testing"

func TestStoreAddRejectsDuplicateAndInconsistent(t *testing.T) {
	s := NewStore()
	uni := s.Universe()

	v := NewVariable("x", NewBound(uni, []int{1}), NewBound(uni, []int{1, 2}), 0, 2)
	if err := s.Add(v); err != nil {
		t.Fatalf("unexpected error adding first declaration: %v", err)
	}
	if err := s.Add(v); err == nil {
		t.Fatalf("expected an error re-declaring %q", v.Name)
	}

	bad := NewVariable("y", NewBound(uni, []int{5}), NewBound(uni, []int{1}), 0, 1)
	if err := s.Add(bad); err == nil {
		t.Fatalf("expected an error adding an already-inconsistent variable")
	}
}

func TestStoreMustGetUnknownVariable(t *testing.T) {
	s := NewStore()
	if _, err := s.MustGet("nope"); err == nil {
		t.Fatalf("expected UnknownVariable for an undeclared name")
	}
}

func TestStoreCloneIsIndependent(t *testing.T) {
	s := NewStore()
	uni := s.Universe()
	v := NewVariable("x", NewBound(uni, []int{1}), NewBound(uni, []int{1, 2}), 0, 2)
	if err := s.Add(v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clone := s.Clone()
	clone["x"].Lower = clone["x"].Lower.WithAdded(2)
	if orig, _ := s.Get("x"); orig.Lower.Contains(2) {
		t.Fatalf("mutating a cloned variable must not affect the store's root variable")
	}
}

func TestStoreNamesPreservesDeclarationOrder(t *testing.T) {
	s := NewStore()
	uni := s.Universe()
	for _, name := range []string{"c", "a", "b"} {
		if err := s.Add(NewVariable(name, EmptyBound(uni), NewBound(uni, []int{1}), 0, 1)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	got := s.Names()
	want := []string{"c", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", got, want)
		}
	}
}
