// Package constraint implements the filtering and evaluation algorithms
// for the set-CSP constraint catalogue: Subset, Union, Intersection,
// Difference, Different, CardinalityEq, BoundedIntersection, and
// LexLess (spec §3, §4.2). Each constraint is a tagged variant sharing
// a capability set {Filter, Evaluate, VariablesTouched} rather than a
// class hierarchy, per spec §9.
package constraint

import "github.com/gitrdm/setcsp/internal/setvar"

// Kind identifies a constraint variant.
type Kind string

const (
	KindSubset              Kind = "subset"
	KindUnion               Kind = "union"
	KindIntersection        Kind = "intersection"
	KindDifference          Kind = "difference"
	KindDifferent           Kind = "different"
	KindCardinalityEq       Kind = "cardinality_eq"
	KindBoundedIntersection Kind = "bounded_intersection"
	KindLexLess             Kind = "lex_less"
)

// Vars is the live variable state a constraint filters/evaluates
// against: a name-indexed view over the current branch's working copy,
// never the root store.
type Vars map[string]*setvar.Variable

// Constraint is the shared capability set every variant implements.
// Filter returns the set of variable names whose bounds were strictly
// tightened (the open question in spec §9 is resolved in favor of this
// contract: it drives the variable-indexed propagation queue in
// internal/propagate). Filter returns a non-nil error only when the
// tightening would be inconsistent; such an error is always an
// *csperrors.InconsistencyFault and is never anything else.
type Constraint interface {
	Kind() Kind
	VariablesTouched() []string
	Filter(vars Vars) (map[string]struct{}, error)
	Evaluate(vars Vars) bool
	String() string
}

// changedSet is a tiny builder for the set Filter returns.
type changedSet map[string]struct{}

func (c changedSet) add(name string) { c[name] = struct{}{} }

func newChangedSet() changedSet { return make(changedSet) }
