package setvar

import "github.com/gitrdm/setcsp/internal/csperrors"

// Variable is a set-CSP decision variable: a set of integers whose
// exact contents are unknown but bracketed by a lower bound (elements
// known to be in the set) and an upper bound (elements allowed in the
// set), plus cardinality bounds. See spec §3.
type Variable struct {
	Name    string
	Lower   Bound
	Upper   Bound
	MinCard int
	MaxCard int
}

// NewVariable constructs a variable, defaulting MaxCard to |upper| when
// the caller passes 0 and upper is non-empty is not assumed; callers
// that want the "max_card=|upper|" default from spec §6 must pass it
// explicitly via the maxCard argument (the public API does this).
func NewVariable(name string, lower, upper Bound, minCard, maxCard int) *Variable {
	return &Variable{Name: name, Lower: lower, Upper: upper, MinCard: minCard, MaxCard: maxCard}
}

// Consistent checks the four invariants of spec §3:
//  1. lower ⊆ upper
//  2. |lower| ≤ max_card
//  3. |upper| ≥ min_card
//  4. min_card ≤ max_card
func (v *Variable) Consistent() error {
	if !v.Lower.IsSubsetOf(v.Upper) {
		return csperrors.NewInconsistencyFault(v.Name, "lower bound is not a subset of upper bound")
	}
	if v.Lower.Len() > v.MaxCard {
		return csperrors.NewInconsistencyFault(v.Name, "|lower| exceeds max_card")
	}
	if v.Upper.Len() < v.MinCard {
		return csperrors.NewInconsistencyFault(v.Name, "|upper| below min_card")
	}
	if v.MinCard > v.MaxCard {
		return csperrors.NewInconsistencyFault(v.Name, "min_card exceeds max_card")
	}
	return nil
}

// Valid reports consistency ∧ |lower| ≥ min_card, per spec §3.
func (v *Variable) Valid() bool {
	if v.Consistent() != nil {
		return false
	}
	return v.Lower.Len() >= v.MinCard
}

// Determined reports whether lower == upper.
func (v *Variable) Determined() bool {
	return v.Lower.Equal(v.Upper)
}

// Undetermined returns upper \ lower.
func (v *Variable) Undetermined() []int {
	return v.Upper.Difference(v.Lower).Elements()
}

// Clone returns a deep copy, used whenever branching forks state.
func (v *Variable) Clone() *Variable {
	return &Variable{
		Name:    v.Name,
		Lower:   v.Lower.Clone(),
		Upper:   v.Upper.Clone(),
		MinCard: v.MinCard,
		MaxCard: v.MaxCard,
	}
}
