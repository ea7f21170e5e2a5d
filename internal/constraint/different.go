package constraint

import (
	"fmt"

	"github.com/gitrdm/setcsp/internal/csperrors"
)

// Different enforces F ≠ G. Per spec §4.2 it never tightens bounds
// pre-ground; it only fails once both variables are fully determined
// and happen to be equal.
type Different struct {
	F, G string
}

// NewDifferent builds a Different(F, G) constraint.
func NewDifferent(f, g string) *Different {
	return &Different{F: f, G: g}
}

func (c *Different) Kind() Kind                 { return KindDifferent }
func (c *Different) VariablesTouched() []string { return []string{c.F, c.G} }
func (c *Different) String() string             { return fmt.Sprintf("%s ≠ %s", c.F, c.G) }

// Evaluate reports F.lower != G.lower.
func (c *Different) Evaluate(vars Vars) bool {
	f, g := vars[c.F], vars[c.G]
	return !f.Lower.Equal(g.Lower)
}

// Filter fails only when both variables are determined and equal;
// otherwise it makes no progress (returns an empty changed set).
func (c *Different) Filter(vars Vars) (map[string]struct{}, error) {
	f, g := vars[c.F], vars[c.G]
	if f.Determined() && g.Determined() && f.Lower.Equal(g.Lower) {
		return nil, csperrors.NewInconsistencyFault(c.String(), "both sides are ground and equal")
	}
	return newChangedSet(), nil
}
