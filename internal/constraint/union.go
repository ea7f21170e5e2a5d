package constraint

import (
	"fmt"

	"github.com/gitrdm/setcsp/internal/csperrors"
	"github.com/sirupsen/logrus"
)

// Union enforces H = F ∪ G.
type Union struct {
	H, F, G string
	negated bool
	log     logrus.FieldLogger
}

// NewUnion builds a Union(H, F, G) constraint.
func NewUnion(h, f, g string, log logrus.FieldLogger) *Union {
	return &Union{H: h, F: f, G: g, log: log}
}

// Negate flips the constraint to H ≠ F ∪ G for Evaluate only.
func (c *Union) Negate() *Union { c.negated = true; return c }

func (c *Union) Kind() Kind                 { return KindUnion }
func (c *Union) VariablesTouched() []string { return []string{c.H, c.F, c.G} }
func (c *Union) String() string {
	op := "="
	if c.negated {
		op = "≠"
	}
	return fmt.Sprintf("%s %s %s ∪ %s", c.H, op, c.F, c.G)
}

// Evaluate reports H.lower == F.lower ∪ G.lower, negated if configured.
func (c *Union) Evaluate(vars Vars) bool {
	h, f, g := vars[c.H], vars[c.F], vars[c.G]
	result := h.Lower.Equal(f.Lower.Union(g.Lower))
	if c.negated {
		return !result
	}
	return result
}

// Filter applies the rules of spec §4.2 for Union:
//
//	H.upper ← H.upper ∩ (F.upper ∪ G.upper)
//	H.lower ← H.lower ∪ F.lower ∪ G.lower
//	F.upper ← F.upper ∩ H.upper, G.upper ← G.upper ∩ H.upper
//	H.min_card ← max(H.min_card, |F.lower ∪ G.lower|)
//	H.max_card ← min(H.max_card, |F.upper ∪ G.upper|)
func (c *Union) Filter(vars Vars) (map[string]struct{}, error) {
	h, f, g := vars[c.H], vars[c.F], vars[c.G]
	changed := newChangedSet()
	if c.negated {
		return changed, nil
	}

	unionUpper := f.Upper.Union(g.Upper)
	newHUpper := h.Upper.Intersect(unionUpper)
	if !newHUpper.Equal(h.Upper) {
		h.Upper = newHUpper
		changed.add(c.H)
		logTighten(c.log, c.String(), c.H+".upper", newHUpper.Elements())
	}

	newHLower := f.Lower.Union(g.Lower).Union(h.Lower)
	if !newHLower.Equal(h.Lower) {
		h.Lower = newHLower
		changed.add(c.H)
		logTighten(c.log, c.String(), c.H+".lower", newHLower.Elements())
	}

	newFUpper := f.Upper.Intersect(h.Upper)
	if !newFUpper.Equal(f.Upper) {
		f.Upper = newFUpper
		changed.add(c.F)
	}
	newGUpper := g.Upper.Intersect(h.Upper)
	if !newGUpper.Equal(g.Upper) {
		g.Upper = newGUpper
		changed.add(c.G)
	}

	if newMin := f.Lower.Union(g.Lower).Len(); newMin > h.MinCard {
		h.MinCard = newMin
		changed.add(c.H)
	}
	if newMax := f.Upper.Union(g.Upper).Len(); newMax < h.MaxCard {
		h.MaxCard = newMax
		changed.add(c.H)
	}

	if err := checkConsistent(vars, c.String(), c.H, c.F, c.G); err != nil {
		return nil, err
	}
	return changed, nil
}
