package constraint

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Intersection enforces H = F ∩ G.
type Intersection struct {
	H, F, G string
	negated bool
	log     logrus.FieldLogger
}

// NewIntersection builds an Intersection(H, F, G) constraint.
func NewIntersection(h, f, g string, log logrus.FieldLogger) *Intersection {
	return &Intersection{H: h, F: f, G: g, log: log}
}

// Negate flips the constraint to H ≠ F ∩ G for Evaluate only.
func (c *Intersection) Negate() *Intersection { c.negated = true; return c }

func (c *Intersection) Kind() Kind                 { return KindIntersection }
func (c *Intersection) VariablesTouched() []string { return []string{c.H, c.F, c.G} }
func (c *Intersection) String() string {
	op := "="
	if c.negated {
		op = "≠"
	}
	return fmt.Sprintf("%s %s %s ∩ %s", c.H, op, c.F, c.G)
}

// Evaluate reports H.lower == F.lower ∩ G.lower, negated if configured.
func (c *Intersection) Evaluate(vars Vars) bool {
	h, f, g := vars[c.H], vars[c.F], vars[c.G]
	result := h.Lower.Equal(f.Lower.Intersect(g.Lower))
	if c.negated {
		return !result
	}
	return result
}

// Filter applies the rules of spec §4.2 for Intersection:
//
//	H.upper ← H.upper ∩ F.upper ∩ G.upper
//	H.lower ← H.lower ∪ (F.lower ∩ G.lower)
//	F.lower ← F.lower ∪ H.lower, G.lower ← G.lower ∪ H.lower
//	cardinality tightening mirrors union.
func (c *Intersection) Filter(vars Vars) (map[string]struct{}, error) {
	h, f, g := vars[c.H], vars[c.F], vars[c.G]
	changed := newChangedSet()
	if c.negated {
		return changed, nil
	}

	newHUpper := h.Upper.Intersect(f.Upper).Intersect(g.Upper)
	if !newHUpper.Equal(h.Upper) {
		h.Upper = newHUpper
		changed.add(c.H)
		logTighten(c.log, c.String(), c.H+".upper", newHUpper.Elements())
	}

	newHLower := h.Lower.Union(f.Lower.Intersect(g.Lower))
	if !newHLower.Equal(h.Lower) {
		h.Lower = newHLower
		changed.add(c.H)
		logTighten(c.log, c.String(), c.H+".lower", newHLower.Elements())
	}

	newFLower := f.Lower.Union(h.Lower)
	if !newFLower.Equal(f.Lower) {
		f.Lower = newFLower
		changed.add(c.F)
	}
	newGLower := g.Lower.Union(h.Lower)
	if !newGLower.Equal(g.Lower) {
		g.Lower = newGLower
		changed.add(c.G)
	}

	if newMin := f.Lower.Intersect(g.Lower).Len(); newMin > h.MinCard {
		h.MinCard = newMin
		changed.add(c.H)
	}
	if newMax := f.Upper.Intersect(g.Upper).Len(); newMax < h.MaxCard {
		h.MaxCard = newMax
		changed.add(c.H)
	}

	if err := checkConsistent(vars, c.String(), c.H, c.F, c.G); err != nil {
		return nil, err
	}
	return changed, nil
}
