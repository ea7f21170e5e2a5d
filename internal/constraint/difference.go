package constraint

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Difference enforces H = F \ G.
type Difference struct {
	H, F, G string
	negated bool
	log     logrus.FieldLogger
}

// NewDifference builds a Difference(H, F, G) constraint.
func NewDifference(h, f, g string, log logrus.FieldLogger) *Difference {
	return &Difference{H: h, F: f, G: g, log: log}
}

// Negate flips the constraint to H ≠ F \ G for Evaluate only.
func (c *Difference) Negate() *Difference { c.negated = true; return c }

func (c *Difference) Kind() Kind                 { return KindDifference }
func (c *Difference) VariablesTouched() []string { return []string{c.H, c.F, c.G} }
func (c *Difference) String() string {
	op := "="
	if c.negated {
		op = "≠"
	}
	return fmt.Sprintf("%s %s %s \\ %s", c.H, op, c.F, c.G)
}

// Evaluate reports H.lower == F.lower \ G.lower, negated if configured.
func (c *Difference) Evaluate(vars Vars) bool {
	h, f, g := vars[c.H], vars[c.F], vars[c.G]
	result := h.Lower.Equal(f.Lower.Difference(g.Lower))
	if c.negated {
		return !result
	}
	return result
}

// Filter applies the rules of spec §4.2 for Difference:
//
//	H.upper ← (H.upper ∩ F.upper) \ G.lower
//	F.upper ← F.upper ∩ (H.upper ∪ G.upper)
//	G.upper ← G.upper \ H.lower
//	H.lower ← H.lower ∪ (F.lower \ G.upper)
//	F.lower ← F.lower ∪ H.lower
//	symmetric cardinality updates.
func (c *Difference) Filter(vars Vars) (map[string]struct{}, error) {
	h, f, g := vars[c.H], vars[c.F], vars[c.G]
	changed := newChangedSet()
	if c.negated {
		return changed, nil
	}

	newHUpper := h.Upper.Intersect(f.Upper).Difference(g.Lower)
	if !newHUpper.Equal(h.Upper) {
		h.Upper = newHUpper
		changed.add(c.H)
		logTighten(c.log, c.String(), c.H+".upper", newHUpper.Elements())
	}

	newFUpper := f.Upper.Intersect(h.Upper.Union(g.Upper))
	if !newFUpper.Equal(f.Upper) {
		f.Upper = newFUpper
		changed.add(c.F)
	}

	newGUpper := g.Upper.Difference(h.Lower)
	if !newGUpper.Equal(g.Upper) {
		g.Upper = newGUpper
		changed.add(c.G)
	}

	newHLower := h.Lower.Union(f.Lower.Difference(g.Upper))
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

	if newMin := h.Lower.Union(f.Lower.Difference(g.Upper)).Len(); newMin > h.MinCard {
		h.MinCard = newMin
		changed.add(c.H)
	}
	if newMin := h.Lower.Union(f.Lower).Len(); newMin > f.MinCard {
		f.MinCard = newMin
		changed.add(c.F)
	}
	if newMax := f.Upper.Intersect(h.Upper).Difference(g.Lower).Len(); newMax < h.MaxCard {
		h.MaxCard = newMax
		changed.add(c.H)
	}
	if newMax := f.Upper.Intersect(h.Upper.Union(g.Upper)).Len(); newMax < f.MaxCard {
		f.MaxCard = newMax
		changed.add(c.F)
	}
	if newMax := g.Upper.Difference(h.Lower).Len(); newMax < g.MaxCard {
		g.MaxCard = newMax
		changed.add(c.G)
	}

	if err := checkConsistent(vars, c.String(), c.H, c.F, c.G); err != nil {
		return nil, err
	}
	return changed, nil
}
