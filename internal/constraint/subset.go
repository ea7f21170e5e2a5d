package constraint

import (
	"fmt"

	"github.com/gitrdm/setcsp/internal/csperrors"
	"github.com/sirupsen/logrus"
)

// Subset enforces F ⊆ G.
type Subset struct {
	F, G    string
	negated bool
	log     logrus.FieldLogger
}

// NewSubset builds a Subset(F, G) constraint.
func NewSubset(f, g string, log logrus.FieldLogger) *Subset {
	return &Subset{F: f, G: g, log: log}
}

// Negate flips the constraint to F ⊈ G for Evaluate purposes only; a
// negated set constraint is never usefully filterable pre-ground, so
// Filter makes no progress on it (mirrors the original Python's
// Constraint.negated comment).
func (c *Subset) Negate() *Subset { c.negated = true; return c }

func (c *Subset) Kind() Kind                 { return KindSubset }
func (c *Subset) VariablesTouched() []string { return []string{c.F, c.G} }
func (c *Subset) String() string {
	op := "⊆"
	if c.negated {
		op = "⊈"
	}
	return fmt.Sprintf("%s %s %s", c.F, op, c.G)
}

// Evaluate reports F.lower ⊆ G.lower (ground evaluation per original's
// Subset._evaluate), negated if configured.
func (c *Subset) Evaluate(vars Vars) bool {
	f, g := vars[c.F], vars[c.G]
	result := f.Lower.IsSubsetOf(g.Lower)
	if c.negated {
		return !result
	}
	return result
}

// Filter applies the four tightening rules of spec §4.2:
//
//	F.upper ← F.upper ∩ G.upper
//	G.lower ← G.lower ∪ F.lower
//	G.min_card ← max(G.min_card, |F.lower ∪ G.lower|)
//	F.max_card ← min(F.max_card, |F.upper ∩ G.upper|)
func (c *Subset) Filter(vars Vars) (map[string]struct{}, error) {
	f, g := vars[c.F], vars[c.G]
	changed := newChangedSet()
	if c.negated {
		return changed, nil
	}

	newFUpper := f.Upper.Intersect(g.Upper)
	if !newFUpper.Equal(f.Upper) {
		f.Upper = newFUpper
		changed.add(c.F)
		c.debugf("tightened %s.upper to %v", c.F, newFUpper.Elements())
	}

	newGLower := f.Lower.Union(g.Lower)
	if !newGLower.Equal(g.Lower) {
		g.Lower = newGLower
		changed.add(c.G)
		c.debugf("tightened %s.lower to %v", c.G, newGLower.Elements())
	}

	if newMin := newGLower.Len(); newMin > g.MinCard {
		g.MinCard = newMin
		changed.add(c.G)
	}
	if newMax := newFUpper.Len(); newMax < f.MaxCard {
		f.MaxCard = newMax
		changed.add(c.F)
	}

	if err := f.Consistent(); err != nil {
		return nil, csperrors.NewInconsistencyFault(c.String(), err.Error())
	}
	if err := g.Consistent(); err != nil {
		return nil, csperrors.NewInconsistencyFault(c.String(), err.Error())
	}
	return changed, nil
}

func (c *Subset) debugf(format string, args ...interface{}) {
	if c.log == nil {
		return
	}
	c.log.WithField("constraint", c.String()).Debugf(format, args...)
}
