package constraint

import (
	"fmt"

	"github.com/gitrdm/setcsp/internal/csperrors"
	"github.com/sirupsen/logrus"
)

// BoundedIntersection enforces |F ∩ G| ≤ k.
type BoundedIntersection struct {
	F, G string
	K    int
	log  logrus.FieldLogger
}

// NewBoundedIntersection builds a BoundedIntersection(F, G, k) constraint.
func NewBoundedIntersection(f, g string, k int, log logrus.FieldLogger) *BoundedIntersection {
	return &BoundedIntersection{F: f, G: g, K: k, log: log}
}

func (c *BoundedIntersection) Kind() Kind                 { return KindBoundedIntersection }
func (c *BoundedIntersection) VariablesTouched() []string { return []string{c.F, c.G} }
func (c *BoundedIntersection) String() string {
	return fmt.Sprintf("|%s ∩ %s| ≤ %d", c.F, c.G, c.K)
}

// Evaluate reports |F.lower ∩ G.lower| ≤ k.
func (c *BoundedIntersection) Evaluate(vars Vars) bool {
	f, g := vars[c.F], vars[c.G]
	return f.Lower.Intersect(g.Lower).Len() <= c.K
}

// Filter applies spec §4.2's BoundedIntersection rule: let I = F.lower
// ∩ G.lower; fail if |I| > k; for each undetermined x of F, remove it
// from F.upper if forcing it in would push |I| past k (and
// symmetrically for G).
func (c *BoundedIntersection) Filter(vars Vars) (map[string]struct{}, error) {
	f, g := vars[c.F], vars[c.G]
	i := f.Lower.Intersect(g.Lower)
	if i.Len() > c.K {
		return nil, csperrors.NewInconsistencyFault(c.String(), "committed intersection already exceeds k")
	}

	changed := newChangedSet()

	newFUpper := f.Upper
	for _, x := range f.Upper.Difference(f.Lower).Elements() {
		extra := 0
		if g.Lower.Contains(x) {
			extra = 1
		}
		if i.Len()+extra > c.K {
			newFUpper = newFUpper.WithRemoved(x)
		}
	}
	if !newFUpper.Equal(f.Upper) {
		f.Upper = newFUpper
		changed.add(c.F)
		logTighten(c.log, c.String(), c.F+".upper", newFUpper.Elements())
	}

	newGUpper := g.Upper
	for _, x := range g.Upper.Difference(g.Lower).Elements() {
		extra := 0
		if f.Lower.Contains(x) {
			extra = 1
		}
		if i.Len()+extra > c.K {
			newGUpper = newGUpper.WithRemoved(x)
		}
	}
	if !newGUpper.Equal(g.Upper) {
		g.Upper = newGUpper
		changed.add(c.G)
		logTighten(c.log, c.String(), c.G+".upper", newGUpper.Elements())
	}

	if err := checkConsistent(vars, c.String(), c.F, c.G); err != nil {
		return nil, err
	}
	return changed, nil
}
