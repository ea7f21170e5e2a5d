package constraint

import (
	"fmt"

	"github.com/gitrdm/setcsp/internal/csperrors"
	"github.com/sirupsen/logrus"
)

// LexLess enforces F <_lex G: the ascending-sorted element sequence of
// F is strictly less, in dictionary order, than that of G.
type LexLess struct {
	F, G string
	log  logrus.FieldLogger
}

// NewLexLess builds a LexLess(F, G) constraint.
func NewLexLess(f, g string, log logrus.FieldLogger) *LexLess {
	return &LexLess{F: f, G: g, log: log}
}

func (c *LexLess) Kind() Kind                 { return KindLexLess }
func (c *LexLess) VariablesTouched() []string { return []string{c.F, c.G} }
func (c *LexLess) String() string             { return fmt.Sprintf("%s <_lex %s", c.F, c.G) }

// lexCompare compares two ascending sequences lexicographically, the
// way sets of different cardinality are ordered in spec §3: shorter is
// smaller once one is a prefix of the other.
func lexCompare(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// Evaluate reports lexCompare(F.lower, G.lower) < 0.
func (c *LexLess) Evaluate(vars Vars) bool {
	f, g := vars[c.F], vars[c.G]
	return lexCompare(f.Lower.Elements(), g.Lower.Elements()) < 0
}

// Filter implements spec §4.2's LexLess rule: for each candidate x in
// G.upper \ G.lower, remove x from G.upper if the tightest possible G
// containing G.lower ∪ {x} still cannot beat F.lower lexicographically;
// fail if the tightened G.upper still cannot beat F.lower. The raw
// G.upper sequence is never compared directly against F.lower: for an
// ascending set the lex-greatest admissible subset is a high singleton,
// not the full upper bound, so that comparison would reject reachable
// assignments.
func (c *LexLess) Filter(vars Vars) (map[string]struct{}, error) {
	f, g := vars[c.F], vars[c.G]
	fLower := f.Lower.Elements()

	changed := newChangedSet()
	newGUpper := g.Upper
	for _, x := range g.Upper.Difference(g.Lower).Elements() {
		// The tightest possible G known to contain x is G.lower ∪ {x}
		// itself: nothing beyond the committed lower bound plus x is
		// guaranteed, so this is the candidate to test for lex rank.
		candidate := g.Lower.WithAdded(x)
		if lexCompare(fLower, candidate.Elements()) >= 0 {
			newGUpper = newGUpper.WithRemoved(x)
		}
	}
	if !newGUpper.Equal(g.Upper) {
		g.Upper = newGUpper
		changed.add(c.G)
		logTighten(c.log, c.String(), c.G+".upper", newGUpper.Elements())
	}

	if lexCompare(fLower, g.Upper.Elements()) >= 0 {
		return nil, csperrors.NewInconsistencyFault(c.String(), "tightened G.upper can no longer beat F")
	}

	if err := checkConsistent(vars, c.String(), c.F, c.G); err != nil {
		return nil, err
	}
	return changed, nil
}
