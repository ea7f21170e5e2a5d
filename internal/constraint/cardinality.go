package constraint

import (
	"fmt"

	"github.com/gitrdm/setcsp/internal/csperrors"
	"github.com/sirupsen/logrus"
)

// CardinalityEq enforces |F| = n.
type CardinalityEq struct {
	F string
	N int
	log logrus.FieldLogger
}

// NewCardinalityEq builds a CardinalityEq(F, n) constraint.
func NewCardinalityEq(f string, n int, log logrus.FieldLogger) *CardinalityEq {
	return &CardinalityEq{F: f, N: n, log: log}
}

func (c *CardinalityEq) Kind() Kind                 { return KindCardinalityEq }
func (c *CardinalityEq) VariablesTouched() []string { return []string{c.F} }
func (c *CardinalityEq) String() string             { return fmt.Sprintf("|%s| = %d", c.F, c.N) }

// Evaluate reports |F.lower| == n.
func (c *CardinalityEq) Evaluate(vars Vars) bool {
	return vars[c.F].Lower.Len() == c.N
}

// Filter applies spec §4.2's CardinalityEq rules:
//
//	fail if |F.lower| > n or |F.upper| < n
//	if |F.lower| = n: F.upper ← F.lower
//	if |F.upper| = n: F.lower ← F.upper
//	else if |F.upper| − |F.lower| = n − |F.lower|: F.lower ← F.upper
//	min_card = max_card = n
func (c *CardinalityEq) Filter(vars Vars) (map[string]struct{}, error) {
	f := vars[c.F]
	changed := newChangedSet()

	lowerLen, upperLen := f.Lower.Len(), f.Upper.Len()
	if lowerLen > c.N || upperLen < c.N {
		return nil, csperrors.NewInconsistencyFault(c.String(), "bounds cannot satisfy the fixed cardinality")
	}

	switch {
	case lowerLen == c.N:
		if !f.Upper.Equal(f.Lower) {
			f.Upper = f.Lower
			changed.add(c.F)
			logTighten(c.log, c.String(), c.F+".upper", f.Upper.Elements())
		}
	case upperLen == c.N:
		if !f.Lower.Equal(f.Upper) {
			f.Lower = f.Upper
			changed.add(c.F)
			logTighten(c.log, c.String(), c.F+".lower", f.Lower.Elements())
		}
	case upperLen-lowerLen == c.N-lowerLen:
		// The number of free (undetermined) elements exactly equals the
		// number still needed: every undetermined element must be taken.
		// Algebraically upperLen == c.N, so this duplicates the case
		// above; kept because the spec states both forms separately.
		if !f.Lower.Equal(f.Upper) {
			f.Lower = f.Upper
			changed.add(c.F)
			logTighten(c.log, c.String(), c.F+".lower", f.Lower.Elements())
		}
	}

	if c.N > f.MinCard {
		f.MinCard = c.N
		changed.add(c.F)
	}
	if c.N < f.MaxCard {
		f.MaxCard = c.N
		changed.add(c.F)
	}
	f.MinCard, f.MaxCard = c.N, c.N

	if err := checkConsistent(vars, c.String(), c.F); err != nil {
		return nil, err
	}
	return changed, nil
}
