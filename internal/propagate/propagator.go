// Package propagate drives the constraint set to a joint bound
// fixpoint using a variable-indexed work queue, per spec §4.3.
package propagate

import (
	"github.com/gitrdm/setcsp/internal/constraint"
	"github.com/sirupsen/logrus"
)

// Propagator owns the constraint list and the var→constraints index
// used to decide which constraints to re-fire after a tightening.
type Propagator struct {
	constraints []constraint.Constraint
	byVar       map[string][]int // variable name -> indices into constraints
	log         logrus.FieldLogger
}

// New builds a Propagator over the given constraint set.
func New(constraints []constraint.Constraint, log logrus.FieldLogger) *Propagator {
	p := &Propagator{constraints: constraints, byVar: make(map[string][]int), log: log}
	for i, c := range constraints {
		for _, name := range c.VariablesTouched() {
			p.byVar[name] = append(p.byVar[name], i)
		}
	}
	return p
}

// Constraints returns the full constraint list, for evaluation after a
// fixpoint or for seeding a fresh visited-state check.
func (p *Propagator) Constraints() []constraint.Constraint {
	return p.constraints
}

// Result reports how many filter rounds (constraint Filter calls) one
// Run or RunSeeded pass executed.
type Result struct {
	Rounds int
}

// Run drives every registered constraint to a fixpoint against vars.
// Returns an error (always an InconsistencyFault) the moment any
// filter fails; the caller treats that as a dead branch.
func (p *Propagator) Run(vars constraint.Vars) (Result, error) {
	seed := make([]int, len(p.constraints))
	for i := range seed {
		seed[i] = i
	}
	return p.runFrom(vars, seed)
}

// RunSeeded drives a fixpoint starting from only the constraints that
// reference the given variable names, used by the state computer's
// incremental replay path (spec §4.4) after a single branching
// operation mutates one variable.
func (p *Propagator) RunSeeded(vars constraint.Vars, names []string) (Result, error) {
	seen := make(map[int]struct{})
	var seed []int
	for _, name := range names {
		for _, idx := range p.byVar[name] {
			if _, ok := seen[idx]; !ok {
				seen[idx] = struct{}{}
				seed = append(seed, idx)
			}
		}
	}
	return p.runFrom(vars, seed)
}

// runFrom implements the fixpoint loop: pop a constraint, filter it; if
// any variable names changed, enqueue every other constraint that
// mentions any of those variables (skipping the just-run constraint and
// duplicates already queued). Order-independent at the fixpoint per
// spec §4.3/§5.
func (p *Propagator) runFrom(vars constraint.Vars, seed []int) (Result, error) {
	queue := append([]int(nil), seed...)
	inQueue := make(map[int]bool, len(p.constraints))
	for _, idx := range seed {
		inQueue[idx] = true
	}

	rounds := 0
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		inQueue[idx] = false

		c := p.constraints[idx]
		rounds++
		changed, err := c.Filter(vars)
		if err != nil {
			if p.log != nil {
				p.log.WithField("constraint", c.String()).Debug("propagation failed: ", err)
			}
			return Result{Rounds: rounds}, err
		}
		if len(changed) == 0 {
			continue
		}

		for name := range changed {
			for _, otherIdx := range p.byVar[name] {
				if otherIdx == idx || inQueue[otherIdx] {
					continue
				}
				inQueue[otherIdx] = true
				queue = append(queue, otherIdx)
			}
		}
	}

	for name, v := range vars {
		if v.Upper.Len() == 0 {
			return Result{Rounds: rounds}, inconsistentEmptyUpper(name)
		}
		if err := v.Consistent(); err != nil {
			return Result{Rounds: rounds}, err
		}
	}
	return Result{Rounds: rounds}, nil
}
