// Package statecache materialises, for any operation path, the
// propagated variable state, caching results by a canonical path key
// and replaying incrementally from a cached parent where possible
// (spec §4.4).
package statecache

import (
	"sort"

	"github.com/gitrdm/setcsp/internal/constraint"
	"github.com/gitrdm/setcsp/internal/csperrors"
	"github.com/gitrdm/setcsp/internal/history"
	"github.com/gitrdm/setcsp/internal/metrics"
	"github.com/gitrdm/setcsp/internal/propagate"
	"github.com/gitrdm/setcsp/internal/setvar"
	"github.com/mitchellh/hashstructure"
	"github.com/sirupsen/logrus"
)

// entry is one cached path's computed, propagated variable state.
type entry struct {
	vars constraint.Vars
}

// Computer is the state computer of spec §4.4: it owns the cache from
// canonical path key to computed state, the initial variable snapshot,
// and the constraint-driven propagator used to (re)reach a fixpoint.
type Computer struct {
	initial     map[string]*setvar.Variable
	propagator  *propagate.Propagator
	cache       map[uint64]entry
	log         logrus.FieldLogger
	metrics     *metrics.Metrics
	skip        func() bool // probabilistic "skip propagation" predicate, spec §4.4
}

// Option configures a Computer at construction time.
type Option func(*Computer)

// WithSkipPredicate installs the "configurable skip" predicate that may
// bypass the fixpoint for an individual compute, useful during diving.
// When the predicate returns true, the returned state is not cached.
func WithSkipPredicate(skip func() bool) Option {
	return func(c *Computer) { c.skip = skip }
}

// New builds a Computer over the initial (root) variable snapshot and
// the full constraint list.
func New(initial map[string]*setvar.Variable, constraints []constraint.Constraint, m *metrics.Metrics, log logrus.FieldLogger, opts ...Option) *Computer {
	c := &Computer{
		initial:    initial,
		propagator: propagate.New(constraints, log),
		cache:      make(map[uint64]entry),
		log:        log,
		metrics:    m,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Reset clears the cache; called on restart (spec §4.5's "Restart
// policy") so stale path keys from the discarded search tree cannot
// leak into the new attempt.
func (c *Computer) Reset() {
	c.cache = make(map[uint64]entry)
}

// CanonicalKey implements spec §4.4's "Canonical key: the multiset of
// operations as a sorted tuple ... this collapses order-independent
// reorderings but keeps distinct branch decisions distinct." The sorted
// quadruples are hashed with mitchellh/hashstructure rather than
// compared textually, so lookups stay O(1) regardless of path length.
func CanonicalKey(path history.Path) uint64 {
	type quad struct {
		Variable string
		Op       int
		Value    int
		Depth    int
	}
	quads := make([]quad, len(path))
	for i, op := range path {
		quads[i] = quad{op.Variable, int(op.Op), op.Value, op.Depth}
	}
	sort.Slice(quads, func(i, j int) bool {
		a, b := quads[i], quads[j]
		if a.Variable != b.Variable {
			return a.Variable < b.Variable
		}
		if a.Op != b.Op {
			return a.Op < b.Op
		}
		if a.Value != b.Value {
			return a.Value < b.Value
		}
		return a.Depth < b.Depth
	})
	h, err := hashstructure.Hash(quads, nil)
	if err != nil {
		// hashstructure only fails on unhashable field types (channels,
		// funcs); quad is a plain value struct, so this is unreachable
		// in practice. A zero key degrades to "always a cache miss"
		// rather than panicking.
		return 0
	}
	return h
}

// Compute materialises the propagated state for path, consulting the
// cache and, where possible, incrementally replaying from a cached
// parent (spec §4.4). Failures surface as an InconsistencyFault; the
// caller treats that as a dead branch.
func (c *Computer) Compute(path history.Path) (constraint.Vars, error) {
	key := CanonicalKey(path)
	if e, ok := c.cache[key]; ok {
		if c.metrics != nil {
			c.metrics.CacheHits++
		}
		return e.vars, nil
	}

	skip := c.skip != nil && c.skip()
	if c.metrics != nil && skip {
		c.metrics.SkippedPropagations++
	}

	if len(path) > 0 {
		parentPath := path[:len(path)-1]
		parentKey := CanonicalKey(parentPath)
		if parentEntry, ok := c.cache[parentKey]; ok {
			vars := cloneVars(parentEntry.vars)
			lastOp := path[len(path)-1]
			if err := applyOp(vars, lastOp); err != nil {
				return nil, err
			}
			if skip {
				return vars, nil
			}
			result, err := c.propagator.RunSeeded(vars, []string{lastOp.Variable})
			c.recordFiltering(result)
			if err != nil {
				return nil, err
			}
			c.cache[key] = entry{vars: vars}
			return vars, nil
		}
	}

	vars := cloneVars(c.initial)
	for _, op := range path {
		if err := applyOp(vars, op); err != nil {
			return nil, err
		}
	}
	if skip {
		return vars, nil
	}
	result, err := c.propagator.Run(vars)
	c.recordFiltering(result)
	if err != nil {
		return nil, err
	}
	c.cache[key] = entry{vars: vars}
	return vars, nil
}

// recordFiltering folds one propagator pass's round count into the
// metrics surface: each round is exactly one constraint Filter call, so
// it counts toward both FilteringRounds and ConstraintChecks (spec §6).
func (c *Computer) recordFiltering(result propagate.Result) {
	if c.metrics == nil {
		return
	}
	c.metrics.FilteringRounds += result.Rounds
	c.metrics.ConstraintChecks += result.Rounds
}

func cloneVars(in map[string]*setvar.Variable) constraint.Vars {
	out := make(constraint.Vars, len(in))
	for name, v := range in {
		out[name] = v.Clone()
	}
	return out
}

// applyOp asserts the branching decision directly on the bound
// representation: ADD(v, x) asserts x ∈ lower(v); REMOVE(v, x) asserts
// x ∉ upper(v) (spec §3).
func applyOp(vars constraint.Vars, op history.Operation) error {
	v, ok := vars[op.Variable]
	if !ok {
		return csperrors.NewUnknownVariable(op.Variable)
	}
	switch op.Op {
	case history.Add:
		v.Lower = v.Lower.WithAdded(op.Value)
	case history.Remove:
		v.Upper = v.Upper.WithRemoved(op.Value)
	}
	if err := v.Consistent(); err != nil {
		return err
	}
	return nil
}
