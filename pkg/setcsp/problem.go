// Package setcsp is the public surface of the finite set-constraint
// solver: declare set variables, add constraints from the catalogue of
// spec §4.2, then Solve. It is the only package external callers (such
// as internal/sgp's Social Golfer Problem encoder) import.
package setcsp

import (
	"context"
	"os"
	"os/signal"

	"github.com/gitrdm/setcsp/internal/constraint"
	"github.com/gitrdm/setcsp/internal/csperrors"
	"github.com/gitrdm/setcsp/internal/history"
	"github.com/gitrdm/setcsp/internal/metrics"
	"github.com/gitrdm/setcsp/internal/search"
	"github.com/gitrdm/setcsp/internal/setvar"
	"github.com/sirupsen/logrus"
)

// Problem accumulates variables and constraints before a call to
// Solve. It owns the only copy of the root variable state; Solve
// clones it per branch and never mutates it.
type Problem struct {
	store *setvar.Store
	cons  []constraint.Constraint
	log   logrus.FieldLogger
}

// Option configures a Problem at construction time.
type Option func(*Problem)

// WithLogger installs a structured logger the problem and every
// constraint/search component will log through, rather than the
// package-global logrus logger. Passing a nil logger panics
// immediately: a silently-discarded logger is a configuration mistake,
// not a valid "quiet" mode (use logrus's null formatter for that).
func WithLogger(log logrus.FieldLogger) Option {
	if log == nil {
		panic("setcsp: WithLogger called with a nil logger")
	}
	return func(p *Problem) { p.log = log }
}

// New returns an empty Problem.
func New(opts ...Option) *Problem {
	p := &Problem{store: setvar.NewStore(), log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AddVariable declares a set variable with the given lower/upper bound
// elements and cardinality bounds. maxCard of 0 with a non-empty upper
// defaults to |upper|, per spec §6's "max_card defaults to |upper|"
// convention.
func (p *Problem) AddVariable(name string, lower, upper []int, minCard, maxCard int) error {
	uni := p.store.Universe()
	lo := setvar.NewBound(uni, lower)
	up := setvar.NewBound(uni, upper)
	if maxCard == 0 && len(upper) > 0 {
		maxCard = len(upper)
	}
	v := setvar.NewVariable(name, lo, up, minCard, maxCard)
	if err := p.store.Add(v); err != nil {
		return err
	}
	return nil
}

// variable resolves name to its declared Variable, for constraint
// constructors that need to validate references eagerly (spec §4.1).
func (p *Problem) variable(name string) (*setvar.Variable, error) {
	return p.store.MustGet(name)
}

// requireVars validates that every name was declared before
// registering a constraint that touches it.
func (p *Problem) requireVars(names ...string) error {
	for _, n := range names {
		if _, err := p.variable(n); err != nil {
			return err
		}
	}
	return nil
}

// AddSubset registers F ⊆ G.
func (p *Problem) AddSubset(f, g string) error {
	if err := p.requireVars(f, g); err != nil {
		return err
	}
	p.cons = append(p.cons, constraint.NewSubset(f, g, p.log))
	return nil
}

// AddNotSubset registers the negated F ⊈ G (Evaluate-only; per spec
// §4.2 it never tightens bounds pre-ground).
func (p *Problem) AddNotSubset(f, g string) error {
	if err := p.requireVars(f, g); err != nil {
		return err
	}
	p.cons = append(p.cons, constraint.NewSubset(f, g, p.log).Negate())
	return nil
}

// AddUnion registers H = F ∪ G.
func (p *Problem) AddUnion(h, f, g string) error {
	if err := p.requireVars(h, f, g); err != nil {
		return err
	}
	p.cons = append(p.cons, constraint.NewUnion(h, f, g, p.log))
	return nil
}

// AddNotUnion registers the negated H ≠ F ∪ G.
func (p *Problem) AddNotUnion(h, f, g string) error {
	if err := p.requireVars(h, f, g); err != nil {
		return err
	}
	p.cons = append(p.cons, constraint.NewUnion(h, f, g, p.log).Negate())
	return nil
}

// AddIntersection registers H = F ∩ G.
func (p *Problem) AddIntersection(h, f, g string) error {
	if err := p.requireVars(h, f, g); err != nil {
		return err
	}
	p.cons = append(p.cons, constraint.NewIntersection(h, f, g, p.log))
	return nil
}

// AddNotIntersection registers the negated H ≠ F ∩ G.
func (p *Problem) AddNotIntersection(h, f, g string) error {
	if err := p.requireVars(h, f, g); err != nil {
		return err
	}
	p.cons = append(p.cons, constraint.NewIntersection(h, f, g, p.log).Negate())
	return nil
}

// AddDifference registers H = F \ G.
func (p *Problem) AddDifference(h, f, g string) error {
	if err := p.requireVars(h, f, g); err != nil {
		return err
	}
	p.cons = append(p.cons, constraint.NewDifference(h, f, g, p.log))
	return nil
}

// AddNotDifference registers the negated H ≠ F \ G.
func (p *Problem) AddNotDifference(h, f, g string) error {
	if err := p.requireVars(h, f, g); err != nil {
		return err
	}
	p.cons = append(p.cons, constraint.NewDifference(h, f, g, p.log).Negate())
	return nil
}

// AddDifferent registers F ≠ G.
func (p *Problem) AddDifferent(f, g string) error {
	if err := p.requireVars(f, g); err != nil {
		return err
	}
	p.cons = append(p.cons, constraint.NewDifferent(f, g))
	return nil
}

// AddCardinalityEq registers |F| = n.
func (p *Problem) AddCardinalityEq(f string, n int) error {
	if err := p.requireVars(f); err != nil {
		return err
	}
	p.cons = append(p.cons, constraint.NewCardinalityEq(f, n, p.log))
	return nil
}

// AddBoundedIntersection registers |F ∩ G| ≤ k.
func (p *Problem) AddBoundedIntersection(f, g string, k int) error {
	if err := p.requireVars(f, g); err != nil {
		return err
	}
	p.cons = append(p.cons, constraint.NewBoundedIntersection(f, g, k, p.log))
	return nil
}

// AddLexLess registers F <_lex G.
func (p *Problem) AddLexLess(f, g string) error {
	if err := p.requireVars(f, g); err != nil {
		return err
	}
	p.cons = append(p.cons, constraint.NewLexLess(f, g, p.log))
	return nil
}

// Result is returned by Solve: every discovered solution (in discovery
// order), the final metrics snapshot, and the full operation history.
type Result struct {
	Solutions []map[string][]int
	Metrics   *metrics.Metrics
	History   *history.History
}

// Solve runs depth-first search to the configured stopping point (one
// solution by default; see WithNumSolutions/WithAllSolutions). It
// additionally cancels on SIGINT, so a solve invoked from a CLI can be
// interrupted with Ctrl-C and still return partial metrics and history
// (spec §5's cooperative cancellation, restored from the original's
// KeyboardInterrupt handling).
func (p *Problem) Solve(ctx context.Context, opts ...SolveOption) (*Result, error) {
	cfg := search.DefaultConfig()
	settings := &solveSettings{Config: cfg}
	for _, opt := range opts {
		opt(settings)
	}
	switch settings.VariableStrategy {
	case search.First, search.SmallestDomain, search.MostConstrained, search.LeastConstrained, search.RandomVariable, search.CustomOrder:
	default:
		return nil, csperrors.NewUnsupportedOption("variable_strategy=" + string(settings.VariableStrategy))
	}
	switch settings.ValueStrategy {
	case search.Simple, search.RandomValue, search.LowestFrequency:
	default:
		return nil, csperrors.NewUnsupportedOption("value_strategy=" + string(settings.ValueStrategy))
	}
	switch settings.RestartStrategy {
	case search.RandomRestart, search.NextRestart, search.ConstrainedRandomRestart:
	default:
		return nil, csperrors.NewUnsupportedOption("restart_strategy=" + string(settings.RestartStrategy))
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	order := p.store.Names()
	vars := p.store.Clone()
	engine := search.New(order, vars, p.cons, settings.Config, p.log, settings.Visualizer)

	sols, err := engine.Solve(ctx)
	result := &Result{Metrics: engine.Metrics(), History: engine.History()}
	if err != nil {
		if err == csperrors.Unsatisfiable || err == csperrors.Interrupted {
			return result, err
		}
		return result, err
	}
	result.Solutions = make([]map[string][]int, len(sols))
	for i, s := range sols {
		result.Solutions[i] = map[string][]int(s)
	}
	return result, nil
}
