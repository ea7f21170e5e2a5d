package search

import (
	"context"
	"math/rand"

	"github.com/gitrdm/setcsp/internal/constraint"
	"github.com/gitrdm/setcsp/internal/csperrors"
	"github.com/gitrdm/setcsp/internal/history"
	"github.com/gitrdm/setcsp/internal/metrics"
	"github.com/gitrdm/setcsp/internal/setvar"
	"github.com/gitrdm/setcsp/internal/statecache"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// errRestart unwinds the recursive search to the top-level Solve loop,
// which clears the visited-state cache and history and tries again,
// per spec §4.5's restart policy.
var errRestart = errors.New("search: restart requested")

// Solution is the assignment of every variable to its (fully
// determined) final set, extracted from lower(v) once lower(v) ==
// upper(v) for all v.
type Solution map[string][]int

// Engine is the depth-first, binary-branching search engine of spec
// §4.5, grounded on the teacher's fd_solver.go control loop and the
// original Python's src/solver.py SetSolver._solve.
type Engine struct {
	order       []string
	constraints []constraint.Constraint
	degree      map[string]int

	computer *statecache.Computer
	metrics  *metrics.Metrics
	history  *history.History
	visited  map[uint64]struct{}

	rng    *rand.Rand
	config Config
	log    logrus.FieldLogger
	vis    history.Visualizer
}

// New builds an Engine over the given root variable snapshot and
// constraint set. order fixes the deterministic iteration order used
// by the FIRST variable heuristic and as a tiebreak everywhere else.
func New(order []string, vars map[string]*setvar.Variable, constraints []constraint.Constraint, cfg Config, log logrus.FieldLogger, vis history.Visualizer) *Engine {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if vis == nil {
		vis = history.NopVisualizer{}
	}
	m := metrics.New()
	degree := make(map[string]int, len(order))
	for _, c := range constraints {
		for _, name := range c.VariablesTouched() {
			degree[name]++
		}
	}
	seed := cfg.Seed
	return &Engine{
		order:       append([]string(nil), order...),
		constraints: constraints,
		degree:      degree,
		computer:    statecache.New(vars, constraints, m, log),
		metrics:     m,
		history:     &history.History{},
		visited:     make(map[uint64]struct{}),
		rng:         rand.New(rand.NewSource(seed)),
		config:      cfg,
		log:         log,
		vis:         vis,
	}
}

// Metrics returns the live metrics snapshot, readable at any time
// including mid-search (spec §6).
func (e *Engine) Metrics() *metrics.Metrics { return e.metrics }

// History returns the live operation-history surface (spec §6).
func (e *Engine) History() *history.History { return e.history }

// Solve runs search to completion, honoring ctx cancellation at every
// recursive frame boundary (spec §5). It returns csperrors.Unsatisfiable
// if the search space is exhausted with no solution, or
// csperrors.Interrupted if ctx was cancelled first.
func (e *Engine) Solve(ctx context.Context) ([]Solution, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, csperrors.Interrupted
		}
		sols, err := e.solve(ctx, nil)
		e.metrics.SampleMemory()
		if errors.Is(err, errRestart) {
			e.restart()
			continue
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, csperrors.Interrupted
		}
		if err != nil {
			return nil, err
		}
		if len(sols) == 0 {
			return nil, csperrors.Unsatisfiable
		}
		if err := e.vis.BuildFromHistory(e.history, e.history.Solution); err != nil {
			return nil, err
		}
		return sols, nil
	}
}

// restart clears the visited-state cache, the propagator's state
// cache, and the operation history, per spec §4.5: "a restart clears
// the visited-state cache/history/random budget and increments
// restart_count." Metrics.ResetForRestart does the counter half.
func (e *Engine) restart() {
	e.metrics.ResetForRestart()
	e.visited = make(map[uint64]struct{})
	e.history = &history.History{}
	e.computer.Reset()
}

// solve is the recursive DFS frame. A nil, nil return means "this
// branch holds no solution, not an error"; a non-nil error (restart
// request or context cancellation) bubbles all the way to Solve
// without being swallowed.
func (e *Engine) solve(ctx context.Context, path history.Path) ([]Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.metrics.Branches++
	if e.checkRestart(path) {
		return nil, errRestart
	}

	key := statecache.CanonicalKey(path)
	if _, seen := e.visited[key]; seen {
		return nil, nil
	}
	e.visited[key] = struct{}{}

	vars, err := e.computer.Compute(path)
	if err != nil {
		if csperrors.IsInconsistencyFault(err) {
			return nil, nil
		}
		return nil, err
	}

	e.metrics.CurrentDepth = len(path)
	if e.metrics.CurrentDepth > e.metrics.MaxDepth {
		e.metrics.MaxDepthHits = 0
		e.metrics.MaxDepth = e.metrics.CurrentDepth
		if e.metrics.CurrentDepth > e.metrics.GlobalMaxDepth {
			e.metrics.GlobalMaxDepth = e.metrics.CurrentDepth
		}
	}

	if e.earlyFailure(vars) {
		e.metrics.EarlyFailureCount++
		return nil, nil
	}

	if sol, ok := e.asSolution(vars); ok {
		e.metrics.SolutionsFound++
		e.history.Solution = path.Clone()
		return []Solution{sol}, nil
	}

	varName, ok := e.chooseVariable(vars)
	if !ok {
		return nil, nil
	}

	// Binary branching: only the first candidate value is branched on;
	// its REMOVE branch covers every assignment without it.
	var collected []Solution
	for _, x := range e.chooseValues(varName, vars)[:1] {
		e.metrics.RecordValueChoice(varName, x)

		addPath := withOp(path, history.Operation{Variable: varName, Op: history.Add, Value: x, Depth: len(path)})
		e.history.Append(addPath[len(addPath)-1])
		sols, err := e.solve(ctx, addPath)
		if err != nil {
			return collected, err
		}
		collected = append(collected, sols...)
		if e.done(collected) {
			return collected, nil
		}

		removePath := withOp(path, history.Operation{Variable: varName, Op: history.Remove, Value: x, Depth: len(path)})
		e.history.Append(removePath[len(removePath)-1])
		sols, err = e.solve(ctx, removePath)
		if err != nil {
			return collected, err
		}
		collected = append(collected, sols...)
		if e.done(collected) {
			return collected, nil
		}
	}

	if e.metrics.CurrentDepth == e.metrics.MaxDepth {
		e.metrics.MaxDepthHits++
	}
	e.metrics.CurrentDepth--
	return collected, nil
}

// withOp returns a fresh path with op appended, never aliasing the
// backing array of path so sibling branches cannot observe each
// other's mutations.
func withOp(path history.Path, op history.Operation) history.Path {
	out := make(history.Path, len(path)+1)
	copy(out, path)
	out[len(path)] = op
	return out
}

// checkRestart implements spec §4.5's restart trigger:
// max_depth_hits >= 10 + max_depth.
func (e *Engine) checkRestart(path history.Path) bool {
	if e.metrics.MaxDepthHits >= 10+e.metrics.MaxDepth {
		e.metrics.CurrentDepth = len(path)
		return true
	}
	return false
}

// earlyFailure implements the early-failure heuristic of spec §4.5:
// a constraint whose variables are all still undetermined but which
// already evaluates false under the current bounds can never become
// true, since Evaluate only inspects the lower bound and further
// branching can only grow it.
func (e *Engine) earlyFailure(vars constraint.Vars) bool {
	for _, c := range e.constraints {
		if !allUndetermined(c, vars) {
			continue
		}
		e.metrics.ConstraintChecks++
		if !c.Evaluate(vars) {
			return true
		}
	}
	return false
}

func allUndetermined(c constraint.Constraint, vars constraint.Vars) bool {
	for _, name := range c.VariablesTouched() {
		if v, ok := vars[name]; ok && v.Determined() {
			return false
		}
	}
	return true
}

// asSolution reports whether every variable is valid and determined
// and every constraint holds, extracting the assignment if so.
func (e *Engine) asSolution(vars constraint.Vars) (Solution, bool) {
	for _, name := range e.order {
		v := vars[name]
		if v == nil || !v.Valid() || !v.Determined() {
			return nil, false
		}
	}
	for _, c := range e.constraints {
		e.metrics.ConstraintChecks++
		if !c.Evaluate(vars) {
			return nil, false
		}
	}
	sol := make(Solution, len(e.order))
	for _, name := range e.order {
		sol[name] = vars[name].Lower.Elements()
	}
	return sol, true
}

// done reports whether enough solutions have been collected to stop
// exploring further siblings, per Config.NumSolutions.
func (e *Engine) done(collected []Solution) bool {
	return e.config.NumSolutions != AllSolutions && len(collected) >= e.config.NumSolutions
}
