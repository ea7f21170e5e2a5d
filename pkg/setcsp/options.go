package setcsp

import (
	"github.com/gitrdm/setcsp/internal/history"
	"github.com/gitrdm/setcsp/internal/search"
)

// solveSettings bundles the search engine's Config with the one
// setting the engine does not own directly: the visualizer
// collaborator (spec §1, §6).
type solveSettings struct {
	search.Config
	Visualizer history.Visualizer
}

// SolveOption configures a single Solve call; every option here
// corresponds to one of spec §6's enumerated solve() options.
type SolveOption func(*solveSettings)

// WithVariableStrategy selects the variable-choice heuristic.
func WithVariableStrategy(s search.VariableStrategy) SolveOption {
	return func(st *solveSettings) { st.VariableStrategy = s }
}

// WithValueStrategy selects the value-choice heuristic.
func WithValueStrategy(s search.ValueStrategy) SolveOption {
	return func(st *solveSettings) { st.ValueStrategy = s }
}

// WithRestartStrategy selects how a randomised tie-break detour picks
// from the detour window while the per-restart budget still allows one.
func WithRestartStrategy(s search.RestartStrategy) SolveOption {
	return func(st *solveSettings) { st.RestartStrategy = s }
}

// WithCustomOrder supplies the variable order used by
// search.CustomOrder; names not listed fall back to declaration order.
// Calling this does not itself select CUSTOM_ORDER: pair it with
// WithVariableStrategy(search.CustomOrder).
func WithCustomOrder(names ...string) SolveOption {
	return func(st *solveSettings) { st.CustomOrder = append([]string(nil), names...) }
}

// WithNumSolutions bounds how many solutions Solve collects before
// returning. Pass search.AllSolutions to exhaust the search space.
func WithNumSolutions(n int) SolveOption {
	return func(st *solveSettings) { st.NumSolutions = n }
}

// WithAllSolutions requests exhaustive enumeration.
func WithAllSolutions() SolveOption {
	return WithNumSolutions(search.AllSolutions)
}

// WithSeed fixes the random source backing RANDOM heuristics and
// randomised tie-breaks, for reproducible runs. Grounded on the
// functional-options seeding pattern (WithSeed/WithRand) the teacher
// pack's builder helpers use for deterministic test fixtures.
func WithSeed(seed int64) SolveOption {
	return func(st *solveSettings) { st.Seed = seed }
}

// WithVisualizer installs a non-default Visualizer; a nil v panics,
// matching WithLogger's fail-fast validation rather than silently
// falling back to NopVisualizer.
func WithVisualizer(v history.Visualizer) SolveOption {
	if v == nil {
		panic("setcsp: WithVisualizer called with a nil Visualizer")
	}
	return func(st *solveSettings) { st.Visualizer = v }
}
