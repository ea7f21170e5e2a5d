package search

import (
	"sort"

	"github.com/gitrdm/setcsp/internal/constraint"
)

// chooseVariable picks the next undetermined variable to branch on,
// per spec §4.5's variable heuristics, then applies the randomised
// tie-break budget (except for the RANDOM strategy itself, which
// always draws uniformly and never consults the budget).
func (e *Engine) chooseVariable(vars constraint.Vars) (string, bool) {
	undetermined := e.undeterminedNames(vars)
	if len(undetermined) == 0 {
		return "", false
	}

	if e.config.VariableStrategy == RandomVariable {
		return undetermined[e.rng.Intn(len(undetermined))], true
	}

	var ordered []string
	if e.config.VariableStrategy == CustomOrder {
		ordered = e.orderByCustom(undetermined)
	} else {
		ordered = e.orderByStrategy(undetermined, vars)
	}
	return e.pickWithBudget(ordered), true
}

// undeterminedNames returns variable names, in construction order, for
// every variable that is not yet fully determined.
func (e *Engine) undeterminedNames(vars constraint.Vars) []string {
	var out []string
	for _, name := range e.order {
		if v := vars[name]; v != nil && !v.Determined() {
			out = append(out, name)
		}
	}
	return out
}

// orderByStrategy sorts undetermined variable names best-first for
// the given deterministic strategy. Ties preserve construction order
// (sort.SliceStable).
func (e *Engine) orderByStrategy(names []string, vars constraint.Vars) []string {
	out := append([]string(nil), names...)
	switch e.config.VariableStrategy {
	case SmallestDomain:
		sort.SliceStable(out, func(i, j int) bool {
			return len(vars[out[i]].Undetermined()) < len(vars[out[j]].Undetermined())
		})
	case MostConstrained:
		sort.SliceStable(out, func(i, j int) bool {
			return e.degree[out[i]] > e.degree[out[j]]
		})
	case LeastConstrained:
		sort.SliceStable(out, func(i, j int) bool {
			return e.degree[out[i]] < e.degree[out[j]]
		})
	case First:
		// already in construction order.
	}
	return out
}

// orderByCustom places names found in Config.CustomOrder first, in
// that order, followed by any remaining undetermined names in
// construction order.
func (e *Engine) orderByCustom(names []string) []string {
	present := make(map[string]bool, len(names))
	for _, n := range names {
		present[n] = true
	}
	var out []string
	seen := make(map[string]bool, len(names))
	for _, n := range e.config.CustomOrder {
		if present[n] && !seen[n] {
			out = append(out, n)
			seen[n] = true
		}
	}
	for _, n := range names {
		if !seen[n] {
			out = append(out, n)
			seen[n] = true
		}
	}
	return out
}

// pickWithBudget implements spec §4.5's "randomised tie-breaks with a
// budget": the deterministic best choice is taken unless fewer than
// 10*restart_count random detours have been spent this restart, in
// which case RestartStrategy picks among (or beyond) the front of the
// ordered list.
func (e *Engine) pickWithBudget(ordered []string) string {
	if len(ordered) <= 1 || e.metrics.RandomChoices >= 10*e.metrics.RestartCount {
		return ordered[0]
	}
	e.metrics.RandomChoices++
	e.metrics.GlobalRandomChoices++

	switch e.config.RestartStrategy {
	case NextRestart:
		idx := e.metrics.RestartCount % (len(ordered) - 1)
		return ordered[idx+1]
	case RandomRestart:
		return ordered[e.rng.Intn(len(ordered))]
	case ConstrainedRandomRestart:
		lo := e.metrics.RestartCount
		if lo > len(ordered)-1 {
			lo = len(ordered) - 1
		}
		hi := e.metrics.RestartCount * 2
		if hi > len(ordered) {
			hi = len(ordered)
		}
		if hi <= lo {
			hi = lo + 1
		}
		window := ordered[lo:hi]
		return window[e.rng.Intn(len(window))]
	default:
		return ordered[0]
	}
}
