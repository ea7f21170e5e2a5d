package search

import (
	"sort"

	"github.com/gitrdm/setcsp/internal/constraint"
)

// chooseValues returns the candidate elements of vars[name] (upper \
// lower) in the trial order dictated by Config.ValueStrategy, per spec
// §4.5's value heuristics. The ADD branch is always tried before the
// REMOVE branch for each returned element (spec §4.5/§4 "binary
// branching"); this function only orders which element comes first.
func (e *Engine) chooseValues(name string, vars constraint.Vars) []int {
	candidates := vars[name].Undetermined()
	switch e.config.ValueStrategy {
	case RandomValue:
		out := append([]int(nil), candidates...)
		e.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
		return out
	case LowestFrequency:
		out := append([]int(nil), candidates...)
		sort.SliceStable(out, func(i, j int) bool {
			return e.metrics.ValueFrequency(name, out[i]) < e.metrics.ValueFrequency(name, out[j])
		})
		return out
	default: // Simple
		return candidates
	}
}
