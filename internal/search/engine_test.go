package search

import (
	"context"
	"testing"

	"github.com/gitrdm/setcsp/internal/constraint"
	"github.com/gitrdm/setcsp/internal/csperrors"
	"github.com/gitrdm/setcsp/internal/setvar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTwoVarProblem sets up X, Y ⊆ {1,2,3} with Subset(X,Y) and
// |X| = 2, leaving enough freedom that search must branch at least
// once but is small enough to solve exhaustively in a unit test.
func buildTwoVarProblem(t *testing.T) ([]string, map[string]*setvar.Variable, []constraint.Constraint) {
	t.Helper()
	uni := setvar.NewUniverse()
	x := setvar.NewVariable("X", setvar.EmptyBound(uni), setvar.NewBound(uni, []int{1, 2, 3}), 0, 3)
	y := setvar.NewVariable("Y", setvar.EmptyBound(uni), setvar.NewBound(uni, []int{1, 2, 3}), 0, 3)
	vars := map[string]*setvar.Variable{"X": x, "Y": y}
	cons := []constraint.Constraint{
		constraint.NewSubset("X", "Y", nil),
		constraint.NewCardinalityEq("X", 2, nil),
	}
	return []string{"X", "Y"}, vars, cons
}

func TestEngineSolveFindsOneSolution(t *testing.T) {
	order, vars, cons := buildTwoVarProblem(t)
	cfg := DefaultConfig()
	cfg.NumSolutions = 1
	e := New(order, vars, cons, cfg, nil, nil)

	sols, err := e.Solve(context.Background())
	require.NoError(t, err)
	require.Len(t, sols, 1)

	sol := sols[0]
	assert.Len(t, sol["X"], 2, "X must be a 2-element set")
	for _, x := range sol["X"] {
		assert.Contains(t, sol["Y"], x, "X ⊆ Y must hold in every solution")
	}
}

func TestEngineSolveAllSolutionsEnumeratesEveryAssignment(t *testing.T) {
	order, vars, cons := buildTwoVarProblem(t)
	cfg := DefaultConfig()
	cfg.NumSolutions = AllSolutions
	e := New(order, vars, cons, cfg, nil, nil)

	sols, err := e.Solve(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, sols)
	for _, sol := range sols {
		assert.Len(t, sol["X"], 2)
	}
}

func TestEngineSolveUnsatisfiable(t *testing.T) {
	uni := setvar.NewUniverse()
	x := setvar.NewVariable("X", setvar.EmptyBound(uni), setvar.NewBound(uni, []int{1, 2}), 0, 2)
	vars := map[string]*setvar.Variable{"X": x}
	cons := []constraint.Constraint{
		constraint.NewCardinalityEq("X", 5, nil),
	}
	e := New([]string{"X"}, vars, cons, DefaultConfig(), nil, nil)

	_, err := e.Solve(context.Background())
	assert.ErrorIs(t, err, csperrors.Unsatisfiable)
}

func TestEngineSolveHonoursCancelledContext(t *testing.T) {
	order, vars, cons := buildTwoVarProblem(t)
	e := New(order, vars, cons, DefaultConfig(), nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Solve(ctx)
	require.Error(t, err)
}

func TestEngineMetricsAndHistoryAreLive(t *testing.T) {
	order, vars, cons := buildTwoVarProblem(t)
	e := New(order, vars, cons, DefaultConfig(), nil, nil)

	_, err := e.Solve(context.Background())
	require.NoError(t, err)
	assert.Greater(t, e.Metrics().Branches, 0)
	assert.NotNil(t, e.History())
}
