package setcsp

import (
	"context"
	"testing"

	"github.com/gitrdm/setcsp/internal/search"
)

func TestWithVisualizerPanicsOnNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected WithVisualizer(nil) to panic")
		}
	}()
	WithVisualizer(nil)
}

func TestSolveOptionsConfigureTheUnderlyingSearch(t *testing.T) {
	p := New()
	must(t, p.AddVariable("X", nil, []int{1, 2, 3}, 0, 3))
	must(t, p.AddVariable("Y", nil, []int{1, 2, 3}, 0, 3))
	must(t, p.AddSubset("X", "Y"))

	result, err := p.Solve(
		context.Background(),
		WithVariableStrategy(search.First),
		WithValueStrategy(search.Simple),
		WithRestartStrategy(search.NextRestart),
		WithSeed(123),
		WithNumSolutions(1),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Solutions) != 1 {
		t.Fatalf("expected exactly 1 solution, got %d", len(result.Solutions))
	}
}

func TestWithCustomOrderPairsWithCustomOrderStrategy(t *testing.T) {
	p := New()
	must(t, p.AddVariable("A", nil, []int{1, 2}, 0, 2))
	must(t, p.AddVariable("B", nil, []int{1, 2}, 0, 2))

	_, err := p.Solve(
		context.Background(),
		WithVariableStrategy(search.CustomOrder),
		WithCustomOrder("B", "A"),
		WithAllSolutions(),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
