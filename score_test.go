package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateEmptyGrid(t *testing.T) {
	require.Equal(t, 0, evaluateSolution(Grid{}, []string{"A"}, nil))
	require.Equal(t, 0, evaluateSolution(Grid{{"", ""}}, []string{"A"}, nil))
}

func TestEvaluateSingleAppearanceIsFree(t *testing.T) {
	grid := Grid{{"A", "B"}}
	require.Equal(t, 0, evaluateSolution(grid, []string{"A", "B"}, nil))
}

func TestEvaluateExponentialPenalty(t *testing.T) {
	// Two non-adjacent appearances cost exactly 2^2.
	grid := Grid{{"A"}, {"B"}, {"A"}}
	require.Equal(t, 4, evaluateSolution(grid, []string{"A", "B"}, nil))

	// Three non-adjacent appearances cost exactly 2^3.
	grid = Grid{{"A"}, {"B"}, {"A"}, {"B"}, {"A"}}
	require.Equal(t, 8+4, evaluateSolution(grid, []string{"A", "B"}, nil))
	require.Equal(t, 8, evaluateSolution(grid, []string{"A"}, nil))
}

func TestEvaluateAdjacencyPenalty(t *testing.T) {
	// Adjacent pair: 2^2 + 50.
	grid := Grid{{"A"}, {"A"}}
	require.Equal(t, 54, evaluateSolution(grid, []string{"A"}, nil))

	// Days {0,1,2}: 2^3 plus 50 for each of the ordered pairs (0,1) and
	// (1,2). The scan covers every ordered pair, so a run of three days
	// fires twice, not once.
	grid = Grid{{"A"}, {"A"}, {"A"}}
	require.Equal(t, 8+100, evaluateSolution(grid, []string{"A"}, nil))
}

func TestEvaluateSurcharge(t *testing.T) {
	costs := map[string]int{"A": 7}

	// Surcharge applies even to a single appearance.
	require.Equal(t, 7, evaluateSolution(Grid{{"A"}}, []string{"A"}, costs))

	// Twice, non-adjacent: 2^2 + 7*2.
	grid := Grid{{"A"}, {"B"}, {"A"}}
	require.Equal(t, 4+14, evaluateSolution(grid, []string{"A", "B"}, costs))

	// Zero appearances contribute nothing, surcharge or not.
	require.Equal(t, 0, evaluateSolution(Grid{{"B"}}, []string{"A", "B"}, costs))
}

func TestEvaluateDeterminism(t *testing.T) {
	grid := Grid{{"A", "B"}, {"A", "C"}, {"C", "B"}}
	candidates := []string{"A", "B", "C"}
	costs := map[string]int{"B": 3}
	first := evaluateSolution(grid, candidates, costs)
	require.Equal(t, first, evaluateSolution(grid, candidates, costs))
}

func TestEvaluateIgnoresUnknownNames(t *testing.T) {
	// Only candidates from the original list are scored.
	grid := Grid{{"X"}, {"X"}}
	require.Equal(t, 0, evaluateSolution(grid, []string{"A"}, nil))
}
