package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseProblem(t *testing.T) {
	doc := `{
		"candidates": ["A", "B", "C"],
		"costs": {"A": 2, "C": 5},
		"unavailable": [[], ["C"], ["A", "B"]],
		"columns": 3,
		"perSolutionTimeout": 7,
		"globalTimeout": 120
	}`
	p, cfg, err := parseProblem(doc)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, p.Candidates)
	require.Equal(t, map[string]int{"A": 2, "C": 5}, p.Costs)
	require.Equal(t, [][]string{nil, {"C"}, {"A", "B"}}, p.Unavailable)
	require.Equal(t, 3, p.Columns)
	require.Equal(t, 3, p.Days())
	require.Equal(t, 7*time.Second, cfg.PerSolutionTimeout)
	require.Equal(t, 120*time.Second, cfg.GlobalTimeout)
}

func TestParseProblemDefaults(t *testing.T) {
	doc := `{"candidates": ["A", "B"], "unavailable": [[]]}`
	p, cfg, err := parseProblem(doc)
	require.NoError(t, err)
	require.Equal(t, 2, p.Columns)
	require.Empty(t, p.Costs)
	require.Equal(t, DefaultConfig().PerSolutionTimeout, cfg.PerSolutionTimeout)
	require.Equal(t, DefaultConfig().GlobalTimeout, cfg.GlobalTimeout)
}

func TestParseProblemInvalidJSON(t *testing.T) {
	_, _, err := parseProblem(`{"candidates": [`)
	require.ErrorContains(t, err, "not valid JSON")
}

func TestLoadProblem(t *testing.T) {
	path := filepath.Join(t.TempDir(), "problem.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"candidates": ["A", "B"], "unavailable": [[], []], "columns": 1}`), 0o644))

	p, _, err := LoadProblem(path)
	require.NoError(t, err)
	require.Equal(t, 2, p.Days())
	require.Equal(t, 1, p.Columns)

	_, _, err = LoadProblem(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorContains(t, err, "read problem")
}
