package main

import (
	"slices"
	"time"
)

// ── Search order ────────────────────────────────────────────────────

// determineSearchOrder returns the day visitation order, most constrained
// first: days sorted by descending unavailability count, ties keeping
// their original day order. Visiting tight days near the root prunes
// infeasible branches before much depth is wasted on them.
func determineSearchOrder(unavailable [][]string) []int {
	order := make([]int, len(unavailable))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return len(unavailable[b]) - len(unavailable[a])
	})
	return order
}

// ── Backtracking attempt ────────────────────────────────────────────

// attempt is the working state of one backtracking attempt. The grid and
// pool are mutated in place with explicit undo on failure (place, recurse,
// clear the cell and restore the pool slot) instead of being copied at
// every recursion step.
type attempt struct {
	columns     int
	unavailable []map[string]bool
	order       []int
	pool        []string
	grid        Grid
	deadline    time.Time
}

func newAttempt(p *Problem, order []int, unavailable []map[string]bool, pool []string, deadline time.Time) *attempt {
	grid := make(Grid, p.Days())
	for d := range grid {
		grid[d] = make([]string, p.Columns)
	}
	return &attempt{
		columns:     p.Columns,
		unavailable: unavailable,
		order:       order,
		pool:        pool,
		grid:        grid,
		deadline:    deadline,
	}
}

// solve fills the cell at (order[pos], col) and everything after it in
// traversal order. Success is detected one step past the last day, once
// every preceding cell has been placed. Reports whether the grid was
// completed; an exhausted search and an expired deadline are
// indistinguishable to the caller.
func (a *attempt) solve(pos, col int) bool {
	// Not enough pool mass left for the days still needing assignment.
	if len(a.pool) < len(a.order)-pos {
		return false
	}
	if time.Now().After(a.deadline) {
		return false
	}
	if pos == len(a.order) {
		return true
	}

	day := a.order[pos]
	for i := 0; i < len(a.pool); i++ {
		c := a.pool[i]
		if a.unavailable[day][c] {
			continue
		}
		// No candidate twice in the same day.
		if slices.Contains(a.grid[day][:col], c) {
			continue
		}

		a.pool = slices.Delete(a.pool, i, i+1)
		a.grid[day][col] = c

		var ok bool
		if col < a.columns-1 {
			ok = a.solve(pos, col+1)
		} else {
			ok = a.solve(pos+1, 0)
		}
		if ok {
			// First success wins; the restart controller's shuffling
			// supplies the diversity between runs.
			return true
		}

		a.grid[day][col] = ""
		a.pool = slices.Insert(a.pool, i, c)
	}
	return false
}
