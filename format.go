package main

import (
	"fmt"
	"strings"
)

// FormatGrid renders one schedule as a per-day, per-column listing.
func FormatGrid(grid Grid) string {
	var b strings.Builder
	for day, row := range grid {
		fmt.Fprintf(&b, "Day %2d: %s\n", day+1, strings.Join(row, ", "))
	}
	return b.String()
}

// FormatReport renders the top solutions with their costs, best first.
func FormatReport(sols []Solution, top int) string {
	var b strings.Builder
	for i, sol := range topSolutions(sols, top) {
		fmt.Fprintf(&b, "#%d  cost=%d\n", i+1, sol.Cost)
		b.WriteString(FormatGrid(sol.Grid))
		b.WriteByte('\n')
	}
	return b.String()
}

// topSolutions returns at most n solutions from the front of the sorted set.
func topSolutions(sols []Solution, n int) []Solution {
	if n > 0 && len(sols) > n {
		return sols[:n]
	}
	return sols
}
