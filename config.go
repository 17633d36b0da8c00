package main

import "time"

// Config holds the search tuning parameters. Adjust these to trade run
// time for schedule quality.
type Config struct {
	// PerSolutionTimeout is the budget for a single backtracking attempt.
	// An attempt that exceeds it is abandoned and retried with a larger
	// candidate multiset.
	PerSolutionTimeout time.Duration
	// GlobalTimeout is the total wall-clock budget for the whole run.
	GlobalTimeout time.Duration
	// Workers is the number of parallel attempt loops (0 = GOMAXPROCS).
	Workers int
	// Seed seeds the shuffle RNG (0 = time-based). With Workers=1 a fixed
	// seed makes the attempt sequence reproducible.
	Seed int64
	// Verbose prints search progress to stderr.
	Verbose bool
}

// DefaultConfig returns the recommended search parameters.
func DefaultConfig() Config {
	return Config{
		PerSolutionTimeout: 30 * time.Second,
		GlobalTimeout:      60 * time.Second,
	}
}
