package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"runtime"
	"slices"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// ── Scheduler ───────────────────────────────────────────────────────

// Scheduler runs time-bounded randomized restarts of the backtracking
// solver and keeps every solution that matches or improves on the best
// cost seen so far in the run.
type Scheduler struct {
	problem *Problem
	cfg     Config

	order       []int
	unavailable []map[string]bool

	mu        sync.Mutex
	best      int
	solutions []Solution

	attempts     atomic.Int64
	enlargements atomic.Int64
}

// NewScheduler validates the problem and derives the day search order.
func NewScheduler(p *Problem, cfg Config) (*Scheduler, error) {
	if len(p.Candidates) == 0 {
		return nil, fmt.Errorf("no candidates to schedule")
	}
	if p.Days() == 0 {
		return nil, fmt.Errorf("no days to schedule")
	}
	if p.Columns < 1 {
		return nil, fmt.Errorf("columns must be at least 1, got %d", p.Columns)
	}
	if cfg.PerSolutionTimeout <= 0 {
		return nil, fmt.Errorf("per-solution timeout must be positive, got %v", cfg.PerSolutionTimeout)
	}
	if cfg.GlobalTimeout <= 0 {
		return nil, fmt.Errorf("global timeout must be positive, got %v", cfg.GlobalTimeout)
	}

	s := &Scheduler{
		problem: p,
		cfg:     cfg,
		order:   determineSearchOrder(p.Unavailable),
		best:    math.MaxInt,
	}
	s.unavailable = make([]map[string]bool, p.Days())
	for day, names := range p.Unavailable {
		set := make(map[string]bool, len(names))
		for _, n := range names {
			set[n] = true
		}
		s.unavailable[day] = set
	}
	return s, nil
}

// Run searches until the global deadline and returns the retained
// solutions sorted ascending by cost, along with the elapsed time.
func (s *Scheduler) Run() ([]Solution, time.Duration) {
	start := time.Now()
	globalDeadline := start.Add(s.cfg.GlobalTimeout)

	workers := s.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	seed := s.cfg.Seed
	if seed == 0 {
		seed = start.UnixNano()
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			s.runWorker(rand.New(rand.NewSource(seed+int64(w))), globalDeadline)
		}(w)
	}
	wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	// Stable: equal costs keep their discovery order.
	sort.SliceStable(s.solutions, func(i, j int) bool {
		return s.solutions[i].Cost < s.solutions[j].Cost
	})
	return s.solutions, time.Since(start)
}

// Attempts reports how many solver attempts were started.
func (s *Scheduler) Attempts() int64 { return s.attempts.Load() }

// Enlargements reports how many times a worker grew its candidate multiset.
func (s *Scheduler) Enlargements() int64 { return s.enlargements.Load() }

// runWorker is the outer restart loop: each iteration finds one solution
// (enlarging the pool as needed) and offers it for retention. The pool
// keeps any growth for later iterations, so a problem that needs candidate
// reuse does not rediscover that on every restart.
func (s *Scheduler) runWorker(rng *rand.Rand, globalDeadline time.Time) {
	pool := slices.Clone(s.problem.Candidates)
	for time.Now().Before(globalDeadline) {
		grid, ok := s.findSolution(&pool, rng, globalDeadline)
		if !ok {
			return
		}
		cost := evaluateSolution(grid, s.problem.Candidates, s.problem.Costs)
		s.offer(grid, cost)
	}
}

// findSolution is the inner loop: shuffle the working multiset, run one
// deadline-bounded attempt, and on failure append another full copy of
// the original candidate list. The global deadline is polled on every
// iteration so enlargement stays bounded; reports false once it passes
// without a solution.
func (s *Scheduler) findSolution(pool *[]string, rng *rand.Rand, globalDeadline time.Time) (Grid, bool) {
	for {
		if !time.Now().Before(globalDeadline) {
			return nil, false
		}

		rng.Shuffle(len(*pool), func(i, j int) {
			(*pool)[i], (*pool)[j] = (*pool)[j], (*pool)[i]
		})

		s.attempts.Add(1)
		a := newAttempt(s.problem, s.order, s.unavailable,
			slices.Clone(*pool), time.Now().Add(s.cfg.PerSolutionTimeout))
		if a.solve(0, 0) {
			return a.grid, true
		}

		*pool = append(*pool, s.problem.Candidates...)
		s.enlargements.Add(1)
		if s.cfg.Verbose {
			fmt.Fprintf(os.Stderr, "[enlarge] pool grown to %d\n", len(*pool))
		}
	}
}

// offer retains the grid if its cost matches or beats the best cost seen
// so far. The watermark check and the append happen under one lock so
// parallel workers preserve the non-worsening retention order.
func (s *Scheduler) offer(grid Grid, cost int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cost > s.best {
		return
	}
	s.best = cost
	s.solutions = append(s.solutions, Solution{Grid: grid, Cost: cost})
	if s.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[keep] cost=%d kept=%d\n", cost, len(s.solutions))
	}
}
