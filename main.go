//go:build !lambda

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/ttacon/chalk"
)

var green = chalk.Green.NewStyle().WithTextStyle(chalk.Bold).Style
var red = chalk.Red.NewStyle().WithTextStyle(chalk.Bold).Style

const usage = `Usage: roster-optimizer [flags] <problem.json>

Positional arguments:
  problem.json    Path to the roster problem document

Flags:
`

func main() {
	jsonOut := flag.Bool("json", false, "Output results as JSON")
	verbose := flag.Bool("verbose", false, "Print search progress to stderr")
	top := flag.Int("top", 5, "Number of best schedules to print")
	seed := flag.Int64("seed", 0, "Shuffle seed (0 = time-based)")
	workers := flag.Int("workers", 0, "Parallel search workers (0 = GOMAXPROCS)")
	perTimeout := flag.Duration("per-timeout", 0, "Per-attempt budget (overrides problem document)")
	globalTimeout := flag.Duration("global-timeout", 0, "Total search budget (overrides problem document)")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	problem, cfg, err := LoadProblem(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	cfg.Verbose = *verbose
	cfg.Seed = *seed
	cfg.Workers = *workers
	if *perTimeout > 0 {
		cfg.PerSolutionTimeout = *perTimeout
	}
	if *globalTimeout > 0 {
		cfg.GlobalTimeout = *globalTimeout
	}

	sched, err := NewScheduler(problem, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "[init] candidates=%d days=%d columns=%d budget=%v\n",
		len(problem.Candidates), problem.Days(), problem.Columns, cfg.GlobalTimeout)

	sols, elapsed := sched.Run()

	res := RunResult{
		RunID:        uuid.NewString(),
		Found:        len(sols) > 0,
		Solutions:    len(sols),
		Attempts:     sched.Attempts(),
		Enlargements: sched.Enlargements(),
		TimeMs:       elapsed.Milliseconds(),
	}
	if res.Found {
		res.BestCost = sols[0].Cost
	}
	fmt.Fprintf(os.Stderr, "[done] attempts=%d enlargements=%d kept=%d elapsed=%v\n",
		res.Attempts, res.Enlargements, res.Solutions, elapsed)

	if *jsonOut {
		out := struct {
			RunResult
			Schedules []Solution `json:"schedules"`
		}{res, topSolutions(sols, *top)}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(out)
		return
	}

	if !res.Found {
		fmt.Println(red("no schedule found within the time budget"))
		os.Exit(1)
	}
	fmt.Println(green(fmt.Sprintf("found %d schedule(s), best cost %d in %.1fs",
		res.Solutions, res.BestCost, float64(res.TimeMs)/1000)))
	fmt.Println()
	fmt.Print(FormatReport(sols, *top))
}
