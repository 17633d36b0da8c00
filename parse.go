package main

import (
	"fmt"
	"os"
	"time"

	"github.com/tidwall/gjson"
)

// LoadProblem reads a roster problem document from disk.
//
// Expected shape:
//
//	{
//	  "candidates": ["A", "B", "C"],
//	  "costs": {"A": 2},
//	  "unavailable": [[], ["C"], []],
//	  "columns": 2,
//	  "perSolutionTimeout": 30,
//	  "globalTimeout": 60
//	}
//
// The timeout fields are seconds and optional; absent fields fall back to
// DefaultConfig. "unavailable" has one entry per day to schedule.
func LoadProblem(path string) (*Problem, Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, Config{}, fmt.Errorf("read problem: %w", err)
	}
	return parseProblem(string(raw))
}

func parseProblem(doc string) (*Problem, Config, error) {
	if !gjson.Valid(doc) {
		return nil, Config{}, fmt.Errorf("problem document is not valid JSON")
	}

	p := &Problem{
		Columns: 2,
		Costs:   make(map[string]int),
	}
	for _, v := range gjson.Get(doc, "candidates").Array() {
		p.Candidates = append(p.Candidates, v.String())
	}
	gjson.Get(doc, "costs").ForEach(func(k, v gjson.Result) bool {
		p.Costs[k.String()] = int(v.Int())
		return true
	})
	gjson.Get(doc, "unavailable").ForEach(func(_, day gjson.Result) bool {
		var names []string
		day.ForEach(func(_, n gjson.Result) bool {
			names = append(names, n.String())
			return true
		})
		p.Unavailable = append(p.Unavailable, names)
		return true
	})
	if v := gjson.Get(doc, "columns"); v.Exists() {
		p.Columns = int(v.Int())
	}

	cfg := DefaultConfig()
	if v := gjson.Get(doc, "perSolutionTimeout"); v.Exists() {
		cfg.PerSolutionTimeout = time.Duration(v.Float() * float64(time.Second))
	}
	if v := gjson.Get(doc, "globalTimeout"); v.Exists() {
		cfg.GlobalTimeout = time.Duration(v.Float() * float64(time.Second))
	}
	return p, cfg, nil
}
