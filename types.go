package main

// Grid is the full days × columns assignment. Rows are days in
// chronological storage order, independent of the order the solver visits
// them in. An empty string marks an unfilled cell.
type Grid [][]string

// Problem is the immutable input set for one run: who can be scheduled,
// what each placement of them costs, and who is unavailable on which day.
type Problem struct {
	// Candidates is the ordered list of distinct schedulable identifiers.
	// It is also the unit of pool enlargement: whenever an attempt cannot
	// fill the grid, another full copy is appended to the working multiset.
	Candidates []string
	// Costs maps a candidate to a surcharge applied per placement.
	// Absent candidates have surcharge 0.
	Costs map[string]int
	// Unavailable lists, per day, the candidates that must not be placed
	// on that day. Its length defines the number of days to schedule.
	Unavailable [][]string
	// Columns is the number of parallel slots within a single day.
	Columns int
}

// Days returns the number of days to schedule.
func (p *Problem) Days() int { return len(p.Unavailable) }

// Solution pairs a completed grid with its evaluated cost. Lower is better.
type Solution struct {
	Grid Grid `json:"grid"`
	Cost int  `json:"cost"`
}

// RunResult summarizes one full search run for CLI/Lambda output.
type RunResult struct {
	RunID        string `json:"runId"`
	Found        bool   `json:"found"`
	Solutions    int    `json:"solutions"`
	BestCost     int    `json:"bestCost"`
	Attempts     int64  `json:"attempts"`
	Enlargements int64  `json:"enlargements"`
	TimeMs       int64  `json:"timeMs"`
}
