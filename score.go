package main

// evaluateSolution scores a completed grid against the original candidate
// list and the per-candidate surcharges. Lower is better; an empty grid
// scores 0.
//
// Per candidate: appearing n > 1 times anywhere in the grid costs 2^n,
// every ordered pair of appearance days exactly one day apart costs 50,
// and a cost-table surcharge applies once per appearance. The pair scan
// deliberately covers all ordered pairs including the self pair (distance
// 0, never fires), so a candidate on days {3,4,5} is charged for both
// (3,4) and (4,5).
func evaluateSolution(grid Grid, candidates []string, costs map[string]int) int {
	cost := 0
	for _, cand := range candidates {
		var days []int
		for day, row := range grid {
			for _, cell := range row {
				if cell == cand {
					days = append(days, day)
				}
			}
		}

		if len(days) > 1 {
			cost += 1 << len(days)
			for _, a1 := range days {
				for _, a2 := range days {
					if a2-a1 == 1 {
						cost += 50
					}
				}
			}
		}

		if surcharge, ok := costs[cand]; ok {
			cost += surcharge * len(days)
		}
	}
	return cost
}
