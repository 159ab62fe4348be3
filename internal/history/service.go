package history

import (
	"sort"
	"time"

	"calorielog/internal/intake"
)

// Summaries returns one DailySummary per distinct stored date,
// oldest day first. Dates that do not parse sort after the rest.
func Summaries(entries []intake.FoodEntry) []intake.DailySummary {
	seen := make(map[string]bool)
	var dates []string
	for _, e := range entries {
		if !seen[e.Date] {
			seen[e.Date] = true
			dates = append(dates, e.Date)
		}
	}

	sort.SliceStable(dates, func(i, j int) bool {
		return dateLess(dates[i], dates[j])
	})

	out := make([]intake.DailySummary, 0, len(dates))
	for _, d := range dates {
		out = append(out, intake.Summarize(entries, d))
	}
	return out
}

// Compute aggregates the summaries. Days over target are only counted
// when target is positive.
func Compute(summaries []intake.DailySummary, target int) Stats {
	stats := Stats{Target: target}
	if len(summaries) == 0 {
		return stats
	}

	values := make([]int, 0, len(summaries))
	for _, s := range summaries {
		values = append(values, s.ConsumedCalories)
		stats.TotalCalories += s.ConsumedCalories
		if target > 0 && s.ConsumedCalories > target {
			stats.DaysOverTarget++
		}
	}

	sort.Ints(values)

	stats.Days = len(values)
	stats.MedianCalories = values[len(values)/2]
	stats.AvgCalories = float64(stats.TotalCalories) / float64(len(values))
	return stats
}

func dateLess(a, b string) bool {
	ta, errA := time.Parse(intake.DateLayout, a)
	tb, errB := time.Parse(intake.DateLayout, b)
	switch {
	case errA == nil && errB == nil:
		return ta.Before(tb)
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}
