package history

import "calorielog/internal/intake"

// Stats aggregates consumption across logged days.
type Stats struct {
	Days           int     `json:"days"`
	TotalCalories  int     `json:"total_calories"`
	AvgCalories    float64 `json:"avg_calories"`
	MedianCalories int     `json:"median_calories"`
	Target         int     `json:"target"`
	DaysOverTarget int     `json:"days_over_target"`
}

// Overview is the history response: one summary per logged day plus stats.
type Overview struct {
	Days  []intake.DailySummary `json:"days"`
	Stats Stats                 `json:"stats"`
}
