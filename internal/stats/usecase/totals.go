package usecase

import (
	"math"
	"time"

	"studypal/internal/stats"
)

// computeTotals counts tasks relative to today (start of day).
func computeTotals(tasks []stats.TaskSnapshot, today time.Time) stats.Totals {
	var totals stats.Totals
	var hours float64

	for _, t := range tasks {
		totals.TotalTasks++
		hours += t.EstimatedHours
		if t.IsCompleted() {
			totals.CompletedTasks++
			continue
		}
		if t.DueDate != nil && t.DueDate.Before(today) {
			totals.OverdueTasks++
		}
	}

	totals.PendingTasks = totals.TotalTasks - totals.CompletedTasks
	totals.FocusHours = round1(hours)
	return totals
}

// percentage returns value/total as a percent with one decimal, 0 when total is 0.
// The result is clamped to [0, 100].
func percentage(value, total int) float64 {
	if total <= 0 || value <= 0 {
		return 0
	}
	return math.Min(round1(float64(value)/float64(total)*100), 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
