package usecase

import (
	"math"
	"time"

	"studypal/internal/stats"
	"studypal/pkg/datemath"
)

// buildBuckets returns stats.WindowDays contiguous day buckets ending at today,
// oldest first.
func buildBuckets(tasks []stats.TaskSnapshot, today time.Time, dates *datemath.Parser) []stats.DayBucket {
	buckets := make([]stats.DayBucket, stats.WindowDays)
	index := make(map[string]int, stats.WindowDays)
	for i := range buckets {
		day := dates.AddDays(today, i-(stats.WindowDays-1))
		buckets[i] = stats.DayBucket{
			Date:  day,
			Label: day.Weekday().String()[:3],
		}
		index[dates.DayKey(day)] = i
	}

	for _, t := range tasks {
		if t.CompletedAt != nil {
			if i, ok := index[dates.DayKey(*t.CompletedAt)]; ok {
				buckets[i].Completed++
				buckets[i].StudyMinutes += int(math.Round(t.EstimatedHours * 60))
			}
		}
		if t.DueDate != nil {
			if i, ok := index[dates.DayKey(*t.DueDate)]; ok {
				buckets[i].Planned++
			}
		}
	}

	return buckets
}

// weeklySums returns the completed, planned and study-minute totals of buckets.
func weeklySums(buckets []stats.DayBucket) (completed, planned, minutes int) {
	for _, b := range buckets {
		completed += b.Completed
		planned += b.Planned
		minutes += b.StudyMinutes
	}
	return completed, planned, minutes
}
