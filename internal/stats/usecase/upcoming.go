package usecase

import (
	"slices"
	"time"

	"studypal/internal/stats"
)

// selectUpcoming returns at most limit non-completed tasks that have a due date,
// earliest first. Equal due dates keep their input order.
func selectUpcoming(tasks []stats.TaskSnapshot, today time.Time, limit int) []stats.UpcomingTask {
	upcoming := make([]stats.UpcomingTask, 0, len(tasks))
	for _, t := range tasks {
		if t.IsCompleted() || t.DueDate == nil {
			continue
		}
		upcoming = append(upcoming, stats.UpcomingTask{
			TaskSnapshot: t,
			Overdue:      t.DueDate.Before(today),
		})
	}

	slices.SortStableFunc(upcoming, func(a, b stats.UpcomingTask) int {
		return a.DueDate.Compare(*b.DueDate)
	})

	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}
