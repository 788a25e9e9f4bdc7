package usecase

import (
	"context"
	"time"

	"studypal/internal/model"
	"studypal/internal/stats"
	"studypal/pkg/datemath"
)

// Overview computes the analytics overview for the scoped user.
func (uc *implUseCase) Overview(ctx context.Context, sc model.Scope, input stats.OverviewInput) (stats.Overview, error) {
	if sc.IsZero() {
		return stats.Overview{}, stats.ErrMissingUser
	}

	limit := input.UpcomingLimit
	if limit == 0 {
		limit = uc.upcomingLimit
	}
	if limit < 0 || limit > stats.MaxUpcomingLimit {
		return stats.Overview{}, stats.ErrInvalidLimit
	}

	asOf := input.AsOf
	if asOf.IsZero() {
		asOf = uc.now()
	}

	tasks, err := uc.fetchSnapshots(ctx, sc.UserID)
	if err != nil {
		return stats.Overview{}, err
	}

	return assembleOverview(tasks, uc.dates.StartOfDay(asOf), limit, uc.dates), nil
}

// assembleOverview runs every aggregation over one immutable snapshot.
func assembleOverview(tasks []stats.TaskSnapshot, today time.Time, limit int, dates *datemath.Parser) stats.Overview {
	buckets := buildBuckets(tasks, today, dates)
	streak := computeStreak(buckets)
	totals := computeTotals(tasks, today)
	weeklyCompleted, weeklyPlanned, weeklyMinutes := weeklySums(buckets)

	return stats.Overview{
		Totals:               totals,
		CompletionRate:       percentage(totals.CompletedTasks, totals.TotalTasks),
		WeeklyCompletionRate: percentage(weeklyCompleted, weeklyPlanned),
		WeeklyFocusMinutes:   weeklyMinutes,
		WeeklyProgress:       buckets,
		StreakDays:           streak.Current,
		Streak:               streak,
		UpcomingTasks:        selectUpcoming(tasks, today, limit),
		Gamification:         computeGamification(totals.CompletedTasks, weeklyCompleted, streak),
	}
}
