package http

import (
	"time"

	"studypal/internal/stats"
	pkgErrors "studypal/pkg/errors"
	"studypal/pkg/response"
)

// --- Request DTOs ---

type overviewReq struct {
	AsOf  string `form:"as_of"`
	Limit *int   `form:"limit"`

	asOf time.Time
}

func (r overviewReq) validate() error {
	if r.Limit != nil && (*r.Limit < 1 || *r.Limit > stats.MaxUpcomingLimit) {
		return pkgErrors.NewHTTPErrorf(400, "limit must be between 1 and %d", stats.MaxUpcomingLimit)
	}
	return nil
}

func (r overviewReq) toInput() stats.OverviewInput {
	in := stats.OverviewInput{AsOf: r.asOf}
	if r.Limit != nil {
		in.UpcomingLimit = *r.Limit
	}
	return in
}

// --- Response DTOs ---

type totalsResp struct {
	TotalTasks     int     `json:"totalTasks"`
	CompletedTasks int     `json:"completedTasks"`
	PendingTasks   int     `json:"pendingTasks"`
	OverdueTasks   int     `json:"overdueTasks"`
	FocusHours     float64 `json:"focusHours"`
}

type dayBucketResp struct {
	Date         response.DateTime `json:"date"`
	Label        string            `json:"label"`
	Completed    int               `json:"completed"`
	Planned      int               `json:"planned"`
	StudyMinutes int               `json:"studyMinutes"`
}

type streakResp struct {
	Current       int                   `json:"current"`
	Longest       int                   `json:"longest"`
	LastMissedDay response.NullDateTime `json:"lastMissedDay"`
}

type upcomingTaskResp struct {
	ID             string                `json:"id"`
	Title          string                `json:"title"`
	Course         string                `json:"course"`
	DueDate        response.NullDateTime `json:"dueDate"`
	Priority       string                `json:"priority"`
	Status         string                `json:"status"`
	EstimatedHours float64               `json:"estimatedHours"`
	Overdue        bool                  `json:"overdue"`
}

type gamificationResp struct {
	XP              int      `json:"xp"`
	Level           int      `json:"level"`
	XPPerCompletion int      `json:"xpPerCompletion"`
	XPPerLevel      int      `json:"xpPerLevel"`
	XPIntoLevel     int      `json:"xpIntoLevel"`
	XPToNextLevel   int      `json:"xpToNextLevel"`
	ProgressPercent int      `json:"progressPercent"`
	Achievements    []string `json:"achievements"`
}

type overviewResp struct {
	Totals               totalsResp         `json:"totals"`
	CompletionRate       float64            `json:"completionRate"`
	WeeklyCompletionRate float64            `json:"weeklyCompletionRate"`
	WeeklyFocusMinutes   int                `json:"weeklyFocusMinutes"`
	WeeklyProgress       []dayBucketResp    `json:"weeklyProgress"`
	StreakDays           int                `json:"streakDays"`
	Streak               streakResp         `json:"streak"`
	UpcomingTasks        []upcomingTaskResp `json:"upcomingTasks"`
	Gamification         gamificationResp   `json:"gamification"`
}

// NewOverviewResp renders an overview in its public JSON shape. The CLI shares it.
func NewOverviewResp(out stats.Overview) overviewResp {
	week := make([]dayBucketResp, len(out.WeeklyProgress))
	for i, b := range out.WeeklyProgress {
		week[i] = dayBucketResp{
			Date:         response.DateTime(b.Date),
			Label:        b.Label,
			Completed:    b.Completed,
			Planned:      b.Planned,
			StudyMinutes: b.StudyMinutes,
		}
	}

	upcoming := make([]upcomingTaskResp, len(out.UpcomingTasks))
	for i, t := range out.UpcomingTasks {
		upcoming[i] = upcomingTaskResp{
			ID:             t.ID,
			Title:          t.Title,
			Course:         t.Course,
			DueDate:        response.NewNullDateTime(t.DueDate),
			Priority:       string(t.Priority),
			Status:         string(t.Status),
			EstimatedHours: t.EstimatedHours,
			Overdue:        t.Overdue,
		}
	}

	g := out.Gamification
	return overviewResp{
		Totals: totalsResp{
			TotalTasks:     out.Totals.TotalTasks,
			CompletedTasks: out.Totals.CompletedTasks,
			PendingTasks:   out.Totals.PendingTasks,
			OverdueTasks:   out.Totals.OverdueTasks,
			FocusHours:     out.Totals.FocusHours,
		},
		CompletionRate:       out.CompletionRate,
		WeeklyCompletionRate: out.WeeklyCompletionRate,
		WeeklyFocusMinutes:   out.WeeklyFocusMinutes,
		WeeklyProgress:       week,
		StreakDays:           out.StreakDays,
		Streak: streakResp{
			Current:       out.Streak.Current,
			Longest:       out.Streak.Longest,
			LastMissedDay: response.NewNullDateTime(out.Streak.LastMissedDay),
		},
		UpcomingTasks: upcoming,
		Gamification: gamificationResp{
			XP:              g.XP,
			Level:           g.Level,
			XPPerCompletion: g.XPPerCompletion,
			XPPerLevel:      g.XPPerLevel,
			XPIntoLevel:     g.XPIntoLevel,
			XPToNextLevel:   g.XPToNextLevel,
			ProgressPercent: g.ProgressPercent,
			Achievements:    g.Achievements,
		},
	}
}
