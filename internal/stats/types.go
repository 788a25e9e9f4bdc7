package stats

import "time"

// --- Snapshot ---

// TaskSnapshot is a normalized, read-only view of one stored task.
type TaskSnapshot struct {
	ID             string
	Title          string
	Course         string
	Priority       TaskPriority
	Status         TaskStatus
	DueDate        *time.Time // nil means no deadline
	EstimatedHours float64
	CompletedAt    *time.Time // nil when unknown or not completed
}

// IsCompleted reports whether the task is in the terminal status.
func (t TaskSnapshot) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}

// --- Derived ---

// DayBucket aggregates one calendar day of the trailing window.
type DayBucket struct {
	Date         time.Time // midnight in the configured timezone
	Label        string    // Mon, Tue, ...
	Completed    int
	Planned      int
	StudyMinutes int
}

// StreakState holds streak figures over the weekly window.
type StreakState struct {
	Current       int
	Longest       int
	LastMissedDay *time.Time
}

// Totals holds aggregate task counts.
type Totals struct {
	TotalTasks     int
	CompletedTasks int
	PendingTasks   int
	OverdueTasks   int
	FocusHours     float64
}

// UpcomingTask is a non-completed task with a deadline.
type UpcomingTask struct {
	TaskSnapshot
	Overdue bool
}

// GamificationState is the XP and achievement model.
type GamificationState struct {
	XP              int
	Level           int
	XPPerCompletion int
	XPPerLevel      int
	XPIntoLevel     int
	XPToNextLevel   int
	ProgressPercent int
	Achievements    []string
}

// --- UseCase Input/Output ---

// OverviewInput parameterizes an overview computation.
type OverviewInput struct {
	// AsOf is the reference instant; zero means now.
	AsOf time.Time
	// UpcomingLimit caps UpcomingTasks; zero means DefaultUpcomingLimit.
	UpcomingLimit int
}

// Overview is the composite analytics result.
type Overview struct {
	Totals               Totals
	CompletionRate       float64
	WeeklyCompletionRate float64
	WeeklyFocusMinutes   int
	WeeklyProgress       []DayBucket
	StreakDays           int
	Streak               StreakState
	UpcomingTasks        []UpcomingTask
	Gamification         GamificationState
}
