package usecase

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"studypal/internal/stats"
	repo "studypal/internal/stats/repository"
	"studypal/pkg/datemath"
)

// fetchSnapshots reads the user's tasks and completion history and resolves
// one TaskSnapshot per task. Any store failure aborts the whole read.
func (uc *implUseCase) fetchSnapshots(ctx context.Context, userID string) ([]stats.TaskSnapshot, error) {
	rows, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{UserID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Overview ListTasks: %v", err)
		return nil, fmt.Errorf("%w: %w", stats.ErrDataUnavailable, err)
	}

	events, err := uc.repo.ListCompletionEvents(ctx, repo.ListCompletionEventsOptions{UserID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Overview ListCompletionEvents: %v", err)
		return nil, fmt.Errorf("%w: %w", stats.ErrDataUnavailable, err)
	}

	snapshots, issues := buildSnapshots(rows, events, uc.dates)
	for _, issue := range issues {
		uc.l.Debugf(ctx, "uc.Overview normalize: %s", issue)
	}
	return snapshots, nil
}

// buildSnapshots normalizes raw rows. Malformed fields are replaced by safe
// defaults and reported as issues; they never fail the batch. Zone-less
// timestamps are read in the dates timezone.
func buildSnapshots(rows []repo.TaskRow, events []repo.StatusEvent, dates *datemath.Parser) ([]stats.TaskSnapshot, []string) {
	latest, issues := latestCompletions(events, dates)

	snapshots := make([]stats.TaskSnapshot, 0, len(rows))
	for _, row := range rows {
		s, rowIssues := normalizeTask(row, latest, dates)
		snapshots = append(snapshots, s)
		issues = append(issues, rowIssues...)
	}
	return snapshots, issues
}

// latestCompletions maps task id to its most recent transition into completed.
func latestCompletions(events []repo.StatusEvent, dates *datemath.Parser) (map[string]time.Time, []string) {
	latest := make(map[string]time.Time)
	var issues []string
	for _, e := range events {
		if normalizeStatus(e.ToStatus) != stats.TaskStatusCompleted {
			continue
		}
		at, ok := dates.ParseTimestamp(e.ChangedAt)
		if !ok {
			issues = append(issues, fmt.Sprintf("task %s: unparseable history timestamp %q", e.TaskID, e.ChangedAt))
			continue
		}
		if prev, seen := latest[e.TaskID]; !seen || at.After(prev) {
			latest[e.TaskID] = at
		}
	}
	return latest, issues
}

func normalizeTask(row repo.TaskRow, latest map[string]time.Time, dates *datemath.Parser) (stats.TaskSnapshot, []string) {
	var issues []string

	s := stats.TaskSnapshot{
		ID:       row.ID,
		Title:    row.Title,
		Course:   row.Course,
		Priority: normalizePriority(row.Priority),
		Status:   normalizeStatus(row.Status),
	}

	hours, ok := parseHours(row.EstimatedHours)
	if !ok {
		issues = append(issues, fmt.Sprintf("task %s: invalid estimated hours %q", row.ID, row.EstimatedHours))
	}
	s.EstimatedHours = hours

	if strings.TrimSpace(row.DueDate) != "" {
		if due, ok := dates.ParseTimestamp(row.DueDate); ok {
			s.DueDate = &due
		} else {
			issues = append(issues, fmt.Sprintf("task %s: invalid due date %q", row.ID, row.DueDate))
		}
	}

	// The latest completion event wins whatever the current status. Only a
	// completed task may fall back to its last-modified time.
	if at, ok := latest[row.ID]; ok {
		s.CompletedAt = &at
	} else if s.IsCompleted() {
		if at, ok := dates.ParseTimestamp(row.UpdatedAt); ok {
			s.CompletedAt = &at
		} else {
			issues = append(issues, fmt.Sprintf("task %s: completed with unknown date", row.ID))
		}
	}

	return s, issues
}

func normalizeStatus(raw string) stats.TaskStatus {
	status := strings.ToLower(strings.TrimSpace(raw))
	status = strings.NewReplacer(" ", "_", "-", "_").Replace(status)
	switch stats.TaskStatus(status) {
	case stats.TaskStatusCompleted, stats.TaskStatusInProgress:
		return stats.TaskStatus(status)
	default:
		return stats.TaskStatusPending
	}
}

func normalizePriority(raw string) stats.TaskPriority {
	switch p := stats.TaskPriority(strings.ToLower(strings.TrimSpace(raw))); p {
	case stats.TaskPriorityLow, stats.TaskPriorityHigh:
		return p
	default:
		return stats.TaskPriorityMedium
	}
}

// parseHours returns 0 for empty, malformed, negative or non-finite input.
// ok is false only when a non-empty value had to be discarded.
func parseHours(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, true
	}
	h, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		return 0, false
	}
	return h, true
}
