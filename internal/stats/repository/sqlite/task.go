package sqlite

import (
	"context"

	repo "studypal/internal/stats/repository"
)

// ListTasks returns every task owned by the user, oldest first.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]repo.TaskRow, error) {
	rows, err := r.db.QueryContext(ctx, listTasksQuery, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []repo.TaskRow
	for rows.Next() {
		var t repo.TaskRow
		if err := rows.Scan(&t.ID, &t.Title, &t.Course, &t.Priority, &t.Status, &t.DueDate, &t.EstimatedHours, &t.UpdatedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// ListCompletionEvents returns the user's transitions into completed, newest first.
func (r *implRepository) ListCompletionEvents(ctx context.Context, opt repo.ListCompletionEventsOptions) ([]repo.StatusEvent, error) {
	rows, err := r.db.QueryContext(ctx, listCompletionEventsQuery, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCompletionEvents"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var events []repo.StatusEvent
	for rows.Next() {
		var e repo.StatusEvent
		if err := rows.Scan(&e.TaskID, &e.FromStatus, &e.ToStatus, &e.ChangedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListCompletionEvents"), err)
			return nil, repo.ErrFailedToList
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListCompletionEvents"), err)
		return nil, repo.ErrFailedToList
	}
	return events, nil
}
