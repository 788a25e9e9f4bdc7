package sqlite

const (
	listTasksQuery = `
		SELECT id, title, COALESCE(course, ''), COALESCE(priority, ''), COALESCE(status, ''),
		       COALESCE(due_date, ''), COALESCE(estimated_hours, ''), COALESCE(updated_at, '')
		FROM tasks
		WHERE user_id = ?
		ORDER BY created_at ASC, id ASC`

	listCompletionEventsQuery = `
		SELECT h.task_id, COALESCE(h.from_status, ''), h.to_status, h.changed_at
		FROM task_status_history h
		JOIN tasks t ON t.id = h.task_id
		WHERE t.user_id = ? AND LOWER(TRIM(h.to_status)) = 'completed'
		ORDER BY h.changed_at DESC, h.id DESC`
)
