package repository

// ListTasksOptions holds filter parameters for listing a user's tasks.
type ListTasksOptions struct {
	UserID string
}

// ListCompletionEventsOptions holds filter parameters for listing transitions into
// the completed status. Results are ordered newest first.
type ListCompletionEventsOptions struct {
	UserID string
}
