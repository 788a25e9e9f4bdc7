package repository

import "context"

// Repository is the composed interface for the stats domain data store.
type Repository interface {
	TaskRepository
}

// TaskRepository reads stored tasks and their status history. It never writes.
type TaskRepository interface {
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]TaskRow, error)
	ListCompletionEvents(ctx context.Context, opt ListCompletionEventsOptions) ([]StatusEvent, error)
}
