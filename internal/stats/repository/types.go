package repository

// TaskRow is a task as stored. Loosely typed columns stay raw strings; the
// stats use case normalizes them.
type TaskRow struct {
	ID             string
	Title          string
	Course         string
	Priority       string
	Status         string
	DueDate        string
	EstimatedHours string
	UpdatedAt      string
}

// StatusEvent is one entry of a task's status history.
type StatusEvent struct {
	TaskID     string
	FromStatus string
	ToStatus   string
	ChangedAt  string
}
