package stats

const (
	// XPPerCompletion is awarded for every completed task.
	XPPerCompletion = 60
	// XPPerLevel is the XP width of a level (10 completions).
	XPPerLevel = 600

	// WindowDays is the length of the trailing weekly window, today inclusive.
	WindowDays = 7

	DefaultUpcomingLimit = 4
	MaxUpcomingLimit     = 20
)

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// TaskPriority is the user-assigned priority of a task.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)
