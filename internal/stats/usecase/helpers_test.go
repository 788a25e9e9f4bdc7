package usecase

import (
	"context"
	"time"

	repo "studypal/internal/stats/repository"
)

// Mock logger for testing
type mockLogger struct {
	debugs []string
	errors []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any) {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {
	m.debugs = append(m.debugs, template)
}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {
	m.errors = append(m.errors, template)
}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Fake task store for testing
type fakeRepo struct {
	tasks     []repo.TaskRow
	events    []repo.StatusEvent
	tasksErr  error
	eventsErr error
	calls     int
}

func (f *fakeRepo) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]repo.TaskRow, error) {
	f.calls++
	return f.tasks, f.tasksErr
}

func (f *fakeRepo) ListCompletionEvents(ctx context.Context, opt repo.ListCompletionEventsOptions) ([]repo.StatusEvent, error) {
	return f.events, f.eventsErr
}

// refNow is Wednesday 2024-05-15 14:00 UTC.
var refNow = time.Date(2024, 5, 15, 14, 0, 0, 0, time.UTC)

// day returns an RFC3339 timestamp offset days from refNow at the given hour.
func day(offset, hour int) string {
	d := time.Date(2024, 5, 15+offset, hour, 0, 0, 0, time.UTC)
	return d.Format(time.RFC3339)
}

func completedRow(id string, completedOffset int, hours string) repo.TaskRow {
	return repo.TaskRow{
		ID:             id,
		Title:          "Task " + id,
		Status:         "completed",
		EstimatedHours: hours,
		UpdatedAt:      day(completedOffset, 10),
	}
}
