package fixture

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"studypal/pkg/datemath"
)

// Load reads and decodes a seed file.
func Load(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("opening fixture: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode decodes a seed file from r.
func Decode(r io.Reader) (File, error) {
	var file File
	if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
		return File{}, fmt.Errorf("decoding fixture: %w", err)
	}
	return file, nil
}

// Apply inserts the file's users, tasks and history in one transaction.
// Date values may be day expressions ("yesterday", "3 days ago") resolved
// against base with p; anything else is stored verbatim.
func (f File) Apply(ctx context.Context, db *sql.DB, p *datemath.Parser, base time.Time) (Result, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Result{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var res Result
	for _, u := range f.Users {
		if u.ID == "" {
			u.ID = uuid.NewString()
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO users (id, name, email) VALUES (?, ?, ?)`,
			u.ID, u.Name, u.Email,
		); err != nil {
			return Result{}, fmt.Errorf("inserting user %s: %w", u.ID, err)
		}
		res.Users++
	}

	for _, t := range f.Tasks {
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		updatedAt := resolve(t.UpdatedAt, p, base)
		if updatedAt == nil {
			updatedAt = base.UTC().Format(time.RFC3339)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO tasks (id, user_id, title, course, priority, status, due_date, estimated_hours, updated_at)
			 VALUES (?, ?, ?, ?, COALESCE(NULLIF(?, ''), 'medium'), COALESCE(NULLIF(?, ''), 'pending'), ?, ?, ?)`,
			t.ID, t.UserID, t.Title, t.Course, t.Priority, t.Status,
			resolve(t.DueDate, p, base), nullable(t.EstimatedHours), updatedAt,
		); err != nil {
			return Result{}, fmt.Errorf("inserting task %s: %w", t.ID, err)
		}
		res.Tasks++

		for _, e := range t.History {
			at := resolve(e.At, p, base)
			if at == nil {
				return Result{}, fmt.Errorf("task %s: history event without timestamp", t.ID)
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO task_status_history (task_id, from_status, to_status, changed_at) VALUES (?, ?, ?, ?)`,
				t.ID, nullable(Value(e.From)), e.To, at,
			); err != nil {
				return Result{}, fmt.Errorf("inserting history for task %s: %w", t.ID, err)
			}
			res.Events++
		}
	}

	if err := tx.Commit(); err != nil {
		return Result{}, err
	}
	return res, nil
}

// resolve returns nil for an empty value, an RFC3339 timestamp for a day
// expression, and the raw text otherwise.
func resolve(v Value, p *datemath.Parser, base time.Time) any {
	if v == "" {
		return nil
	}
	if p == nil {
		p = datemath.UTC
	}
	if _, ok := p.ParseTimestamp(string(v)); ok {
		return string(v)
	}
	if t, err := p.Parse(string(v), base); err == nil {
		return t.UTC().Format(time.RFC3339)
	}
	return string(v)
}

func nullable(v Value) any {
	if v == "" {
		return nil
	}
	return string(v)
}
