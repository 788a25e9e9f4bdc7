package fixture

import (
	"fmt"
	"strconv"
	"time"
)

// File is the decoded content of a seed file.
type File struct {
	Users []User `toml:"users"`
	Tasks []Task `toml:"tasks"`
}

type User struct {
	ID    string `toml:"id"`
	Name  string `toml:"name"`
	Email string `toml:"email"`
}

type Task struct {
	ID             string  `toml:"id"`
	UserID         string  `toml:"user_id"`
	Title          string  `toml:"title"`
	Course         string  `toml:"course"`
	Priority       string  `toml:"priority"`
	Status         string  `toml:"status"`
	DueDate        Value   `toml:"due_date"`
	EstimatedHours Value   `toml:"estimated_hours"`
	UpdatedAt      Value   `toml:"updated_at"`
	History        []Event `toml:"history"`
}

type Event struct {
	From string `toml:"from"`
	To   string `toml:"to"`
	At   Value  `toml:"at"`
}

// Value keeps any TOML scalar as its raw text so that loosely typed columns
// are stored exactly as written.
type Value string

// UnmarshalTOML implements toml.Unmarshaler.
func (v *Value) UnmarshalTOML(data any) error {
	switch d := data.(type) {
	case string:
		*v = Value(d)
	case int64:
		*v = Value(strconv.FormatInt(d, 10))
	case float64:
		*v = Value(strconv.FormatFloat(d, 'f', -1, 64))
	case bool:
		*v = Value(strconv.FormatBool(d))
	case time.Time:
		*v = Value(d.Format(time.RFC3339))
	default:
		return fmt.Errorf("fixture: unsupported value %T", data)
	}
	return nil
}

// Result summarizes what Apply inserted.
type Result struct {
	Users  int
	Tasks  int
	Events int
}
