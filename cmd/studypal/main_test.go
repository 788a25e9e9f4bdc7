package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const cliFixture = `
[[users]]
id = "u1"

[[tasks]]
id = "t1"
user_id = "u1"
title = "Lab report"
course = "BIO"
status = "completed"
estimated_hours = 2
updated_at = "today"

[[tasks]]
id = "t2"
user_id = "u1"
title = "Essay"
priority = "high"
due_date = "yesterday"
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCLI(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "store", "studypal.db")
	fixturePath := filepath.Join(dir, "seed.toml")
	if err := os.WriteFile(fixturePath, []byte(cliFixture), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("migrate", func(t *testing.T) {
		out, err := execute(t, "migrate", "--db", db)
		if err != nil {
			t.Fatalf("migrate: %v\n%s", err, out)
		}
		if !strings.Contains(out, "schema version 1") {
			t.Errorf("unexpected output %q", out)
		}
	})

	t.Run("seed", func(t *testing.T) {
		out, err := execute(t, "seed", "--db", db, "--file", fixturePath)
		if err != nil {
			t.Fatalf("seed: %v\n%s", err, out)
		}
		if !strings.Contains(out, "seeded 1 users, 2 tasks, 0 status events") {
			t.Errorf("unexpected output %q", out)
		}
	})

	t.Run("overview json", func(t *testing.T) {
		out, err := execute(t, "overview", "--db", db, "--user", "u1", "--json")
		if err != nil {
			t.Fatalf("overview: %v\n%s", err, out)
		}
		var payload struct {
			Totals struct {
				TotalTasks   int `json:"totalTasks"`
				OverdueTasks int `json:"overdueTasks"`
			} `json:"totals"`
			WeeklyFocusMinutes int `json:"weeklyFocusMinutes"`
		}
		if err := json.Unmarshal([]byte(out), &payload); err != nil {
			t.Fatalf("decode %q: %v", out, err)
		}
		if payload.Totals.TotalTasks != 2 || payload.Totals.OverdueTasks != 1 {
			t.Errorf("totals = %+v", payload.Totals)
		}
		if payload.WeeklyFocusMinutes != 120 {
			t.Errorf("weeklyFocusMinutes = %d", payload.WeeklyFocusMinutes)
		}
	})

	t.Run("overview report", func(t *testing.T) {
		out, err := execute(t, "overview", "--db", db, "--user", "u1", "--json=false")
		if err != nil {
			t.Fatalf("overview: %v\n%s", err, out)
		}
		for _, want := range []string{"Essay", "overdue", "Level 1", "60 XP"} {
			if !strings.Contains(out, want) {
				t.Errorf("report missing %q:\n%s", want, out)
			}
		}
		if strings.Contains(out, "Lab report") {
			t.Error("completed tasks should not be listed as upcoming")
		}
	})

	t.Run("token", func(t *testing.T) {
		out, err := execute(t, "token", "--user", "u1", "--secret", "s")
		if err != nil {
			t.Fatalf("token: %v", err)
		}
		if strings.Count(strings.TrimSpace(out), ".") != 2 {
			t.Errorf("expected a JWT, got %q", out)
		}
	})

	t.Run("token without secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		if _, err := execute(t, "token", "--user", "u1", "--secret", ""); err == nil {
			t.Fatal("expected error without secret")
		}
	})
}
