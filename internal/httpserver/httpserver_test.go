package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"studypal/internal/fixture"
	"studypal/pkg/datemath"
	"studypal/pkg/log"
	"studypal/pkg/scope"
	"studypal/pkg/sqlite"
)

const seed = `
[[users]]
id = "u1"
name = "Lan"

[[tasks]]
id = "t1"
user_id = "u1"
title = "Lab report"
status = "completed"
estimated_hours = 1
updated_at = "today"

[[tasks]]
id = "t2"
user_id = "u1"
title = "Essay"
priority = "high"
due_date = "tomorrow"
`

func newTestServer(t *testing.T) (*HTTPServer, scope.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	db, err := sqlite.Open(ctx, sqlite.MemoryPath)
	if err != nil {
		t.Fatalf("sqlite.Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	dates := datemath.UTC
	file, err := fixture.Decode(strings.NewReader(seed))
	if err != nil {
		t.Fatalf("fixture.Decode: %v", err)
	}
	if _, err := file.Apply(ctx, db, dates, time.Now()); err != nil {
		t.Fatalf("fixture.Apply: %v", err)
	}

	jwtManager, _ := scope.New("secret")
	srv, err := New(log.NewNop(), Config{
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "test",
		DB:          db,
		JWTManager:  jwtManager,
		Dates:       dates,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv, jwtManager
}

func TestNewValidation(t *testing.T) {
	if _, err := New(log.NewNop(), Config{Mode: gin.TestMode, Port: 8080}); err == nil {
		t.Fatal("expected error without database")
	}
}

func TestSystemRoutes(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d body %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestReadyWhenStoreClosed(t *testing.T) {
	srv, _ := newTestServer(t)
	_ = srv.db.Close()

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
}

func TestStatsOverviewEndToEnd(t *testing.T) {
	srv, jwtManager := newTestServer(t)
	token, _ := jwtManager.Issue("u1", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats/overview", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", w.Code, w.Body.String())
	}

	var body struct {
		ErrorCode int `json:"error_code"`
		Data      struct {
			Totals struct {
				TotalTasks     int `json:"totalTasks"`
				CompletedTasks int `json:"completedTasks"`
			} `json:"totals"`
			CompletionRate float64 `json:"completionRate"`
			StreakDays     int     `json:"streakDays"`
			UpcomingTasks  []struct {
				ID string `json:"id"`
			} `json:"upcomingTasks"`
			Gamification struct {
				XP int `json:"xp"`
			} `json:"gamification"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}

	d := body.Data
	if d.Totals.TotalTasks != 2 || d.Totals.CompletedTasks != 1 {
		t.Errorf("totals = %+v", d.Totals)
	}
	if d.CompletionRate != 50 {
		t.Errorf("completionRate = %v", d.CompletionRate)
	}
	if d.StreakDays != 1 {
		t.Errorf("streakDays = %d", d.StreakDays)
	}
	if len(d.UpcomingTasks) != 1 || d.UpcomingTasks[0].ID != "t2" {
		t.Errorf("upcomingTasks = %+v", d.UpcomingTasks)
	}
	if d.Gamification.XP != 60 {
		t.Errorf("xp = %d", d.Gamification.XP)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID")
	}
}
