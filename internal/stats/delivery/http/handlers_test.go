package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"studypal/internal/middleware"
	"studypal/internal/model"
	"studypal/internal/stats"
	"studypal/pkg/datemath"
	"studypal/pkg/log"
	"studypal/pkg/scope"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeUseCase struct {
	gotScope model.Scope
	gotInput stats.OverviewInput
	calls    int
	out      stats.Overview
	err      error
}

func (f *fakeUseCase) Overview(ctx context.Context, sc model.Scope, input stats.OverviewInput) (stats.Overview, error) {
	f.calls++
	f.gotScope = sc
	f.gotInput = input
	return f.out, f.err
}

var refNow = time.Date(2024, 5, 15, 14, 0, 0, 0, time.UTC)

func newTestHandler(uc stats.UseCase) *handler {
	dates := datemath.UTC
	h := New(log.NewNop(), uc, dates)
	h.now = func() time.Time { return refNow }
	return h
}

// withScope stands in for the auth middleware.
func withScope(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != "" {
			c.Request = c.Request.WithContext(scope.SetScopeToContext(c.Request.Context(), model.Scope{UserID: userID}))
		}
		c.Next()
	}
}

func serve(h *handler, userID, target string) *httptest.ResponseRecorder {
	r := gin.New()
	r.GET("/overview", withScope(userID), h.Overview)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return env
}

func sampleOverview() stats.Overview {
	today := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	due := today.AddDate(0, 0, -1)
	missed := today.AddDate(0, 0, -2)

	week := make([]stats.DayBucket, stats.WindowDays)
	for i := range week {
		d := today.AddDate(0, 0, i-(stats.WindowDays-1))
		week[i] = stats.DayBucket{Date: d, Label: d.Weekday().String()[:3]}
	}
	week[6].Completed = 1
	week[6].StudyMinutes = 90

	return stats.Overview{
		Totals:               stats.Totals{TotalTasks: 2, CompletedTasks: 1, PendingTasks: 1, OverdueTasks: 1, FocusHours: 1.5},
		CompletionRate:       50,
		WeeklyCompletionRate: 100,
		WeeklyFocusMinutes:   90,
		WeeklyProgress:       week,
		StreakDays:           1,
		Streak:               stats.StreakState{Current: 1, Longest: 1, LastMissedDay: &missed},
		UpcomingTasks: []stats.UpcomingTask{{
			TaskSnapshot: stats.TaskSnapshot{
				ID: "t2", Title: "Essay", Course: "HIST", DueDate: &due,
				Priority: stats.TaskPriorityHigh, Status: stats.TaskStatusPending, EstimatedHours: 2,
			},
			Overdue: true,
		}},
		Gamification: stats.GamificationState{
			XP: 60, Level: 1, XPPerCompletion: 60, XPPerLevel: 600,
			XPIntoLevel: 60, XPToNextLevel: 540, ProgressPercent: 10,
			Achievements: []string{"First task completed"},
		},
	}
}

func TestOverview(t *testing.T) {
	t.Run("success renders camelCase payload", func(t *testing.T) {
		uc := &fakeUseCase{out: sampleOverview()}
		w := serve(newTestHandler(uc), "u1", "/overview")

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d body %s", w.Code, w.Body.String())
		}
		if uc.gotScope.UserID != "u1" {
			t.Errorf("scope = %+v", uc.gotScope)
		}
		if !uc.gotInput.AsOf.IsZero() || uc.gotInput.UpcomingLimit != 0 {
			t.Errorf("expected zero input without query, got %+v", uc.gotInput)
		}

		env := decode(t, w)
		var data map[string]any
		if err := json.Unmarshal(env.Data, &data); err != nil {
			t.Fatalf("decode data: %v", err)
		}
		for _, key := range []string{
			"totals", "completionRate", "weeklyCompletionRate", "weeklyFocusMinutes",
			"weeklyProgress", "streakDays", "streak", "upcomingTasks", "gamification",
		} {
			if _, ok := data[key]; !ok {
				t.Errorf("missing key %q", key)
			}
		}

		var resp struct {
			Totals struct {
				FocusHours float64 `json:"focusHours"`
			} `json:"totals"`
			WeeklyProgress []struct {
				Date         string `json:"date"`
				Label        string `json:"label"`
				StudyMinutes int    `json:"studyMinutes"`
			} `json:"weeklyProgress"`
			Streak struct {
				LastMissedDay *string `json:"lastMissedDay"`
			} `json:"streak"`
			UpcomingTasks []struct {
				ID      string  `json:"id"`
				DueDate *string `json:"dueDate"`
				Overdue bool    `json:"overdue"`
			} `json:"upcomingTasks"`
			Gamification struct {
				XPToNextLevel int      `json:"xpToNextLevel"`
				Achievements  []string `json:"achievements"`
			} `json:"gamification"`
		}
		if err := json.Unmarshal(env.Data, &resp); err != nil {
			t.Fatalf("decode typed data: %v", err)
		}
		if resp.Totals.FocusHours != 1.5 {
			t.Errorf("focusHours = %v", resp.Totals.FocusHours)
		}
		if len(resp.WeeklyProgress) != stats.WindowDays || resp.WeeklyProgress[6].Label != "Wed" || resp.WeeklyProgress[6].StudyMinutes != 90 {
			t.Errorf("weeklyProgress = %+v", resp.WeeklyProgress)
		}
		if resp.Streak.LastMissedDay == nil {
			t.Error("lastMissedDay should be set")
		}
		if len(resp.UpcomingTasks) != 1 || !resp.UpcomingTasks[0].Overdue || resp.UpcomingTasks[0].DueDate == nil {
			t.Errorf("upcomingTasks = %+v", resp.UpcomingTasks)
		}
		if resp.Gamification.XPToNextLevel != 540 || len(resp.Gamification.Achievements) != 1 {
			t.Errorf("gamification = %+v", resp.Gamification)
		}
	})

	t.Run("query parameters", func(t *testing.T) {
		uc := &fakeUseCase{out: sampleOverview()}
		w := serve(newTestHandler(uc), "u1", "/overview?as_of=yesterday&limit=7")

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d body %s", w.Code, w.Body.String())
		}
		wantAsOf := time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC)
		if !uc.gotInput.AsOf.Equal(wantAsOf) {
			t.Errorf("AsOf = %v, want %v", uc.gotInput.AsOf, wantAsOf)
		}
		if uc.gotInput.UpcomingLimit != 7 {
			t.Errorf("UpcomingLimit = %d", uc.gotInput.UpcomingLimit)
		}
	})

	t.Run("bad query", func(t *testing.T) {
		for _, target := range []string{
			"/overview?limit=0",
			"/overview?limit=21",
			"/overview?limit=abc",
			"/overview?as_of=someday",
		} {
			uc := &fakeUseCase{}
			w := serve(newTestHandler(uc), "u1", target)
			if w.Code != http.StatusBadRequest {
				t.Errorf("%s: status = %d, want 400", target, w.Code)
			}
			if uc.calls != 0 {
				t.Errorf("%s: use case should not be called", target)
			}
		}
	})

	t.Run("missing scope", func(t *testing.T) {
		uc := &fakeUseCase{}
		w := serve(newTestHandler(uc), "", "/overview")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
		if uc.calls != 0 {
			t.Error("use case should not be called")
		}
	})

	t.Run("error mapping", func(t *testing.T) {
		tests := []struct {
			err  error
			want int
		}{
			{err: fmt.Errorf("%w: %w", stats.ErrDataUnavailable, errors.New("disk I/O error")), want: http.StatusServiceUnavailable},
			{err: stats.ErrMissingUser, want: http.StatusUnauthorized},
			{err: stats.ErrInvalidLimit, want: http.StatusBadRequest},
			{err: errors.New("boom"), want: http.StatusInternalServerError},
		}
		for _, tt := range tests {
			uc := &fakeUseCase{err: tt.err}
			w := serve(newTestHandler(uc), "u1", "/overview")
			if w.Code != tt.want {
				t.Errorf("%v: status = %d, want %d", tt.err, w.Code, tt.want)
			}
			if env := decode(t, w); env.ErrorCode != tt.want || len(env.Data) != 0 {
				t.Errorf("%v: envelope = %+v", tt.err, env)
			}
		}
	})
}

func TestRegisterRoutes(t *testing.T) {
	jwtManager, _ := scope.New("secret")
	mw := middleware.New(log.NewNop(), jwtManager, 0)
	uc := &fakeUseCase{out: sampleOverview()}

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1/stats"), newTestHandler(uc), mw)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats/overview", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated status = %d, want 401", w.Code)
	}

	token, _ := jwtManager.Issue("u9", time.Hour)
	req = httptest.NewRequest(http.MethodGet, "/api/v1/stats/overview", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("authenticated status = %d body %s", w.Code, w.Body.String())
	}
	if uc.gotScope.UserID != "u9" {
		t.Errorf("scope = %+v", uc.gotScope)
	}
}
