package scope

import (
	"errors"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	if _, err := New(""); !errors.Is(err, ErrMissingSecret) {
		t.Errorf("expected ErrMissingSecret, got %v", err)
	}
}

func TestIssueVerify(t *testing.T) {
	mgr, err := New("test-secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Round Trip", func(t *testing.T) {
		token, err := mgr.Issue("42", time.Hour)
		if err != nil {
			t.Fatalf("Issue: %v", err)
		}
		sc, err := mgr.Verify(token)
		if err != nil {
			t.Fatalf("Verify: %v", err)
		}
		if sc.UserID != "42" {
			t.Errorf("expected user 42, got %q", sc.UserID)
		}
	})

	t.Run("Empty Subject", func(t *testing.T) {
		if _, err := mgr.Issue("", time.Hour); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		other, _ := New("other-secret")
		token, _ := other.Issue("42", time.Hour)
		if _, err := mgr.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("Expired", func(t *testing.T) {
		impl := mgr.(*implManager)
		past := &implManager{secret: impl.secret, now: func() time.Time { return time.Now().Add(-2 * time.Hour) }}
		token, _ := past.Issue("42", time.Hour)
		if _, err := mgr.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
		}
	})

	t.Run("Garbage", func(t *testing.T) {
		if _, err := mgr.Verify("not.a.token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}
