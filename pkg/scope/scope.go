package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"studypal/internal/model"
)

var (
	ErrMissingSecret = errors.New("jwt secret is required")
	ErrInvalidToken  = errors.New("invalid token")
)

// Manager issues and verifies bearer tokens that carry a model.Scope.
type Manager interface {
	Issue(userID string, ttl time.Duration) (string, error)
	Verify(token string) (model.Scope, error)
}

type claims struct {
	jwt.RegisteredClaims
}

type implManager struct {
	secret []byte
	now    func() time.Time
}

// New creates an HS256 Manager.
func New(secret string) (Manager, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &implManager{secret: []byte(secret), now: time.Now}, nil
}

// Issue signs a token for userID. A zero ttl issues a token without expiry.
func (m *implManager) Issue(userID string, ttl time.Duration) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}

	now := m.now()
	c := claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:  userID,
		IssuedAt: jwt.NewNumericDate(now),
	}}
	if ttl > 0 {
		c.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
}

// Verify parses token and returns the scope it carries.
func (m *implManager) Verify(token string) (model.Scope, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return model.Scope{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || c.Subject == "" {
		return model.Scope{}, ErrInvalidToken
	}
	return model.Scope{UserID: c.Subject}, nil
}
