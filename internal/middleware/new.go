package middleware

import (
	"studypal/pkg/log"
	"studypal/pkg/scope"
)

type Middleware struct {
	l           log.Logger
	jwtManager  scope.Manager
	rateLimiter *rateLimiter
}

// New creates the middleware set shared by every domain router.
// requestsPerMin <= 0 disables per-user rate limiting.
func New(l log.Logger, jwtManager scope.Manager, requestsPerMin int) Middleware {
	return Middleware{
		l:           l,
		jwtManager:  jwtManager,
		rateLimiter: newRateLimiter(requestsPerMin),
	}
}
