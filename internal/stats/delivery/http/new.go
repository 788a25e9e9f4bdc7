package http

import (
	"time"

	"studypal/internal/stats"
	"studypal/pkg/datemath"
	"studypal/pkg/log"
)

type handler struct {
	l     log.Logger
	uc    stats.UseCase
	dates *datemath.Parser
	now   func() time.Time
}

// New creates a new HTTP handler for the stats domain.
func New(l log.Logger, uc stats.UseCase, dates *datemath.Parser) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		dates: dates,
		now:   time.Now,
	}
}
