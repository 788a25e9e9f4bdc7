package usecase

import (
	"time"

	"studypal/internal/stats"
	"studypal/internal/stats/repository"
	"studypal/pkg/datemath"
	"studypal/pkg/log"
)

// Options configures the stats use case.
type Options struct {
	// Dates fixes the calendar basis for every day computation. Defaults to UTC.
	Dates *datemath.Parser
	// UpcomingLimit is used when a request does not set one. Defaults to stats.DefaultUpcomingLimit.
	UpcomingLimit int
	// Now overrides the clock; defaults to time.Now.
	Now func() time.Time
}

// implUseCase is the private implementation of stats.UseCase.
type implUseCase struct {
	l             log.Logger
	repo          repository.TaskRepository
	dates         *datemath.Parser
	upcomingLimit int
	now           func() time.Time
}

// New creates a new stats UseCase implementation.
func New(l log.Logger, repo repository.TaskRepository, opts Options) *implUseCase {
	if opts.Dates == nil {
		opts.Dates = datemath.UTC
	}
	if opts.UpcomingLimit <= 0 || opts.UpcomingLimit > stats.MaxUpcomingLimit {
		opts.UpcomingLimit = stats.DefaultUpcomingLimit
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &implUseCase{
		l:             l,
		repo:          repo,
		dates:         opts.Dates,
		upcomingLimit: opts.UpcomingLimit,
		now:           opts.Now,
	}
}
