package stats

import (
	"context"

	"studypal/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Overview computes the analytics overview for the scoped user from a fresh task snapshot.
	Overview(ctx context.Context, sc model.Scope, input OverviewInput) (Overview, error)
}
