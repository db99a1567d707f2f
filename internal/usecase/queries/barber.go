package queries

import (
	"context"

	"styleapp-backend/internal/domain/user"

	"github.com/google/uuid"
)

type BarberReadStore interface {
	Stats(ctx context.Context, barberID uuid.UUID) (*BarberStatsView, error)
}

type BarberQueries interface {
	Stats(ctx context.Context, actor user.Actor) (*BarberStatsView, error)
}

type barberQueriesImpl struct {
	repo BarberReadStore
}

func NewBarberQueries(repo BarberReadStore) BarberQueries {
	return &barberQueriesImpl{repo: repo}
}

func (q *barberQueriesImpl) Stats(ctx context.Context, actor user.Actor) (*BarberStatsView, error) {
	if !actor.IsBarber() {
		return nil, ErrRoleNotAllowed
	}
	return q.repo.Stats(ctx, actor.ID)
}
