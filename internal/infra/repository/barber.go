package repository

import (
	"context"

	"styleapp-backend/internal/domain/barber"
	"styleapp-backend/internal/infra"
	"styleapp-backend/internal/infra/repository/converter"
	sqlc "styleapp-backend/internal/infra/sqlc/generated"
	"styleapp-backend/internal/pkg/pgconv"
)

type BarberWriteQueries interface {
	UpsertBarber(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertBarberParams) (sqlc.Barbers, error)
}

type BarberRepository struct {
	queries BarberWriteQueries
}

func NewBarberRepository(queries BarberWriteQueries) *BarberRepository {
	return &BarberRepository{queries: queries}
}

func (r *BarberRepository) Save(ctx context.Context, tx sqlc.DBTX, p *barber.Profile) (*barber.Profile, error) {
	row, err := r.queries.UpsertBarber(ctx, tx, sqlc.UpsertBarberParams{
		ID:          p.ID(),
		DisplayName: p.DisplayName(),
		IsActive:    p.IsActive(),
		CreatedAt:   pgconv.TimeToPgtype(p.UpdatedAt()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to save barber profile", err)
	}
	return converter.BarberFromRow(row), nil
}
