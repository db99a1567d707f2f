package readstore

import (
	"context"

	"styleapp-backend/internal/infra"
	sqlc "styleapp-backend/internal/infra/sqlc/generated"
	"styleapp-backend/internal/pkg/pgconv"
	"styleapp-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BarberReadQueries interface {
	GetBarberByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Barbers, error)
	GetBarberRequestCounts(ctx context.Context, db sqlc.DBTX, assignedBarberID pgtype.UUID) (sqlc.GetBarberRequestCountsRow, error)
	GetBarberLedgerTotals(ctx context.Context, db sqlc.DBTX, barberID uuid.UUID) (sqlc.GetBarberLedgerTotalsRow, error)
}

type BarberReadStore struct {
	queries BarberReadQueries
	db      sqlc.DBTX
}

func NewBarberReadStore(queries BarberReadQueries, db sqlc.DBTX) *BarberReadStore {
	return &BarberReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BarberReadStore) FindProfile(ctx context.Context, barberID uuid.UUID) (*queries.BarberProfileView, error) {
	row, err := r.queries.GetBarberByID(ctx, r.db, barberID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("barber profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get barber profile", err)
	}
	return &queries.BarberProfileView{
		ID:          row.ID,
		DisplayName: row.DisplayName,
		IsActive:    row.IsActive,
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

// Stats reads counts and ledger totals in the caller's snapshot. A barber
// without a profile row is reported as active.
func (r *BarberReadStore) Stats(ctx context.Context, barberID uuid.UUID) (*queries.BarberStatsView, error) {
	stats := &queries.BarberStatsView{BarberID: barberID, IsActive: true}

	profile, err := r.FindProfile(ctx, barberID)
	switch {
	case err == nil:
		stats.DisplayName = profile.DisplayName
		stats.IsActive = profile.IsActive
	case !infra.IsKind(err, infra.KindNotFound):
		return nil, err
	}

	counts, err := r.queries.GetBarberRequestCounts(ctx, r.db, pgconv.UUIDToPgtype(barberID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count barber requests", err)
	}
	totals, err := r.queries.GetBarberLedgerTotals(ctx, r.db, barberID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to sum barber ledger", err)
	}

	stats.Assigned = counts.Assigned
	stats.Completed = counts.Completed
	stats.Cancelled = counts.Cancelled
	stats.Gross = totals.Gross
	stats.Commission = totals.Commission
	stats.Net = totals.Net
	return stats, nil
}
