package repository

import (
	"context"
	"time"

	"styleapp-backend/internal/domain/commission"
	"styleapp-backend/internal/infra"
	sqlc "styleapp-backend/internal/infra/sqlc/generated"
	"styleapp-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type LedgerWriteQueries interface {
	CreateLedgerEntry(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateLedgerEntryParams) (sqlc.BarberLedgerEntries, error)
}

// LedgerRepository is the in-database stats ledger. Completion records one
// entry per service request.
type LedgerRepository struct {
	queries LedgerWriteQueries
}

func NewLedgerRepository(queries LedgerWriteQueries) *LedgerRepository {
	return &LedgerRepository{queries: queries}
}

func (r *LedgerRepository) RecordCompletion(ctx context.Context, tx sqlc.DBTX, requestID, barberID uuid.UUID, split commission.Breakdown, at time.Time) error {
	_, err := r.queries.CreateLedgerEntry(ctx, tx, sqlc.CreateLedgerEntryParams{
		ServiceRequestID: requestID,
		BarberID:         barberID,
		GrossAmount:      split.Gross,
		CommissionAmount: split.Commission,
		NetAmount:        split.Net,
		RecordedAt:       pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record ledger entry", err)
	}
	return nil
}
