package readstore

import (
	"context"

	"styleapp-backend/internal/infra"
	sqlc "styleapp-backend/internal/infra/sqlc/generated"
	"styleapp-backend/internal/pkg/pgconv"
	"styleapp-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type BidReadQueries interface {
	ListBidsByRequest(ctx context.Context, db sqlc.DBTX, serviceRequestID uuid.UUID) ([]sqlc.Bids, error)
	ListBidsByRequestAndBarber(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBidsByRequestAndBarberParams) ([]sqlc.Bids, error)
}

type BidReadStore struct {
	queries BidReadQueries
	db      sqlc.DBTX
}

func NewBidReadStore(queries BidReadQueries, db sqlc.DBTX) *BidReadStore {
	return &BidReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BidReadStore) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]*queries.BidView, error) {
	rows, err := r.queries.ListBidsByRequest(ctx, r.db, requestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bids by request", err)
	}
	return toBidViews(rows), nil
}

func (r *BidReadStore) ListByRequestAndBarber(ctx context.Context, requestID, barberID uuid.UUID) ([]*queries.BidView, error) {
	rows, err := r.queries.ListBidsByRequestAndBarber(ctx, r.db, sqlc.ListBidsByRequestAndBarberParams{
		ServiceRequestID: requestID,
		BarberID:         barberID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bids by request and barber", err)
	}
	return toBidViews(rows), nil
}

func ToBidView(row sqlc.Bids) *queries.BidView {
	return &queries.BidView{
		ID:               row.ID,
		ServiceRequestID: row.ServiceRequestID,
		BarberID:         row.BarberID,
		Amount:           row.Amount,
		Status:           row.Status,
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		DecidedAt:        pgconv.TimePtrFromPgtype(row.DecidedAt),
	}
}

func toBidViews(rows []sqlc.Bids) []*queries.BidView {
	result := make([]*queries.BidView, len(rows))
	for i, row := range rows {
		result[i] = ToBidView(row)
	}
	return result
}
