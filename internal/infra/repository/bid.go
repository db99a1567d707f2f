package repository

import (
	"context"
	"time"

	"styleapp-backend/internal/domain/bid"
	"styleapp-backend/internal/infra"
	"styleapp-backend/internal/infra/repository/converter"
	sqlc "styleapp-backend/internal/infra/sqlc/generated"
	"styleapp-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BidWriteQueries interface {
	CreateBid(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBidParams) (sqlc.Bids, error)
	TransitionBid(ctx context.Context, db sqlc.DBTX, arg sqlc.TransitionBidParams) (sqlc.Bids, error)
	RejectPendingBids(ctx context.Context, db sqlc.DBTX, arg sqlc.RejectPendingBidsParams) ([]sqlc.Bids, error)
}

type BidRepository struct {
	queries BidWriteQueries
}

func NewBidRepository(queries BidWriteQueries) *BidRepository {
	return &BidRepository{queries: queries}
}

func (r *BidRepository) Create(ctx context.Context, tx sqlc.DBTX, b *bid.Bid) (*bid.Bid, error) {
	row, err := r.queries.CreateBid(ctx, tx, converter.BidToCreateParams(b))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create bid", err)
	}
	return converter.BidFromRow(row), nil
}

func (r *BidRepository) Transition(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, from, to bid.Status, at time.Time) (*bid.Bid, error) {
	if !from.CanTransitionTo(to) {
		return nil, bid.ErrInvalidTransition
	}

	row, err := r.queries.TransitionBid(ctx, tx, sqlc.TransitionBidParams{
		ToStatus:   to.String(),
		DecidedAt:  pgconv.TimeToPgtype(at),
		ID:         id,
		FromStatus: from.String(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("bid status changed concurrently", err, infra.KindConflict)
		}
		return nil, infra.WrapRepoErr("failed to transition bid", err)
	}
	return converter.BidFromRow(row), nil
}

// RejectPending rejects every pending bid of the request except exceptID and
// returns the bids it touched.
func (r *BidRepository) RejectPending(ctx context.Context, tx sqlc.DBTX, requestID uuid.UUID, exceptID *uuid.UUID, at time.Time) ([]*bid.Bid, error) {
	rows, err := r.queries.RejectPendingBids(ctx, tx, sqlc.RejectPendingBidsParams{
		DecidedAt:        pgconv.TimeToPgtype(at),
		ServiceRequestID: requestID,
		ExceptID:         pgconv.UUIDPtrToPgtype(exceptID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to reject pending bids", err)
	}
	return converter.BidsFromRows(rows), nil
}
