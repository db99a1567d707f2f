package readstore

import (
	"context"

	"styleapp-backend/internal/domain/barber"
	"styleapp-backend/internal/domain/bid"
	"styleapp-backend/internal/domain/servicerequest"
	"styleapp-backend/internal/infra"
	"styleapp-backend/internal/infra/repository/converter"
	sqlc "styleapp-backend/internal/infra/sqlc/generated"
	"styleapp-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// NegotiationReadQueries are the reads a command needs to rebuild aggregates
// inside its transaction.
type NegotiationReadQueries interface {
	GetServiceRequestByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ServiceRequests, error)
	GetServiceRequestByIDForShare(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ServiceRequests, error)
	GetBidByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bids, error)
	GetBarberByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Barbers, error)
	HasPendingBid(ctx context.Context, db sqlc.DBTX, arg sqlc.HasPendingBidParams) (bool, error)
}

type NegotiationReadStore struct {
	queries NegotiationReadQueries
	db      sqlc.DBTX
}

func NewNegotiationReadStore(queries NegotiationReadQueries, db sqlc.DBTX) *NegotiationReadStore {
	return &NegotiationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *NegotiationReadStore) ServiceRequest(ctx context.Context, id uuid.UUID) (*servicerequest.ServiceRequest, error) {
	row, err := r.queries.GetServiceRequestByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get service request", err)
	}
	return converter.ServiceRequestFromRow(row), nil
}

// ServiceRequestForShare holds a share lock on the row until the transaction
// ends, so a concurrent status change waits for it.
func (r *NegotiationReadStore) ServiceRequestForShare(ctx context.Context, id uuid.UUID) (*servicerequest.ServiceRequest, error) {
	row, err := r.queries.GetServiceRequestByIDForShare(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock service request", err)
	}
	return converter.ServiceRequestFromRow(row), nil
}

func (r *NegotiationReadStore) Bid(ctx context.Context, id uuid.UUID) (*bid.Bid, error) {
	row, err := r.queries.GetBidByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("bid not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get bid", err)
	}
	return converter.BidFromRow(row), nil
}

// BarberProfile returns nil without error when the barber has no profile.
func (r *NegotiationReadStore) BarberProfile(ctx context.Context, id uuid.UUID) (*barber.Profile, error) {
	row, err := r.queries.GetBarberByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get barber profile", err)
	}
	return converter.BarberFromRow(row), nil
}

func (r *NegotiationReadStore) HasPendingBid(ctx context.Context, requestID, barberID uuid.UUID) (bool, error) {
	ok, err := r.queries.HasPendingBid(ctx, r.db, sqlc.HasPendingBidParams{
		ServiceRequestID: requestID,
		BarberID:         barberID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check pending bid", err)
	}
	return ok, nil
}
