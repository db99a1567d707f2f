package queries

import (
	"context"

	"styleapp-backend/internal/domain/user"

	"github.com/google/uuid"
)

type BidReadStore interface {
	ListByRequest(ctx context.Context, requestID uuid.UUID) ([]*BidView, error)
	ListByRequestAndBarber(ctx context.Context, requestID, barberID uuid.UUID) ([]*BidView, error)
}

type BidQueries interface {
	ListForRequest(ctx context.Context, actor user.Actor, requestID uuid.UUID) ([]*BidView, error)
}

type bidQueriesImpl struct {
	requests ServiceRequestReadStore
	bids     BidReadStore
}

func NewBidQueries(requests ServiceRequestReadStore, bids BidReadStore) BidQueries {
	return &bidQueriesImpl{
		requests: requests,
		bids:     bids,
	}
}

// ListForRequest returns bids in submission order. The owning client and
// admins see every bid; a barber sees only their own.
func (q *bidQueriesImpl) ListForRequest(ctx context.Context, actor user.Actor, requestID uuid.UUID) ([]*BidView, error) {
	request, err := findServiceRequest(ctx, q.requests, requestID)
	if err != nil {
		return nil, err
	}

	switch actor.Role {
	case user.RoleAdmin:
		return q.bids.ListByRequest(ctx, requestID)
	case user.RoleClient:
		if request.ClientID != actor.ID {
			return nil, ErrBidAccess
		}
		return q.bids.ListByRequest(ctx, requestID)
	case user.RoleBarber:
		return q.bids.ListByRequestAndBarber(ctx, requestID, actor.ID)
	default:
		return nil, ErrRoleNotAllowed
	}
}
