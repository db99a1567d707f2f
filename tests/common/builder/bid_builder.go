//go:build unit || e2e

package builder

import (
	"time"

	"styleapp-backend/internal/domain/bid"
	"styleapp-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type BidBuilder struct {
	ID               uuid.UUID
	ServiceRequestID uuid.UUID
	BarberID         uuid.UUID
	Amount           int64
	Status           bid.Status
	CreatedAt        time.Time
	DecidedAt        *time.Time
}

func NewBidBuilder() *BidBuilder {
	return &BidBuilder{
		ID:               uuid.New(),
		ServiceRequestID: uuid.New(),
		BarberID:         uuid.New(),
		Amount:           48000,
		Status:           bid.StatusPending,
		CreatedAt:        time.Date(2025, 3, 1, 15, 5, 0, 0, time.UTC),
	}
}

func (b *BidBuilder) With(mutate func(*BidBuilder)) *BidBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BidBuilder) BuildDomain() *bid.Bid {
	return bid.ReconstructBid(b.ID, b.ServiceRequestID, b.BarberID, b.Amount, b.Status, b.CreatedAt, b.DecidedAt)
}

func (b *BidBuilder) BuildView() *queries.BidView {
	return queries.NewBidView(b.BuildDomain())
}
