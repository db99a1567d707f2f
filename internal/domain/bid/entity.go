package bid

import (
	"time"

	"styleapp-backend/internal/domain/commission"

	"github.com/google/uuid"
)

type Bid struct {
	id               uuid.UUID
	serviceRequestID uuid.UUID
	barberID         uuid.UUID
	amount           int64
	status           Status
	createdAt        time.Time
	decidedAt        *time.Time
}

func NewBid(serviceRequestID, barberID uuid.UUID, amount int64, now time.Time) (*Bid, error) {
	if amount <= 0 {
		return nil, ErrAmountNotPositive
	}
	if amount > commission.MaxAmount {
		return nil, ErrAmountTooLarge
	}
	return &Bid{
		id:               uuid.New(),
		serviceRequestID: serviceRequestID,
		barberID:         barberID,
		amount:           amount,
		status:           StatusPending,
		createdAt:        now,
	}, nil
}

func ReconstructBid(id, serviceRequestID, barberID uuid.UUID, amount int64, status Status, createdAt time.Time, decidedAt *time.Time) *Bid {
	return &Bid{
		id:               id,
		serviceRequestID: serviceRequestID,
		barberID:         barberID,
		amount:           amount,
		status:           status,
		createdAt:        createdAt,
		decidedAt:        decidedAt,
	}
}

func (b *Bid) ID() uuid.UUID               { return b.id }
func (b *Bid) ServiceRequestID() uuid.UUID { return b.serviceRequestID }
func (b *Bid) BarberID() uuid.UUID         { return b.barberID }
func (b *Bid) Amount() int64               { return b.amount }
func (b *Bid) Status() Status              { return b.status }
func (b *Bid) CreatedAt() time.Time        { return b.createdAt }
func (b *Bid) DecidedAt() *time.Time       { return b.decidedAt }
func (b *Bid) IsPending() bool             { return b.status == StatusPending }
