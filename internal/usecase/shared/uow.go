package shared

import (
	"context"
	"time"

	"styleapp-backend/internal/domain/barber"
	"styleapp-backend/internal/domain/bid"
	"styleapp-backend/internal/domain/commission"
	"styleapp-backend/internal/domain/servicerequest"
	sqlc "styleapp-backend/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	ServiceRequests() ServiceRequestRepository
	Bids() BidRepository
	Barbers() BarberRepository
	Ledger() LedgerRepository
	Notifications() NotificationRepository
	Idempotency() IdempotencyRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ServiceRequestByID(ctx context.Context, id uuid.UUID) (*servicerequest.ServiceRequest, error)
	// ServiceRequestForShare blocks concurrent status changes until the
	// surrounding transaction ends.
	ServiceRequestForShare(ctx context.Context, id uuid.UUID) (*servicerequest.ServiceRequest, error)
	BidByID(ctx context.Context, id uuid.UUID) (*bid.Bid, error)
	BarberByID(ctx context.Context, id uuid.UUID) (*barber.Profile, error)
	HasPendingBid(ctx context.Context, requestID, barberID uuid.UUID) (bool, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

type ServiceRequestRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, req *servicerequest.ServiceRequest) (*servicerequest.ServiceRequest, error)
	Transition(ctx context.Context, tx sqlc.DBTX, t servicerequest.Transition) (*servicerequest.ServiceRequest, error)
}

type BidRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *bid.Bid) (*bid.Bid, error)
	Transition(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, from, to bid.Status, at time.Time) (*bid.Bid, error)
	RejectPending(ctx context.Context, tx sqlc.DBTX, requestID uuid.UUID, exceptID *uuid.UUID, at time.Time) ([]*bid.Bid, error)
}

type BarberRepository interface {
	Save(ctx context.Context, tx sqlc.DBTX, p *barber.Profile) (*barber.Profile, error)
}

type LedgerRepository interface {
	RecordCompletion(ctx context.Context, tx sqlc.DBTX, requestID, barberID uuid.UUID, split commission.Breakdown, at time.Time) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, eventType string, requestID uuid.UUID, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now, leaseUntil time.Time, limit int32) ([]NotificationJob, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID) error
	Reschedule(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status, lastError string, runAt time.Time) error
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	ClaimExpired(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, requestHash string, expiresAt, now time.Time) (bool, error)
	Complete(ctx context.Context, tx sqlc.DBTX, key, userID, resultID uuid.UUID) error
	DeleteExpired(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error)
}
