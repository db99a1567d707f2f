package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"styleapp-backend/internal/domain/barber"
	"styleapp-backend/internal/domain/commission"
	"styleapp-backend/internal/domain/negotiation"
	"styleapp-backend/internal/domain/servicerequest"
	"styleapp-backend/internal/domain/user"
	"styleapp-backend/internal/pkg/clock"
	"styleapp-backend/internal/pkg/errs"
	"styleapp-backend/internal/usecase/queries"
	"styleapp-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

const createServiceRequestEndpoint = "POST /api/service-requests"

type CreateServiceRequestInput struct {
	ServiceType string   `json:"service_type"`
	Address     string   `json:"address"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Price       int64    `json:"price"`
}

type CreateServiceRequestResult struct {
	Request    *queries.ServiceRequestView
	IsReplayed bool
}

// TransitionResult is the request after a transition plus the bids the same
// transaction rejected.
type TransitionResult struct {
	Request      *queries.ServiceRequestView
	RejectedBids []*queries.BidView
}

type ServiceRequestCommands interface {
	Create(ctx context.Context, actor user.Actor, in CreateServiceRequestInput, idempotencyKey *uuid.UUID) (*CreateServiceRequestResult, error)
	DirectAccept(ctx context.Context, actor user.Actor, requestID uuid.UUID, barberID *uuid.UUID) (*TransitionResult, error)
	StartRoute(ctx context.Context, actor user.Actor, requestID uuid.UUID) (*TransitionResult, error)
	Complete(ctx context.Context, actor user.Actor, requestID uuid.UUID) (*TransitionResult, error)
	Cancel(ctx context.Context, actor user.Actor, requestID uuid.UUID) (*TransitionResult, error)
}

type serviceRequestUseCaseImpl struct {
	uow            shared.UnitOfWork
	calc           commission.Calculator
	clock          clock.Clock
	idempotencyTTL time.Duration
}

func NewServiceRequestCommands(uow shared.UnitOfWork, calc commission.Calculator, clk clock.Clock, idempotencyTTL time.Duration) ServiceRequestCommands {
	return &serviceRequestUseCaseImpl{
		uow:            uow,
		calc:           calc,
		clock:          clk,
		idempotencyTTL: idempotencyTTL,
	}
}

func (uc *serviceRequestUseCaseImpl) Create(ctx context.Context, actor user.Actor, in CreateServiceRequestInput, idempotencyKey *uuid.UUID) (*CreateServiceRequestResult, error) {
	if !actor.IsClient() {
		return nil, ErrRoleNotAllowed
	}

	now := uc.clock.Now()
	req, err := servicerequest.NewServiceRequest(actor.ID, in.ServiceType, in.Address, in.Latitude, in.Longitude, in.Price, now)
	if err != nil {
		return nil, err
	}
	requestHash, err := calculateRequestHash(in)
	if err != nil {
		return nil, err
	}

	var result *CreateServiceRequestResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if idempotencyKey != nil {
			replayID, ierr := uc.claimIdempotencyKey(ctx, tx, *idempotencyKey, actor.ID, requestHash, now)
			if ierr != nil {
				return ierr
			}
			if replayID != nil {
				original, rerr := tx.Reads().ServiceRequestByID(ctx, *replayID)
				if rerr != nil {
					return translate(rerr, ErrServiceRequestNotFound)
				}
				result = &CreateServiceRequestResult{Request: queries.NewServiceRequestView(original), IsReplayed: true}
				return nil
			}
		}

		created, cerr := tx.ServiceRequests().Create(ctx, tx.DB(), req)
		if cerr != nil {
			return translate(cerr, nil)
		}
		if cerr = enqueueRequestEvent(ctx, tx, created, actor.ID, now); cerr != nil {
			return cerr
		}
		if idempotencyKey != nil {
			if cerr = tx.Idempotency().Complete(ctx, tx.DB(), *idempotencyKey, actor.ID, created.ID()); cerr != nil {
				return cerr
			}
		}
		result = &CreateServiceRequestResult{Request: queries.NewServiceRequestView(created)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// claimIdempotencyKey returns the request id to replay, or nil when this call
// owns the key. A concurrent holder of the same key blocks the insert until
// its transaction ends.
func (uc *serviceRequestUseCaseImpl) claimIdempotencyKey(ctx context.Context, tx shared.Tx, key, userID uuid.UUID, requestHash string, now time.Time) (*uuid.UUID, error) {
	expiresAt := now.Add(uc.idempotencyTTL)

	inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, createServiceRequestEndpoint, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if inserted {
		return nil, nil
	}

	claimed, err := tx.Idempotency().ClaimExpired(ctx, tx.DB(), key, userID, requestHash, expiresAt, now)
	if err != nil {
		return nil, err
	}
	if claimed {
		return nil, nil
	}

	existing, err := tx.Reads().IdempotencyByKey(ctx, key, userID)
	if err != nil {
		return nil, err
	}
	if existing.RequestHash != requestHash || existing.Endpoint != createServiceRequestEndpoint {
		return nil, ErrIdempotencyKeyReused
	}
	if existing.Status == shared.IdempotencyStatusCompleted && existing.ResultID != nil {
		return existing.ResultID, nil
	}
	return nil, ErrIdempotencyInProgress
}

func (uc *serviceRequestUseCaseImpl) DirectAccept(ctx context.Context, actor user.Actor, requestID uuid.UUID, barberID *uuid.UUID) (*TransitionResult, error) {
	var result *TransitionResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		req, err := tx.Reads().ServiceRequestByID(ctx, requestID)
		if err != nil {
			return translate(err, ErrServiceRequestNotFound)
		}

		target := uuid.Nil
		switch {
		case actor.IsBarber():
			target = actor.ID
		case barberID != nil:
			target = *barberID
		}
		var profile *barber.Profile
		if target != uuid.Nil {
			p, perr := tx.Reads().BarberByID(ctx, target)
			if perr != nil {
				return perr
			}
			profile = p
		}

		t, err := negotiation.PlanDirectAcceptance(req, actor, target, profile, now)
		if err != nil {
			return err
		}
		updated, err := tx.ServiceRequests().Transition(ctx, tx.DB(), t)
		if err != nil {
			return translateAccept(err)
		}
		rejected, err := tx.Bids().RejectPending(ctx, tx.DB(), requestID, nil, now)
		if err != nil {
			return translate(err, nil)
		}

		if err = enqueueRequestEvent(ctx, tx, updated, actor.ID, now); err != nil {
			return err
		}
		if err = enqueueBidEvents(ctx, tx, EventBidRejected, rejected, actor.ID, now); err != nil {
			return err
		}
		result = &TransitionResult{
			Request:      queries.NewServiceRequestView(updated),
			RejectedBids: queries.NewBidViews(rejected),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *serviceRequestUseCaseImpl) StartRoute(ctx context.Context, actor user.Actor, requestID uuid.UUID) (*TransitionResult, error) {
	var result *TransitionResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		req, err := tx.Reads().ServiceRequestByID(ctx, requestID)
		if err != nil {
			return translate(err, ErrServiceRequestNotFound)
		}

		t, err := negotiation.PlanStartRoute(req, actor, now)
		if err != nil {
			return err
		}
		updated, err := tx.ServiceRequests().Transition(ctx, tx.DB(), t)
		if err != nil {
			return translate(err, ErrServiceRequestNotFound)
		}

		if err = enqueueRequestEvent(ctx, tx, updated, actor.ID, now); err != nil {
			return err
		}
		result = &TransitionResult{Request: queries.NewServiceRequestView(updated), RejectedBids: []*queries.BidView{}}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Complete fixes the commission on the agreed price and records the split in
// the barber ledger within the same transaction.
func (uc *serviceRequestUseCaseImpl) Complete(ctx context.Context, actor user.Actor, requestID uuid.UUID) (*TransitionResult, error) {
	var result *TransitionResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		req, err := tx.Reads().ServiceRequestByID(ctx, requestID)
		if err != nil {
			return translate(err, ErrServiceRequestNotFound)
		}

		t, split, err := negotiation.PlanCompletion(req, actor, uc.calc, now)
		if err != nil {
			return err
		}
		updated, err := tx.ServiceRequests().Transition(ctx, tx.DB(), t)
		if err != nil {
			return translate(err, ErrServiceRequestNotFound)
		}
		if err = tx.Ledger().RecordCompletion(ctx, tx.DB(), updated.ID(), *updated.AssignedBarberID(), split, now); err != nil {
			return translate(err, nil)
		}

		if err = enqueueRequestEvent(ctx, tx, updated, actor.ID, now); err != nil {
			return err
		}
		result = &TransitionResult{Request: queries.NewServiceRequestView(updated), RejectedBids: []*queries.BidView{}}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *serviceRequestUseCaseImpl) Cancel(ctx context.Context, actor user.Actor, requestID uuid.UUID) (*TransitionResult, error) {
	var result *TransitionResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		req, err := tx.Reads().ServiceRequestByID(ctx, requestID)
		if err != nil {
			return translate(err, ErrServiceRequestNotFound)
		}

		t, err := negotiation.PlanCancellation(req, actor, now)
		if err != nil {
			return err
		}
		updated, err := tx.ServiceRequests().Transition(ctx, tx.DB(), t)
		if err != nil {
			return translate(err, ErrServiceRequestNotFound)
		}
		rejected, err := tx.Bids().RejectPending(ctx, tx.DB(), requestID, nil, now)
		if err != nil {
			return translate(err, nil)
		}

		if err = enqueueRequestEvent(ctx, tx, updated, actor.ID, now); err != nil {
			return err
		}
		if err = enqueueBidEvents(ctx, tx, EventBidRejected, rejected, actor.ID, now); err != nil {
			return err
		}
		result = &TransitionResult{
			Request:      queries.NewServiceRequestView(updated),
			RejectedBids: queries.NewBidViews(rejected),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func calculateRequestHash(in CreateServiceRequestInput) (string, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return "", errs.Wrap(err, "failed to hash create request")
	}
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}
