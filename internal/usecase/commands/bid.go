package commands

import (
	"context"

	"styleapp-backend/internal/domain/barber"
	"styleapp-backend/internal/domain/bid"
	"styleapp-backend/internal/domain/negotiation"
	"styleapp-backend/internal/domain/user"
	"styleapp-backend/internal/pkg/clock"
	"styleapp-backend/internal/usecase/queries"
	"styleapp-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubmitBidInput struct {
	ServiceRequestID uuid.UUID
	Amount           int64
}

type AcceptBidResult struct {
	Request      *queries.ServiceRequestView
	Bid          *queries.BidView
	RejectedBids []*queries.BidView
}

type BidCommands interface {
	Submit(ctx context.Context, actor user.Actor, in SubmitBidInput) (*queries.BidView, error)
	Accept(ctx context.Context, actor user.Actor, bidID uuid.UUID) (*AcceptBidResult, error)
	Reject(ctx context.Context, actor user.Actor, bidID uuid.UUID) (*queries.BidView, error)
}

type bidUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBidCommands(uow shared.UnitOfWork, clk clock.Clock) BidCommands {
	return &bidUseCaseImpl{uow: uow, clock: clk}
}

// Submit holds a share lock on the request so an acceptance cannot commit
// between the open check and the insert.
func (uc *bidUseCaseImpl) Submit(ctx context.Context, actor user.Actor, in SubmitBidInput) (*queries.BidView, error) {
	var result *queries.BidView
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		req, err := tx.Reads().ServiceRequestForShare(ctx, in.ServiceRequestID)
		if err != nil {
			return translate(err, ErrServiceRequestNotFound)
		}
		var profile *barber.Profile
		if actor.IsBarber() {
			if profile, err = tx.Reads().BarberByID(ctx, actor.ID); err != nil {
				return err
			}
		}

		if err = negotiation.CheckBidSubmission(req, actor, profile); err != nil {
			return err
		}
		b, err := bid.NewBid(req.ID(), actor.ID, in.Amount, now)
		if err != nil {
			return err
		}

		pending, err := tx.Reads().HasPendingBid(ctx, req.ID(), actor.ID)
		if err != nil {
			return err
		}
		if pending {
			return ErrDuplicatePendingBid
		}

		created, err := tx.Bids().Create(ctx, tx.DB(), b)
		if err != nil {
			return translate(err, ErrServiceRequestNotFound)
		}
		if err = enqueueBidEvents(ctx, tx, EventBidCreated, []*bid.Bid{created}, actor.ID, now); err != nil {
			return err
		}
		result = queries.NewBidView(created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Accept moves the request first; its compare-and-set decides between racing
// acceptances before any bid row changes.
func (uc *bidUseCaseImpl) Accept(ctx context.Context, actor user.Actor, bidID uuid.UUID) (*AcceptBidResult, error) {
	var result *AcceptBidResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		b, err := tx.Reads().BidByID(ctx, bidID)
		if err != nil {
			return translate(err, ErrBidNotFound)
		}
		req, err := tx.Reads().ServiceRequestByID(ctx, b.ServiceRequestID())
		if err != nil {
			return translate(err, ErrServiceRequestNotFound)
		}

		t, err := negotiation.PlanBidAcceptance(req, b, actor, now)
		if err != nil {
			return err
		}
		updated, err := tx.ServiceRequests().Transition(ctx, tx.DB(), t)
		if err != nil {
			return translateAccept(err)
		}
		accepted, err := tx.Bids().Transition(ctx, tx.DB(), bidID, bid.StatusPending, bid.StatusAccepted, now)
		if err != nil {
			return translate(err, ErrBidNotFound)
		}
		rejected, err := tx.Bids().RejectPending(ctx, tx.DB(), req.ID(), &bidID, now)
		if err != nil {
			return translate(err, nil)
		}

		if err = enqueueRequestEvent(ctx, tx, updated, actor.ID, now); err != nil {
			return err
		}
		if err = enqueueBidEvents(ctx, tx, EventBidAccepted, []*bid.Bid{accepted}, actor.ID, now); err != nil {
			return err
		}
		if err = enqueueBidEvents(ctx, tx, EventBidRejected, rejected, actor.ID, now); err != nil {
			return err
		}
		result = &AcceptBidResult{
			Request:      queries.NewServiceRequestView(updated),
			Bid:          queries.NewBidView(accepted),
			RejectedBids: queries.NewBidViews(rejected),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *bidUseCaseImpl) Reject(ctx context.Context, actor user.Actor, bidID uuid.UUID) (*queries.BidView, error) {
	var result *queries.BidView
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		b, err := tx.Reads().BidByID(ctx, bidID)
		if err != nil {
			return translate(err, ErrBidNotFound)
		}
		req, err := tx.Reads().ServiceRequestForShare(ctx, b.ServiceRequestID())
		if err != nil {
			return translate(err, ErrServiceRequestNotFound)
		}

		if err = negotiation.CheckBidRejection(req, b, actor); err != nil {
			return err
		}
		rejected, err := tx.Bids().Transition(ctx, tx.DB(), bidID, bid.StatusPending, bid.StatusRejected, now)
		if err != nil {
			return translate(err, ErrBidNotFound)
		}

		if err = enqueueBidEvents(ctx, tx, EventBidRejected, []*bid.Bid{rejected}, actor.ID, now); err != nil {
			return err
		}
		result = queries.NewBidView(rejected)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
