package negotiation

import (
	"time"

	"styleapp-backend/internal/domain/barber"
	"styleapp-backend/internal/domain/bid"
	"styleapp-backend/internal/domain/commission"
	"styleapp-backend/internal/domain/servicerequest"
	"styleapp-backend/internal/domain/user"

	"github.com/google/uuid"
)

// CheckBidSubmission guards createBid. Requests that left open reject any
// new bid with ErrRequestNotOpen.
func CheckBidSubmission(req *servicerequest.ServiceRequest, actor user.Actor, profile *barber.Profile) error {
	if !actor.IsBarber() {
		return ErrRoleNotAllowed
	}
	if req.Status() != servicerequest.StatusOpen {
		return ErrRequestNotOpen
	}
	if !barber.IsAvailable(profile) {
		return ErrBarberInactive
	}
	return nil
}

// PlanBidAcceptance binds the request to the bid's barber at the bid amount.
// The caller rejects the remaining pending bids in the same transaction.
func PlanBidAcceptance(req *servicerequest.ServiceRequest, b *bid.Bid, actor user.Actor, now time.Time) (servicerequest.Transition, error) {
	if !actor.IsClient() || !req.IsOwnedBy(actor.ID) {
		return servicerequest.Transition{}, ErrNotRequestOwner
	}
	if req.Status() != servicerequest.StatusOpen {
		return servicerequest.Transition{}, ErrRequestNoLongerOpen
	}
	if !b.IsPending() {
		return servicerequest.Transition{}, ErrBidNotPending
	}

	barberID := b.BarberID()
	bidID := b.ID()
	amount := b.Amount()
	return servicerequest.Transition{
		RequestID:        req.ID(),
		From:             servicerequest.StatusOpen,
		To:               servicerequest.StatusAccepted,
		AssignedBarberID: &barberID,
		AcceptedBidID:    &bidID,
		AgreedPrice:      &amount,
		At:               now,
	}, nil
}

// PlanDirectAcceptance matches a barber without a bid, at the request's own
// price. A barber selects themselves; a client must name the barber.
func PlanDirectAcceptance(req *servicerequest.ServiceRequest, actor user.Actor, barberID uuid.UUID, profile *barber.Profile, now time.Time) (servicerequest.Transition, error) {
	switch {
	case actor.IsBarber():
		barberID = actor.ID
	case actor.IsClient():
		if !req.IsOwnedBy(actor.ID) {
			return servicerequest.Transition{}, ErrNotRequestOwner
		}
		if barberID == uuid.Nil {
			return servicerequest.Transition{}, ErrBarberRequired
		}
	default:
		return servicerequest.Transition{}, ErrRoleNotAllowed
	}
	if req.Status() != servicerequest.StatusOpen {
		return servicerequest.Transition{}, ErrRequestNoLongerOpen
	}
	if !barber.IsAvailable(profile) {
		return servicerequest.Transition{}, ErrBarberInactive
	}

	price := req.Price().Value()
	return servicerequest.Transition{
		RequestID:        req.ID(),
		From:             servicerequest.StatusOpen,
		To:               servicerequest.StatusAccepted,
		AssignedBarberID: &barberID,
		AgreedPrice:      &price,
		At:               now,
	}, nil
}

// CheckBidRejection guards an explicit client rejection. The request
// itself never changes status.
func CheckBidRejection(req *servicerequest.ServiceRequest, b *bid.Bid, actor user.Actor) error {
	if !actor.IsClient() || !req.IsOwnedBy(actor.ID) {
		return ErrNotRequestOwner
	}
	if req.Status() != servicerequest.StatusOpen {
		return ErrRequestNotOpen
	}
	if !b.IsPending() {
		return ErrBidNotPending
	}
	return nil
}

func PlanStartRoute(req *servicerequest.ServiceRequest, actor user.Actor, now time.Time) (servicerequest.Transition, error) {
	if !actor.IsBarber() {
		return servicerequest.Transition{}, ErrRoleNotAllowed
	}
	if req.Status() != servicerequest.StatusAccepted {
		return servicerequest.Transition{}, ErrCannotStartRoute
	}
	if !req.IsAssignedTo(actor.ID) {
		return servicerequest.Transition{}, ErrNotAssignedBarber
	}
	return servicerequest.Transition{
		RequestID: req.ID(),
		From:      servicerequest.StatusAccepted,
		To:        servicerequest.StatusOnRoute,
		At:        now,
	}, nil
}

// PlanCompletion computes the commission on the agreed price; the returned
// breakdown is what the ledger records.
func PlanCompletion(req *servicerequest.ServiceRequest, actor user.Actor, calc commission.Calculator, now time.Time) (servicerequest.Transition, commission.Breakdown, error) {
	if !actor.IsBarber() {
		return servicerequest.Transition{}, commission.Breakdown{}, ErrRoleNotAllowed
	}
	if req.Status() != servicerequest.StatusOnRoute {
		return servicerequest.Transition{}, commission.Breakdown{}, ErrCannotComplete
	}
	if !req.IsAssignedTo(actor.ID) {
		return servicerequest.Transition{}, commission.Breakdown{}, ErrNotAssignedBarber
	}

	split, err := calc.Split(req.CommissionBase())
	if err != nil {
		return servicerequest.Transition{}, commission.Breakdown{}, err
	}
	fee := split.Commission
	return servicerequest.Transition{
		RequestID:     req.ID(),
		From:          servicerequest.StatusOnRoute,
		To:            servicerequest.StatusCompleted,
		AppCommission: &fee,
		At:            now,
	}, split, nil
}

// PlanCancellation lets the owner client or an admin cancel while open or
// accepted, and the assigned barber while accepted.
func PlanCancellation(req *servicerequest.ServiceRequest, actor user.Actor, now time.Time) (servicerequest.Transition, error) {
	switch {
	case actor.IsAdmin():
	case actor.IsClient() && req.IsOwnedBy(actor.ID):
	case actor.IsBarber() && req.IsAssignedTo(actor.ID):
	default:
		return servicerequest.Transition{}, ErrNotAllowedToCancel
	}
	if !req.Status().CanTransitionTo(servicerequest.StatusCancelled) {
		return servicerequest.Transition{}, ErrCannotCancel
	}
	return servicerequest.Transition{
		RequestID: req.ID(),
		From:      req.Status(),
		To:        servicerequest.StatusCancelled,
		At:        now,
	}, nil
}
