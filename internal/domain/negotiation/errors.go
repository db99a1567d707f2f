package negotiation

import "styleapp-backend/internal/pkg/errs"

var (
	ErrRequestNotOpen      = errs.Mark(errs.New("service request is not open for bidding"), errs.ErrInvalidState)
	ErrRequestNoLongerOpen = errs.Mark(errs.New("service request is no longer open"), errs.ErrConflict)
	ErrBidNotPending       = errs.Mark(errs.New("bid is not pending"), errs.ErrInvalidState)
	ErrBarberInactive      = errs.Mark(errs.New("barber is not active"), errs.ErrInvalidState)
	ErrCannotStartRoute    = errs.Mark(errs.New("service request must be accepted to start the route"), errs.ErrInvalidState)
	ErrCannotComplete      = errs.Mark(errs.New("service request must be on route to complete"), errs.ErrInvalidState)
	ErrCannotCancel        = errs.Mark(errs.New("service request can only be cancelled while open or accepted"), errs.ErrInvalidState)

	ErrBarberRequired = errs.Mark(errs.New("barber_id is required when a client accepts directly"), errs.ErrValidation)

	ErrRoleNotAllowed     = errs.Mark(errs.New("role is not allowed to perform this operation"), errs.ErrAuthorization)
	ErrNotRequestOwner    = errs.Mark(errs.New("only the requesting client may perform this operation"), errs.ErrAuthorization)
	ErrNotAssignedBarber  = errs.Mark(errs.New("only the assigned barber may perform this operation"), errs.ErrAuthorization)
	ErrNotAllowedToCancel = errs.Mark(errs.New("actor may not cancel this service request"), errs.ErrAuthorization)
)
