package commands

import (
	"styleapp-backend/internal/domain/negotiation"
	"styleapp-backend/internal/infra"
	"styleapp-backend/internal/pkg/errs"
)

const constraintOnePendingBid = "bids_one_pending_per_barber"

var (
	ErrServiceRequestNotFound = errs.Mark(errs.New("service request not found"), errs.ErrNotFound)
	ErrBidNotFound            = errs.Mark(errs.New("bid not found"), errs.ErrNotFound)
	ErrDuplicatePendingBid    = errs.Mark(errs.New("barber already has a pending bid on this service request"), errs.ErrConflict)
	ErrConcurrentUpdate       = errs.Mark(errs.New("state changed concurrently; reload and retry"), errs.ErrConflict)
	ErrIdempotencyKeyReused   = errs.Mark(errs.New("idempotency key was already used with a different request"), errs.ErrConflict)
	ErrIdempotencyInProgress  = errs.Mark(errs.New("request with this idempotency key is still in progress"), errs.ErrConflict)
	ErrRoleNotAllowed         = errs.Mark(errs.New("role is not allowed to perform this operation"), errs.ErrAuthorization)
	ErrReferenceNotFound      = errs.Mark(errs.New("referenced resource not found"), errs.ErrNotFound)
	ErrAlreadyExists          = errs.Mark(errs.New("resource already exists"), errs.ErrConflict)
)

// translate turns repository failures into taxonomy errors. Errors that
// already carry a category pass through.
func translate(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound), infra.IsKind(err, infra.KindForeignKeyViolated):
		if notFound != nil {
			return notFound
		}
		return ErrReferenceNotFound
	case infra.IsKind(err, infra.KindConflict):
		return ErrConcurrentUpdate
	case infra.IsKind(err, infra.KindDuplicateKey):
		if infra.ConstraintName(err) == constraintOnePendingBid {
			return ErrDuplicatePendingBid
		}
		return ErrAlreadyExists
	default:
		return err
	}
}

// translateAccept reports a lost race on the open request the way the
// engine does for a stale read.
func translateAccept(err error) error {
	if infra.IsKind(err, infra.KindConflict) {
		return negotiation.ErrRequestNoLongerOpen
	}
	return translate(err, ErrServiceRequestNotFound)
}
