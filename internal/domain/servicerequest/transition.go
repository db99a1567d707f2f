package servicerequest

import (
	"time"

	"github.com/google/uuid"
)

// Transition is a compare-and-set intent: it only applies while the stored
// status still equals From.
type Transition struct {
	RequestID        uuid.UUID
	From             Status
	To               Status
	AssignedBarberID *uuid.UUID
	AcceptedBidID    *uuid.UUID
	AgreedPrice      *int64
	AppCommission    *int64
	At               time.Time
}

func (t Transition) Validate() error {
	if !t.From.CanTransitionTo(t.To) {
		return ErrInvalidTransition
	}
	if t.To == StatusAccepted && t.AssignedBarberID == nil {
		return ErrMissingAssignment
	}
	if t.To != StatusAccepted && (t.AssignedBarberID != nil || t.AgreedPrice != nil || t.AcceptedBidID != nil) {
		return ErrUnexpectedAgreement
	}
	if (t.To == StatusCompleted) != (t.AppCommission != nil) {
		return ErrMissingCommission
	}
	return nil
}
