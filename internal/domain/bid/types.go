package bid

import (
	"strings"

	"styleapp-backend/internal/pkg/errs"
)

var (
	ErrAmountNotPositive = errs.Mark(errs.New("bid amount must be greater than zero"), errs.ErrValidation)
	ErrAmountTooLarge    = errs.Mark(errs.New("bid amount exceeds the supported maximum"), errs.ErrValidation)
	ErrInvalidStatus     = errs.Mark(errs.New("invalid bid status"), errs.ErrValidation)
	ErrInvalidTransition = errs.Mark(errs.New("bid status transition is not allowed"), errs.ErrInvalidState)
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

// pending is the only non-terminal state
func (s Status) CanTransitionTo(to Status) bool {
	return s == StatusPending && (to == StatusAccepted || to == StatusRejected)
}

func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
