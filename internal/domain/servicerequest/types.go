package servicerequest

import "strings"

type Status string

const (
	StatusOpen      Status = "open"
	StatusAccepted  Status = "accepted"
	StatusOnRoute   Status = "on_route"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// forward-only lifecycle; cancelled is reachable from open and accepted only
var allowedTransitions = map[Status][]Status{
	StatusOpen:     {StatusAccepted, StatusCancelled},
	StatusAccepted: {StatusOnRoute, StatusCancelled},
	StatusOnRoute:  {StatusCompleted},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusAccepted, StatusOnRoute, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// HasAssignedBarber reports whether a request in this status must carry an assigned barber.
func (s Status) HasAssignedBarber() bool {
	return s == StatusAccepted || s == StatusOnRoute || s == StatusCompleted
}

func (s Status) CanTransitionTo(to Status) bool {
	for _, next := range allowedTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func ParseStatus(s string) (Status, error) {
	status := Status(strings.TrimSpace(strings.ToLower(s)))
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

func ParseStatuses(values []string) ([]Status, error) {
	out := make([]Status, 0, len(values))
	for _, v := range values {
		st, err := ParseStatus(v)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}
