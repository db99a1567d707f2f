package response

import (
	"time"

	"styleapp-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceRequestResponse struct {
	ID               uuid.UUID  `json:"id"`
	ClientID         uuid.UUID  `json:"client_id"`
	ServiceType      string     `json:"service_type"`
	Address          string     `json:"address"`
	Latitude         *float64   `json:"latitude,omitempty"`
	Longitude        *float64   `json:"longitude,omitempty"`
	Price            int64      `json:"price"`
	Status           string     `json:"status"`
	AssignedBarberID *uuid.UUID `json:"assigned_barber_id,omitempty"`
	AcceptedBidID    *uuid.UUID `json:"accepted_bid_id,omitempty"`
	AgreedPrice      *int64     `json:"agreed_price,omitempty"`
	AppCommission    *int64     `json:"app_commission,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	AcceptedAt       *time.Time `json:"accepted_at,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	CancelledAt      *time.Time `json:"cancelled_at,omitempty"`
}

type ServiceRequestListResponse struct {
	Items      []*ServiceRequestResponse `json:"items"`
	NextCursor *string                   `json:"next_cursor,omitempty"`
}

func FromServiceRequestView(v *queries.ServiceRequestView) *ServiceRequestResponse {
	return copyTo[ServiceRequestResponse](v)
}

func FromServiceRequestViews(views []*queries.ServiceRequestView) []*ServiceRequestResponse {
	return copyAll[ServiceRequestResponse](views)
}

func NewServiceRequestListResponse(views []*queries.ServiceRequestView, next *queries.Cursor) *ServiceRequestListResponse {
	res := &ServiceRequestListResponse{Items: FromServiceRequestViews(views)}
	if next != nil && next.After != "" {
		after := next.After
		res.NextCursor = &after
	}
	return res
}
