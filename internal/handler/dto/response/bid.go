package response

import (
	"time"

	"styleapp-backend/internal/usecase/commands"
	"styleapp-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type BidResponse struct {
	ID               uuid.UUID  `json:"id"`
	ServiceRequestID uuid.UUID  `json:"service_request_id"`
	BarberID         uuid.UUID  `json:"barber_id"`
	Amount           int64      `json:"amount"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	DecidedAt        *time.Time `json:"decided_at,omitempty"`
}

type AcceptBidResponse struct {
	ServiceRequest *ServiceRequestResponse `json:"service_request"`
	Bid            *BidResponse            `json:"bid"`
	RejectedBids   []*BidResponse          `json:"rejected_bids"`
}

func FromBidView(v *queries.BidView) *BidResponse {
	return copyTo[BidResponse](v)
}

func FromBidViews(views []*queries.BidView) []*BidResponse {
	return copyAll[BidResponse](views)
}

func FromAcceptBidResult(r *commands.AcceptBidResult) *AcceptBidResponse {
	return &AcceptBidResponse{
		ServiceRequest: FromServiceRequestView(r.Request),
		Bid:            FromBidView(r.Bid),
		RejectedBids:   FromBidViews(r.RejectedBids),
	}
}
