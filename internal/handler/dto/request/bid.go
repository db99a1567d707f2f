package request

import (
	"styleapp-backend/internal/usecase/commands"

	"github.com/google/uuid"
)

type SubmitBidRequest struct {
	ServiceRequestID uuid.UUID `json:"service_request_id" binding:"required"`
	Amount           int64     `json:"amount"`
}

func (r SubmitBidRequest) ToInput() commands.SubmitBidInput {
	return commands.SubmitBidInput{
		ServiceRequestID: r.ServiceRequestID,
		Amount:           r.Amount,
	}
}
