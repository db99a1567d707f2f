package commands

import (
	"context"
	"encoding/json"
	"time"

	"styleapp-backend/internal/domain/bid"
	"styleapp-backend/internal/domain/servicerequest"
	"styleapp-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	EventServiceRequestCreated   = "service_request.created"
	EventServiceRequestAccepted  = "service_request.accepted"
	EventServiceRequestOnRoute   = "service_request.on_route"
	EventServiceRequestCompleted = "service_request.completed"
	EventServiceRequestCancelled = "service_request.cancelled"
	EventBidCreated              = "bid.created"
	EventBidAccepted             = "bid.accepted"
	EventBidRejected             = "bid.rejected"
)

var statusEvents = map[servicerequest.Status]string{
	servicerequest.StatusOpen:      EventServiceRequestCreated,
	servicerequest.StatusAccepted:  EventServiceRequestAccepted,
	servicerequest.StatusOnRoute:   EventServiceRequestOnRoute,
	servicerequest.StatusCompleted: EventServiceRequestCompleted,
	servicerequest.StatusCancelled: EventServiceRequestCancelled,
}

type ServiceRequestEvent struct {
	RequestID        uuid.UUID  `json:"request_id"`
	ClientID         uuid.UUID  `json:"client_id"`
	Status           string     `json:"status"`
	Price            int64      `json:"price"`
	AssignedBarberID *uuid.UUID `json:"assigned_barber_id,omitempty"`
	AgreedPrice      *int64     `json:"agreed_price,omitempty"`
	AppCommission    *int64     `json:"app_commission,omitempty"`
	ActorID          uuid.UUID  `json:"actor_id"`
	OccurredAt       time.Time  `json:"occurred_at"`
}

type BidEvent struct {
	BidID      uuid.UUID `json:"bid_id"`
	RequestID  uuid.UUID `json:"request_id"`
	BarberID   uuid.UUID `json:"barber_id"`
	Amount     int64     `json:"amount"`
	Status     string    `json:"status"`
	ActorID    uuid.UUID `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// enqueueRequestEvent writes the outbox row for the request's current status.
func enqueueRequestEvent(ctx context.Context, tx shared.Tx, req *servicerequest.ServiceRequest, actorID uuid.UUID, at time.Time) error {
	payload, err := json.Marshal(ServiceRequestEvent{
		RequestID:        req.ID(),
		ClientID:         req.ClientID(),
		Status:           req.Status().String(),
		Price:            req.Price().Value(),
		AssignedBarberID: req.AssignedBarberID(),
		AgreedPrice:      req.AgreedPrice(),
		AppCommission:    req.AppCommission(),
		ActorID:          actorID,
		OccurredAt:       at,
	})
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), statusEvents[req.Status()], req.ID(), payload, at)
}

func enqueueBidEvents(ctx context.Context, tx shared.Tx, eventType string, bids []*bid.Bid, actorID uuid.UUID, at time.Time) error {
	for _, b := range bids {
		payload, err := json.Marshal(BidEvent{
			BidID:      b.ID(),
			RequestID:  b.ServiceRequestID(),
			BarberID:   b.BarberID(),
			Amount:     b.Amount(),
			Status:     b.Status().String(),
			ActorID:    actorID,
			OccurredAt: at,
		})
		if err != nil {
			return err
		}
		if err := tx.Notifications().CreateJob(ctx, tx.DB(), eventType, b.ServiceRequestID(), payload, at); err != nil {
			return err
		}
	}
	return nil
}
