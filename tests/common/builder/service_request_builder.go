//go:build unit || e2e

package builder

import (
	"time"

	"styleapp-backend/internal/domain/servicerequest"
	"styleapp-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceRequestBuilder struct {
	ID               uuid.UUID
	ClientID         uuid.UUID
	ServiceType      string
	Address          string
	Latitude         *float64
	Longitude        *float64
	Price            int64
	Status           servicerequest.Status
	AssignedBarberID *uuid.UUID
	AcceptedBidID    *uuid.UUID
	AgreedPrice      *int64
	AppCommission    *int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewServiceRequestBuilder() *ServiceRequestBuilder {
	now := time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC)
	lat, lng := 4.711, -74.072
	return &ServiceRequestBuilder{
		ID:          uuid.New(),
		ClientID:    uuid.New(),
		ServiceType: "Corte + barba",
		Address:     "Calle 85 #15-20, Bogota",
		Latitude:    &lat,
		Longitude:   &lng,
		Price:       45000,
		Status:      servicerequest.StatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *ServiceRequestBuilder) With(mutate func(*ServiceRequestBuilder)) *ServiceRequestBuilder {
	mutate(b)
	return b
}

// Accepted moves the builder to an accepted request assigned to barberID at agreed.
func (b *ServiceRequestBuilder) Accepted(barberID uuid.UUID, agreed int64) *ServiceRequestBuilder {
	b.Status = servicerequest.StatusAccepted
	b.AssignedBarberID = &barberID
	b.AgreedPrice = &agreed
	return b
}

func (b *ServiceRequestBuilder) OnRoute(barberID uuid.UUID, agreed int64) *ServiceRequestBuilder {
	b.Accepted(barberID, agreed)
	b.Status = servicerequest.StatusOnRoute
	return b
}

// Build methods
func (b *ServiceRequestBuilder) BuildDomain() *servicerequest.ServiceRequest {
	return servicerequest.ReconstructServiceRequest(servicerequest.ReconstructParams{
		ID:               b.ID,
		ClientID:         b.ClientID,
		ServiceType:      b.ServiceType,
		Address:          b.Address,
		Latitude:         b.Latitude,
		Longitude:        b.Longitude,
		Price:            b.Price,
		Status:           b.Status,
		AssignedBarberID: b.AssignedBarberID,
		AcceptedBidID:    b.AcceptedBidID,
		AgreedPrice:      b.AgreedPrice,
		AppCommission:    b.AppCommission,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	})
}

func (b *ServiceRequestBuilder) BuildView() *queries.ServiceRequestView {
	return queries.NewServiceRequestView(b.BuildDomain())
}
