package servicerequest

import (
	"time"

	"github.com/google/uuid"
)

type ServiceRequest struct {
	id               uuid.UUID
	clientID         uuid.UUID
	serviceType      ServiceType
	address          Address
	coordinates      Coordinates
	price            Price
	status           Status
	assignedBarberID *uuid.UUID
	acceptedBidID    *uuid.UUID
	agreedPrice      *int64
	appCommission    *int64
	createdAt        time.Time
	updatedAt        time.Time
	acceptedAt       *time.Time
	completedAt      *time.Time
	cancelledAt      *time.Time
}

func NewServiceRequest(clientID uuid.UUID, serviceType, address string, latitude, longitude *float64, price int64, now time.Time) (*ServiceRequest, error) {
	st, err := NewServiceType(serviceType)
	if err != nil {
		return nil, err
	}
	addr, err := NewAddress(address)
	if err != nil {
		return nil, err
	}
	coords, err := NewCoordinates(latitude, longitude)
	if err != nil {
		return nil, err
	}
	p, err := NewPrice(price)
	if err != nil {
		return nil, err
	}

	return &ServiceRequest{
		id:          uuid.New(),
		clientID:    clientID,
		serviceType: st,
		address:     addr,
		coordinates: coords,
		price:       p,
		status:      StatusOpen,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructParams carries persisted state; it is trusted and not re-validated.
type ReconstructParams struct {
	ID               uuid.UUID
	ClientID         uuid.UUID
	ServiceType      string
	Address          string
	Latitude         *float64
	Longitude        *float64
	Price            int64
	Status           Status
	AssignedBarberID *uuid.UUID
	AcceptedBidID    *uuid.UUID
	AgreedPrice      *int64
	AppCommission    *int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
	AcceptedAt       *time.Time
	CompletedAt      *time.Time
	CancelledAt      *time.Time
}

func ReconstructServiceRequest(p ReconstructParams) *ServiceRequest {
	return &ServiceRequest{
		id:               p.ID,
		clientID:         p.ClientID,
		serviceType:      ServiceType{value: p.ServiceType},
		address:          Address{value: p.Address},
		coordinates:      Coordinates{latitude: p.Latitude, longitude: p.Longitude},
		price:            Price{value: p.Price},
		status:           p.Status,
		assignedBarberID: p.AssignedBarberID,
		acceptedBidID:    p.AcceptedBidID,
		agreedPrice:      p.AgreedPrice,
		appCommission:    p.AppCommission,
		createdAt:        p.CreatedAt,
		updatedAt:        p.UpdatedAt,
		acceptedAt:       p.AcceptedAt,
		completedAt:      p.CompletedAt,
		cancelledAt:      p.CancelledAt,
	}
}

func (r *ServiceRequest) ID() uuid.UUID                { return r.id }
func (r *ServiceRequest) ClientID() uuid.UUID          { return r.clientID }
func (r *ServiceRequest) ServiceType() ServiceType     { return r.serviceType }
func (r *ServiceRequest) Address() Address             { return r.address }
func (r *ServiceRequest) Coordinates() Coordinates     { return r.coordinates }
func (r *ServiceRequest) Price() Price                 { return r.price }
func (r *ServiceRequest) Status() Status               { return r.status }
func (r *ServiceRequest) AssignedBarberID() *uuid.UUID { return r.assignedBarberID }
func (r *ServiceRequest) AcceptedBidID() *uuid.UUID    { return r.acceptedBidID }
func (r *ServiceRequest) AgreedPrice() *int64          { return r.agreedPrice }
func (r *ServiceRequest) AppCommission() *int64        { return r.appCommission }
func (r *ServiceRequest) CreatedAt() time.Time         { return r.createdAt }
func (r *ServiceRequest) UpdatedAt() time.Time         { return r.updatedAt }
func (r *ServiceRequest) AcceptedAt() *time.Time       { return r.acceptedAt }
func (r *ServiceRequest) CompletedAt() *time.Time      { return r.completedAt }
func (r *ServiceRequest) CancelledAt() *time.Time      { return r.cancelledAt }

func (r *ServiceRequest) IsOwnedBy(clientID uuid.UUID) bool {
	return r.clientID == clientID
}

func (r *ServiceRequest) IsAssignedTo(barberID uuid.UUID) bool {
	return r.assignedBarberID != nil && *r.assignedBarberID == barberID
}

// CommissionBase is the price the commission is taken from: the agreed
// price fixed at acceptance, or the original price when none was recorded.
func (r *ServiceRequest) CommissionBase() int64 {
	if r.agreedPrice != nil {
		return *r.agreedPrice
	}
	return r.price.Value()
}
