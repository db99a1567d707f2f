package queries

import (
	"styleapp-backend/internal/domain/barber"
	"styleapp-backend/internal/domain/bid"
	"styleapp-backend/internal/domain/servicerequest"
)

// Commands answer with the same views the read side serves.

func NewServiceRequestView(r *servicerequest.ServiceRequest) *ServiceRequestView {
	return &ServiceRequestView{
		ID:               r.ID(),
		ClientID:         r.ClientID(),
		ServiceType:      r.ServiceType().String(),
		Address:          r.Address().String(),
		Latitude:         r.Coordinates().Latitude(),
		Longitude:        r.Coordinates().Longitude(),
		Price:            r.Price().Value(),
		Status:           r.Status().String(),
		AssignedBarberID: r.AssignedBarberID(),
		AcceptedBidID:    r.AcceptedBidID(),
		AgreedPrice:      r.AgreedPrice(),
		AppCommission:    r.AppCommission(),
		CreatedAt:        r.CreatedAt(),
		UpdatedAt:        r.UpdatedAt(),
		AcceptedAt:       r.AcceptedAt(),
		CompletedAt:      r.CompletedAt(),
		CancelledAt:      r.CancelledAt(),
	}
}

func NewBidView(b *bid.Bid) *BidView {
	return &BidView{
		ID:               b.ID(),
		ServiceRequestID: b.ServiceRequestID(),
		BarberID:         b.BarberID(),
		Amount:           b.Amount(),
		Status:           b.Status().String(),
		CreatedAt:        b.CreatedAt(),
		DecidedAt:        b.DecidedAt(),
	}
}

func NewBidViews(bids []*bid.Bid) []*BidView {
	views := make([]*BidView, len(bids))
	for i, b := range bids {
		views[i] = NewBidView(b)
	}
	return views
}

func NewBarberProfileView(p *barber.Profile) *BarberProfileView {
	return &BarberProfileView{
		ID:          p.ID(),
		DisplayName: p.DisplayName(),
		IsActive:    p.IsActive(),
		UpdatedAt:   p.UpdatedAt(),
	}
}
