package queries

import (
	"time"

	"github.com/google/uuid"
)

// ServiceRequestView is the read model of a service request.
type ServiceRequestView struct {
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

type BidView struct {
	ID               uuid.UUID  `json:"id"`
	ServiceRequestID uuid.UUID  `json:"service_request_id"`
	BarberID         uuid.UUID  `json:"barber_id"`
	Amount           int64      `json:"amount"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	DecidedAt        *time.Time `json:"decided_at,omitempty"`
}

type BarberProfileView struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	IsActive    bool      `json:"is_active"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BarberStatsView aggregates request counts and ledger totals for one barber.
type BarberStatsView struct {
	BarberID    uuid.UUID `json:"barber_id"`
	DisplayName string    `json:"display_name"`
	IsActive    bool      `json:"is_active"`
	Assigned    int64     `json:"assigned"`
	Completed   int64     `json:"completed"`
	Cancelled   int64     `json:"cancelled"`
	Gross       int64     `json:"gross"`
	Commission  int64     `json:"commission"`
	Net         int64     `json:"net"`
}

type CommissionReportRow struct {
	BarberID        uuid.UUID `json:"barber_id"`
	BarberName      string    `json:"barber_name"`
	CompletedCount  int64     `json:"completed_count"`
	CompletedTotal  int64     `json:"completed_total"`
	CommissionTotal int64     `json:"commission_total"`
	NetTotal        int64     `json:"net_total"`
}

type CommissionReportTotals struct {
	CompletedCount  int64 `json:"completed_count"`
	CompletedTotal  int64 `json:"completed_total"`
	CommissionTotal int64 `json:"commission_total"`
	NetTotal        int64 `json:"net_total"`
}

type CommissionReport struct {
	From    time.Time              `json:"from"`
	To      time.Time              `json:"to"`
	RateBPS int64                  `json:"rate_bps"`
	Rows    []CommissionReportRow  `json:"rows"`
	Totals  CommissionReportTotals `json:"totals"`
}
