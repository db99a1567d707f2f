//go:build unit

package servicerequest_test

import (
	"math"
	"strings"
	"testing"
	"time"

	"styleapp-backend/internal/domain/commission"
	"styleapp-backend/internal/domain/servicerequest"
	"styleapp-backend/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func TestNewServiceRequest(t *testing.T) {
	now := time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC)
	clientID := uuid.New()

	tests := []struct {
		name        string
		serviceType string
		address     string
		lat, lng    *float64
		price       int64
		wantErr     error
	}{
		{name: "valid with coordinates", serviceType: " Corte ", address: "Calle 85", lat: f64(4.7), lng: f64(-74.0), price: 45000},
		{name: "valid without coordinates", serviceType: "Barba", address: "Calle 85", price: 1},
		{name: "zero price", serviceType: "Corte", address: "Calle 85", price: 0, wantErr: servicerequest.ErrPriceNotPositive},
		{name: "negative price", serviceType: "Corte", address: "Calle 85", price: -5, wantErr: servicerequest.ErrPriceNotPositive},
		{name: "largest supported price", serviceType: "Corte", address: "Calle 85", price: commission.MaxAmount},
		{name: "price past the supported maximum", serviceType: "Corte", address: "Calle 85", price: commission.MaxAmount + 1, wantErr: servicerequest.ErrPriceTooLarge},
		{name: "price of 1e16", serviceType: "Corte", address: "Calle 85", price: 10_000_000_000_000_000, wantErr: servicerequest.ErrPriceTooLarge},
		{name: "blank service type", serviceType: "   ", address: "Calle 85", price: 1, wantErr: servicerequest.ErrEmptyServiceType},
		{name: "service type too long", serviceType: strings.Repeat("a", servicerequest.MaxServiceTypeLength+1), address: "x", price: 1, wantErr: servicerequest.ErrServiceTypeTooLong},
		{name: "blank address", serviceType: "Corte", address: "", price: 1, wantErr: servicerequest.ErrEmptyAddress},
		{name: "only latitude", serviceType: "Corte", address: "x", lat: f64(4.7), price: 1, wantErr: servicerequest.ErrInvalidCoordinates},
		{name: "latitude not a number", serviceType: "Corte", address: "x", lat: f64(math.NaN()), lng: f64(0), price: 1, wantErr: servicerequest.ErrInvalidCoordinates},
		{name: "latitude out of range", serviceType: "Corte", address: "x", lat: f64(91), lng: f64(0), price: 1, wantErr: servicerequest.ErrInvalidCoordinates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := servicerequest.NewServiceRequest(clientID, tt.serviceType, tt.address, tt.lat, tt.lng, tt.price, now)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, errs.Is(err, errs.ErrValidation))
				assert.Nil(t, req)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, req.ID())
			assert.Equal(t, clientID, req.ClientID())
			assert.Equal(t, servicerequest.StatusOpen, req.Status())
			assert.Equal(t, strings.TrimSpace(tt.serviceType), req.ServiceType().String())
			assert.Nil(t, req.AssignedBarberID())
			assert.Nil(t, req.AppCommission())
			assert.Equal(t, tt.price, req.CommissionBase())
		})
	}
}

func TestStatus_CanTransitionTo(t *testing.T) {
	all := []servicerequest.Status{
		servicerequest.StatusOpen,
		servicerequest.StatusAccepted,
		servicerequest.StatusOnRoute,
		servicerequest.StatusCompleted,
		servicerequest.StatusCancelled,
	}
	legal := map[[2]servicerequest.Status]bool{
		{servicerequest.StatusOpen, servicerequest.StatusAccepted}:     true,
		{servicerequest.StatusOpen, servicerequest.StatusCancelled}:    true,
		{servicerequest.StatusAccepted, servicerequest.StatusOnRoute}:  true,
		{servicerequest.StatusAccepted, servicerequest.StatusCancelled}: true,
		{servicerequest.StatusOnRoute, servicerequest.StatusCompleted}: true,
	}

	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, legal[[2]servicerequest.Status{from, to}], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestParseStatuses(t *testing.T) {
	got, err := servicerequest.ParseStatuses([]string{" Accepted", "on_route"})
	require.NoError(t, err)
	assert.Equal(t, []servicerequest.Status{servicerequest.StatusAccepted, servicerequest.StatusOnRoute}, got)

	_, err = servicerequest.ParseStatuses([]string{"done"})
	assert.ErrorIs(t, err, servicerequest.ErrInvalidStatus)
}

func TestTransition_Validate(t *testing.T) {
	barberID := uuid.New()
	price := int64(45000)
	fee := int64(4500)

	tests := []struct {
		name string
		tr   servicerequest.Transition
		want error
	}{
		{name: "accept with barber", tr: servicerequest.Transition{From: servicerequest.StatusOpen, To: servicerequest.StatusAccepted, AssignedBarberID: &barberID, AgreedPrice: &price}},
		{name: "accept without barber", tr: servicerequest.Transition{From: servicerequest.StatusOpen, To: servicerequest.StatusAccepted}, want: servicerequest.ErrMissingAssignment},
		{name: "skip to completed", tr: servicerequest.Transition{From: servicerequest.StatusOpen, To: servicerequest.StatusCompleted, AppCommission: &fee}, want: servicerequest.ErrInvalidTransition},
		{name: "complete without commission", tr: servicerequest.Transition{From: servicerequest.StatusOnRoute, To: servicerequest.StatusCompleted}, want: servicerequest.ErrMissingCommission},
		{name: "commission outside completion", tr: servicerequest.Transition{From: servicerequest.StatusAccepted, To: servicerequest.StatusOnRoute, AppCommission: &fee}, want: servicerequest.ErrMissingCommission},
		{name: "reassign on route", tr: servicerequest.Transition{From: servicerequest.StatusAccepted, To: servicerequest.StatusOnRoute, AssignedBarberID: &barberID}, want: servicerequest.ErrUnexpectedAgreement},
		{name: "leave terminal", tr: servicerequest.Transition{From: servicerequest.StatusCancelled, To: servicerequest.StatusOpen}, want: servicerequest.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tr.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
