package servicerequest

import (
	"math"
	"strings"
	"unicode/utf8"

	"styleapp-backend/internal/domain/commission"
	"styleapp-backend/internal/pkg/errs"
)

const (
	MaxServiceTypeLength = 200
	MaxAddressLength     = 500
)

var (
	ErrPriceNotPositive    = errs.Mark(errs.New("price must be greater than zero"), errs.ErrValidation)
	ErrPriceTooLarge       = errs.Mark(errs.New("price exceeds the supported maximum"), errs.ErrValidation)
	ErrEmptyServiceType    = errs.Mark(errs.New("service type is required"), errs.ErrValidation)
	ErrServiceTypeTooLong  = errs.Mark(errs.New("service type exceeds maximum length"), errs.ErrValidation)
	ErrEmptyAddress        = errs.Mark(errs.New("address is required"), errs.ErrValidation)
	ErrAddressTooLong      = errs.Mark(errs.New("address exceeds maximum length"), errs.ErrValidation)
	ErrInvalidCoordinates  = errs.Mark(errs.New("latitude and longitude must be given together and be in range"), errs.ErrValidation)
	ErrInvalidStatus       = errs.Mark(errs.New("invalid service request status"), errs.ErrValidation)
	ErrInvalidTransition   = errs.Mark(errs.New("status transition is not allowed"), errs.ErrInvalidState)
	ErrMissingAssignment   = errs.Mark(errs.New("accepted request requires an assigned barber"), errs.ErrValidation)
	ErrMissingCommission   = errs.Mark(errs.New("completed request requires a commission"), errs.ErrValidation)
	ErrUnexpectedAgreement = errs.Mark(errs.New("only acceptance may set the agreed price"), errs.ErrValidation)
)

// ServiceType holds the requested services, e.g. "corte, barba".
type ServiceType struct {
	value string
}

func NewServiceType(s string) (ServiceType, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return ServiceType{}, ErrEmptyServiceType
	}
	if utf8.RuneCountInString(t) > MaxServiceTypeLength {
		return ServiceType{}, ErrServiceTypeTooLong
	}
	return ServiceType{value: t}, nil
}

func (s ServiceType) String() string { return s.value }

type Address struct {
	value string
}

func NewAddress(s string) (Address, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Address{}, ErrEmptyAddress
	}
	if utf8.RuneCountInString(t) > MaxAddressLength {
		return Address{}, ErrAddressTooLong
	}
	return Address{value: t}, nil
}

func (a Address) String() string { return a.value }

// Coordinates are optional; when present both axes are set.
type Coordinates struct {
	latitude  *float64
	longitude *float64
}

func NewCoordinates(lat, lng *float64) (Coordinates, error) {
	if lat == nil && lng == nil {
		return Coordinates{}, nil
	}
	if lat == nil || lng == nil {
		return Coordinates{}, ErrInvalidCoordinates
	}
	if math.IsNaN(*lat) || math.IsNaN(*lng) || *lat < -90 || *lat > 90 || *lng < -180 || *lng > 180 {
		return Coordinates{}, ErrInvalidCoordinates
	}
	la, lo := *lat, *lng
	return Coordinates{latitude: &la, longitude: &lo}, nil
}

func (c Coordinates) Latitude() *float64  { return c.latitude }
func (c Coordinates) Longitude() *float64 { return c.longitude }
func (c Coordinates) IsSet() bool         { return c.latitude != nil && c.longitude != nil }

// Price is an amount in whole currency units.
type Price struct {
	value int64
}

func NewPrice(v int64) (Price, error) {
	if v <= 0 {
		return Price{}, ErrPriceNotPositive
	}
	if v > commission.MaxAmount {
		return Price{}, ErrPriceTooLarge
	}
	return Price{value: v}, nil
}

func (p Price) Value() int64 { return p.value }
