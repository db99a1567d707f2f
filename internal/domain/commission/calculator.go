package commission

import (
	"math"

	"styleapp-backend/internal/pkg/errs"
)

const (
	bpsDenominator = 10_000
	DefaultRateBPS = 1_000

	// MaxAmount is the largest amount whose commission fits in int64 at any
	// valid rate.
	MaxAmount = math.MaxInt64 / bpsDenominator
)

var (
	ErrInvalidRate     = errs.Mark(errs.New("commission rate must be between 0 and 10000 basis points"), errs.ErrValidation)
	ErrInvalidRounding = errs.Mark(errs.New("unknown commission rounding mode"), errs.ErrValidation)
	ErrNegativeAmount  = errs.Mark(errs.New("amount must not be negative"), errs.ErrValidation)
	ErrAmountTooLarge  = errs.Mark(errs.New("amount exceeds the supported maximum"), errs.ErrValidation)
)

type Rounding string

const (
	RoundHalfUp   Rounding = "half_up"
	RoundHalfEven Rounding = "half_even"
	RoundDown     Rounding = "down"
	RoundUp       Rounding = "up"
)

func ParseRounding(s string) (Rounding, error) {
	r := Rounding(s)
	switch r {
	case RoundHalfUp, RoundHalfEven, RoundDown, RoundUp:
		return r, nil
	default:
		return "", ErrInvalidRounding
	}
}

type Breakdown struct {
	Gross      int64
	Commission int64
	Net        int64
}

type Calculator interface {
	Commission(amount int64) (int64, error)
	Split(amount int64) (Breakdown, error)
	RateBPS() int64
}

type rateCalculator struct {
	rateBPS  int64
	rounding Rounding
}

func NewCalculator(rateBPS int64, rounding Rounding) (Calculator, error) {
	if rateBPS < 0 || rateBPS > bpsDenominator {
		return nil, ErrInvalidRate
	}
	if _, err := ParseRounding(string(rounding)); err != nil {
		return nil, err
	}
	return &rateCalculator{rateBPS: rateBPS, rounding: rounding}, nil
}

// NewDefaultCalculator takes 10% rounded half-up.
func NewDefaultCalculator() Calculator {
	return &rateCalculator{rateBPS: DefaultRateBPS, rounding: RoundHalfUp}
}

func (c *rateCalculator) RateBPS() int64 {
	return c.rateBPS
}

func (c *rateCalculator) Commission(amount int64) (int64, error) {
	if amount < 0 {
		return 0, ErrNegativeAmount
	}
	if amount > MaxAmount {
		return 0, ErrAmountTooLarge
	}
	num := amount * c.rateBPS
	q, r := num/bpsDenominator, num%bpsDenominator
	return q + c.roundUp(q, r), nil
}

func (c *rateCalculator) Split(amount int64) (Breakdown, error) {
	fee, err := c.Commission(amount)
	if err != nil {
		return Breakdown{}, err
	}
	return Breakdown{Gross: amount, Commission: fee, Net: amount - fee}, nil
}

// roundUp returns 1 when quotient q with remainder r must be rounded away from zero.
func (c *rateCalculator) roundUp(q, r int64) int64 {
	if r == 0 {
		return 0
	}
	twice := 2 * r
	switch c.rounding {
	case RoundDown:
		return 0
	case RoundUp:
		return 1
	case RoundHalfEven:
		if twice > bpsDenominator || (twice == bpsDenominator && q%2 == 1) {
			return 1
		}
		return 0
	default:
		if twice >= bpsDenominator {
			return 1
		}
		return 0
	}
}
