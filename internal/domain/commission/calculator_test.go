//go:build unit

package commission_test

import (
	"testing"

	"styleapp-backend/internal/domain/commission"
	"styleapp-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCalculator(t *testing.T) {
	calc := commission.NewDefaultCalculator()

	testCases := []struct {
		name       string
		amount     int64
		commission int64
		net        int64
	}{
		{name: "accepted bid of 48000", amount: 48000, commission: 4800, net: 43200},
		{name: "original price of 50000", amount: 50000, commission: 5000, net: 45000},
		{name: "rounds half up at .5", amount: 15, commission: 2, net: 13},
		{name: "rounds down below .5", amount: 14, commission: 1, net: 13},
		{name: "rounds up above .5", amount: 16, commission: 2, net: 14},
		{name: "small amount", amount: 4, commission: 0, net: 4},
		{name: "zero amount", amount: 0, commission: 0, net: 0},
		{name: "largest supported amount", amount: commission.MaxAmount, commission: 92233720368548, net: 830103483316929},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := calc.Split(tc.amount)
			require.NoError(t, err)
			assert.Equal(t, commission.Breakdown{Gross: tc.amount, Commission: tc.commission, Net: tc.net}, got)
			assert.Equal(t, got.Gross, got.Commission+got.Net)
		})
	}
}

func TestCalculator_RoundingModes(t *testing.T) {
	testCases := []struct {
		rounding commission.Rounding
		amount   int64
		want     int64
	}{
		{rounding: commission.RoundHalfEven, amount: 25, want: 2},
		{rounding: commission.RoundHalfEven, amount: 35, want: 4},
		{rounding: commission.RoundHalfEven, amount: 36, want: 4},
		{rounding: commission.RoundDown, amount: 19, want: 1},
		{rounding: commission.RoundUp, amount: 11, want: 2},
		{rounding: commission.RoundUp, amount: 10, want: 1},
		{rounding: commission.RoundHalfUp, amount: 25, want: 3},
	}

	for _, tc := range testCases {
		t.Run(string(tc.rounding), func(t *testing.T) {
			calc, err := commission.NewCalculator(commission.DefaultRateBPS, tc.rounding)
			require.NoError(t, err)

			got, err := calc.Commission(tc.amount)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCalculator_ConfigurableRate(t *testing.T) {
	calc, err := commission.NewCalculator(1250, commission.RoundHalfUp)
	require.NoError(t, err)
	assert.Equal(t, int64(1250), calc.RateBPS())

	got, err := calc.Commission(48000)
	require.NoError(t, err)
	assert.Equal(t, int64(6000), got)
}

func TestNewCalculator_Invalid(t *testing.T) {
	_, err := commission.NewCalculator(-1, commission.RoundHalfUp)
	require.ErrorIs(t, err, commission.ErrInvalidRate)
	assert.True(t, errs.Is(err, errs.ErrValidation))

	_, err = commission.NewCalculator(10_001, commission.RoundHalfUp)
	require.ErrorIs(t, err, commission.ErrInvalidRate)

	_, err = commission.NewCalculator(1000, commission.Rounding("banker"))
	require.ErrorIs(t, err, commission.ErrInvalidRounding)
}

func TestCalculator_NegativeAmount(t *testing.T) {
	_, err := commission.NewDefaultCalculator().Commission(-10)
	require.ErrorIs(t, err, commission.ErrNegativeAmount)
}

func TestCalculator_AmountAboveMaximum(t *testing.T) {
	testCases := []struct {
		name    string
		rateBPS int64
		amount  int64
	}{
		{name: "default rate just past the bound", rateBPS: commission.DefaultRateBPS, amount: commission.MaxAmount + 1},
		{name: "default rate far past the bound", rateBPS: commission.DefaultRateBPS, amount: 10_000_000_000_000_000},
		{name: "full rate past the bound", rateBPS: 10_000, amount: commission.MaxAmount + 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calc, err := commission.NewCalculator(tc.rateBPS, commission.RoundHalfUp)
			require.NoError(t, err)

			_, err = calc.Split(tc.amount)
			require.ErrorIs(t, err, commission.ErrAmountTooLarge)
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}

func TestCalculator_FullRateAtMaximum(t *testing.T) {
	calc, err := commission.NewCalculator(10_000, commission.RoundHalfUp)
	require.NoError(t, err)

	got, err := calc.Split(commission.MaxAmount)
	require.NoError(t, err)
	assert.Equal(t, commission.Breakdown{Gross: commission.MaxAmount, Commission: commission.MaxAmount, Net: 0}, got)
}
