//go:build unit

package commands

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateRequestHash(t *testing.T) {
	lat, lng := 4.65, -74.05
	in := CreateServiceRequestInput{ServiceType: "Corte", Address: "Calle 85", Latitude: &lat, Longitude: &lng, Price: 45000}

	t.Run("equal input hashes equally", func(t *testing.T) {
		first, err := calculateRequestHash(in)
		require.NoError(t, err)
		second, err := calculateRequestHash(in)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Len(t, first, 64)
	})

	t.Run("changed price changes the hash", func(t *testing.T) {
		base, err := calculateRequestHash(in)
		require.NoError(t, err)
		other := in
		other.Price = 45001
		changed, err := calculateRequestHash(other)
		require.NoError(t, err)
		assert.NotEqual(t, base, changed)
	})

	t.Run("unencodable input is an error", func(t *testing.T) {
		nan := math.NaN()
		bad := in
		bad.Latitude = &nan

		got, err := calculateRequestHash(bad)
		require.Error(t, err)
		assert.Empty(t, got)
	})
}
