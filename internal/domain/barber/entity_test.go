//go:build unit

package barber_test

import (
	"strings"
	"testing"
	"time"

	"styleapp-backend/internal/domain/barber"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfile(t *testing.T) {
	p, err := barber.NewProfile(uuid.New(), "  Juan Perez ", true, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "Juan Perez", p.DisplayName())

	_, err = barber.NewProfile(uuid.New(), strings.Repeat("ñ", barber.MaxDisplayNameLength+1), true, time.Now())
	assert.ErrorIs(t, err, barber.ErrDisplayNameTooLong)
}

func TestIsAvailable(t *testing.T) {
	assert.True(t, barber.IsAvailable(nil))
	assert.True(t, barber.IsAvailable(barber.ReconstructProfile(uuid.New(), "", true, time.Now())))
	assert.False(t, barber.IsAvailable(barber.ReconstructProfile(uuid.New(), "", false, time.Now())))
}
