//go:build unit

package user_test

import (
	"testing"

	"styleapp-backend/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	testCases := []struct {
		input string
		want  user.Role
		errIs error
	}{
		{input: "client", want: user.RoleClient},
		{input: "barber", want: user.RoleBarber},
		{input: "admin", want: user.RoleAdmin},
		{input: "viewer", errIs: user.ErrInvalidRole},
		{input: "", errIs: user.ErrInvalidRole},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			role, err := user.NewRole(tc.input)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, role)
		})
	}
}

func TestNewGender(t *testing.T) {
	g, err := user.NewGender("")
	require.NoError(t, err)
	assert.Equal(t, user.GenderUnspecified, g)

	g, err = user.NewGender("female")
	require.NoError(t, err)
	assert.Equal(t, user.GenderFemale, g)

	_, err = user.NewGender("unknown")
	require.ErrorIs(t, err, user.ErrInvalidGender)
}

func TestActor(t *testing.T) {
	a := user.NewActor(uuid.New(), user.RoleBarber)
	assert.True(t, a.IsBarber())
	assert.False(t, a.IsClient())
	assert.False(t, a.IsAdmin())
}
