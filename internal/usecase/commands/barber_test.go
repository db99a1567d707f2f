//go:build unit

package commands_test

import (
	"context"
	"testing"

	"styleapp-backend/internal/domain/barber"
	"styleapp-backend/internal/domain/user"
	sqlc "styleapp-backend/internal/infra/sqlc/generated"
	"styleapp-backend/internal/pkg/ptr"
	"styleapp-backend/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func saveEcho(_ context.Context, _ sqlc.DBTX, p *barber.Profile) (*barber.Profile, error) {
	return p, nil
}

func TestBarberCommands_SetAvailability(t *testing.T) {
	barberActor := user.NewActor(uuid.New(), user.RoleBarber)

	t.Run("first call creates the profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		f.expectWithin()
		f.reads.EXPECT().BarberByID(gomock.Any(), barberActor.ID).Return(nil, nil).Times(1)
		f.barbers.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(saveEcho).Times(1)

		view, err := commands.NewBarberCommands(f.uow, f.clock).
			SetAvailability(context.Background(), barberActor, commands.SetAvailabilityInput{IsActive: true, DisplayName: ptr.To("Don Pepe")})

		require.NoError(t, err)
		assert.Equal(t, barberActor.ID, view.ID)
		assert.True(t, view.IsActive)
		assert.Equal(t, "Don Pepe", view.DisplayName)
		assert.Equal(t, fixedNow, view.UpdatedAt)
	})

	t.Run("omitted display name keeps the stored one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		f.expectWithin()
		f.reads.EXPECT().BarberByID(gomock.Any(), barberActor.ID).
			Return(barber.ReconstructProfile(barberActor.ID, "Don Pepe", true, fixedNow), nil).Times(1)
		f.barbers.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(saveEcho).Times(1)

		view, err := commands.NewBarberCommands(f.uow, f.clock).
			SetAvailability(context.Background(), barberActor, commands.SetAvailabilityInput{IsActive: false})

		require.NoError(t, err)
		assert.False(t, view.IsActive)
		assert.Equal(t, "Don Pepe", view.DisplayName)
	})

	t.Run("only barbers have availability", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)

		_, err := commands.NewBarberCommands(f.uow, f.clock).
			SetAvailability(context.Background(), user.NewActor(uuid.New(), user.RoleClient), commands.SetAvailabilityInput{IsActive: true})
		assert.ErrorIs(t, err, commands.ErrRoleNotAllowed)
	})
}
