//go:build unit

package queries_test

import (
	"context"
	"testing"

	"styleapp-backend/internal/domain/user"
	"styleapp-backend/internal/usecase/queries"
	queriesmock "styleapp-backend/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBarberQueries_Stats(t *testing.T) {
	t.Run("barber reads own stats", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockBarberReadStore(ctrl)
		barberActor := user.NewActor(uuid.New(), user.RoleBarber)
		want := &queries.BarberStatsView{BarberID: barberActor.ID, Completed: 3, Gross: 150000, Commission: 15000, Net: 135000}
		repo.EXPECT().Stats(gomock.Any(), barberActor.ID).Return(want, nil).Times(1)

		got, err := queries.NewBarberQueries(repo).Stats(context.Background(), barberActor)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("non-barbers are refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockBarberReadStore(ctrl)

		for _, role := range []user.Role{user.RoleClient, user.RoleAdmin} {
			_, err := queries.NewBarberQueries(repo).Stats(context.Background(), user.NewActor(uuid.New(), role))
			assert.ErrorIs(t, err, queries.ErrRoleNotAllowed)
		}
	})
}
