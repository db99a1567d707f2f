//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"styleapp-backend/internal/domain/barber"
	"styleapp-backend/internal/domain/user"
	"styleapp-backend/internal/handler/api"
	"styleapp-backend/internal/pkg/ptr"
	"styleapp-backend/internal/usecase/commands"
	"styleapp-backend/internal/usecase/queries"
	"styleapp-backend/tests/common/httptest"
	commandsmock "styleapp-backend/tests/mock/commands"
	queriesmock "styleapp-backend/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BarberHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBarberCommands
	mockQueries  *queriesmock.MockBarberQueries
	actor        user.Actor
}

func (s *BarberHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBarberCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBarberQueries(s.mockCtrl)
	handler := api.NewBarberHandler(s.mockCommands, s.mockQueries)
	s.actor = user.NewActor(uuid.New(), user.RoleBarber)

	auth := fakeAuth(&s.actor)
	s.router.PUT("/barbers/me/availability", auth, handler.SetAvailability)
	s.router.GET("/barbers/me/stats", auth, handler.Stats)
}

func (s *BarberHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBarberHandlerSuite(t *testing.T) {
	suite.Run(t, new(BarberHandlerTestSuite))
}

func (s *BarberHandlerTestSuite) TestSetAvailability() {
	url := "/barbers/me/availability"

	s.Run("success: trims display name", func() {
		expected := commands.SetAvailabilityInput{IsActive: false, DisplayName: ptr.To("Don Pepe")}
		s.mockCommands.EXPECT().SetAvailability(gomock.Any(), s.actor, expected).
			Return(&queries.BarberProfileView{
				ID:          s.actor.ID,
				DisplayName: "Don Pepe",
				IsActive:    false,
				UpdatedAt:   time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"is_active": false, "display_name": "  Don Pepe "}, "token")

		var res map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(false, res["is_active"])
		s.Equal("Don Pepe", res["display_name"])
	})

	s.Run("error: is_active is required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"display_name": "x"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: domain validation", func() {
		s.mockCommands.EXPECT().SetAvailability(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, barber.ErrDisplayNameTooLong).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"is_active": true}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "display name")
	})
}

func (s *BarberHandlerTestSuite) TestStats() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().Stats(gomock.Any(), s.actor).Return(&queries.BarberStatsView{
			BarberID:   s.actor.ID,
			IsActive:   true,
			Assigned:   3,
			Completed:  2,
			Gross:      100000,
			Commission: 10000,
			Net:        90000,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/barbers/me/stats", nil, "token")

		var res map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(float64(2), res["completed"])
		s.Equal(float64(10000), res["commission"])
		s.Equal(float64(90000), res["net"])
	})

	s.Run("error: clients have no stats", func() {
		s.mockQueries.EXPECT().Stats(gomock.Any(), gomock.Any()).Return(nil, queries.ErrRoleNotAllowed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/barbers/me/stats", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "not allowed")
	})
}
