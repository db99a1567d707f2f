//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"styleapp-backend/internal/domain/user"
	"styleapp-backend/internal/handler/middleware"
	"styleapp-backend/tests/common/httptest"
	usecasemock "styleapp-backend/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockValidator *usecasemock.MockTokenValidator
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	auth := middleware.NewAuthMiddleware(s.mockValidator)

	whoami := func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		s.Require().True(ok)
		userID, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"id": actor.ID, "user_id": userID, "role": role})
	}
	s.router.GET("/me", auth.RequireAuth(), whoami)
	s.router.GET("/admin", auth.RequireAuth(), auth.RequireRole(user.RoleAdmin), whoami)
	s.router.GET("/no-auth-admin", auth.RequireRole(user.RoleAdmin), whoami)
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("success: stores actor in context", func() {
		actor := user.NewActor(uuid.New(), user.RoleClient)
		s.mockValidator.EXPECT().ValidateToken("good-token").Return(actor, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "good-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(actor.ID.String(), body["id"])
		s.Equal(actor.ID.String(), body["user_id"])
		s.Equal("client", body["role"])
	})

	s.Run("error: missing token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: non-bearer scheme is ignored", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodGet, "/me", nil,
			map[string]string{"Authorization": "Basic dXNlcjpwYXNz"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: invalid token", func() {
		s.mockValidator.EXPECT().ValidateToken("bad-token").Return(user.Actor{}, errors.New("token is expired")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "bad-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireRole() {
	s.Run("success: allowed role passes", func() {
		s.mockValidator.EXPECT().ValidateToken(gomock.Any()).Return(user.NewActor(uuid.New(), user.RoleAdmin), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: other roles are forbidden", func() {
		for _, role := range []user.Role{user.RoleClient, user.RoleBarber} {
			s.mockValidator.EXPECT().ValidateToken(gomock.Any()).Return(user.NewActor(uuid.New(), role), nil).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, "token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
		}
	})

	s.Run("error: used without RequireAuth", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/no-auth-admin", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
