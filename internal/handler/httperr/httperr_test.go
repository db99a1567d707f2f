//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"testing"

	"styleapp-backend/internal/handler/httperr"
	"styleapp-backend/internal/pkg/errs"
	"styleapp-backend/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", errs.Mark(errs.New("bad price"), errs.ErrValidation), http.StatusBadRequest},
		{"authorization", errs.Mark(errs.New("not owner"), errs.ErrAuthorization), http.StatusForbidden},
		{"not found", errs.Mark(errs.New("missing"), errs.ErrNotFound), http.StatusNotFound},
		{"conflict", errs.Mark(errs.New("lost race"), errs.ErrConflict), http.StatusConflict},
		{"invalid state", errs.Mark(errs.New("not on route"), errs.ErrInvalidState), http.StatusUnprocessableEntity},
		{"wrapped keeps category", errs.Wrap(errs.Mark(errs.New("lost race"), errs.ErrConflict), "accept bid"), http.StatusConflict},
		{"uncategorized", errors.New("dial tcp: refused"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httperr.StatusOf(tt.err))
		})
	}
}

func TestAbortWithUseCaseError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/wrapped", func(c *gin.Context) {
		err := errs.Wrap(errs.Mark(errs.New("service request is no longer open"), errs.ErrConflict), "accept bid")
		httperr.AbortWithUseCaseError(c, err, "Accept failed")
	})
	r.GET("/internal", func(c *gin.Context) {
		httperr.AbortWithUseCaseError(c, errors.New("pool closed"), "Accept failed")
	})

	t.Run("category message without wrap context", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/wrapped", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "service request is no longer open")
		assert.NotContains(t, rec.Body.String(), "accept bid")
		assert.Contains(t, rec.Body.String(), `"detail":{"kind":"conflict"}`)
	})

	t.Run("server failure uses fallback", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/internal", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Accept failed")
		assert.NotContains(t, rec.Body.String(), "pool closed")
	})
}
