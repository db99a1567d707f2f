package httperr

import (
	"net/http"

	"styleapp-backend/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// Detail accompanies taxonomy errors so clients can tell a retryable
// conflict from a permanent rejection without parsing messages.
type Detail struct {
	Kind string `json:"kind"`
}

var categories = []struct {
	marker error
	status int
	kind   string
}{
	{errs.ErrValidation, http.StatusBadRequest, "validation"},
	{errs.ErrAuthorization, http.StatusForbidden, "authorization"},
	{errs.ErrNotFound, http.StatusNotFound, "not_found"},
	{errs.ErrConflict, http.StatusConflict, "conflict"},
	{errs.ErrInvalidState, http.StatusUnprocessableEntity, "invalid_state"},
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusOf maps an error category to its HTTP status; uncategorized errors
// are server failures.
func StatusOf(err error) int {
	cat := errs.Category(err)
	for _, m := range categories {
		if cat == m.marker {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// AbortWithUseCaseError answers with the status of err's category. Server
// failures hide their message behind fallbackMsg.
func AbortWithUseCaseError(c *gin.Context, err error, fallbackMsg string) {
	cat := errs.Category(err)
	for _, m := range categories {
		if cat == m.marker {
			AbortWithError(c, m.status, err, errs.Cause(err).Error(), Detail{Kind: m.kind})
			return
		}
	}
	AbortWithError(c, http.StatusInternalServerError, err, fallbackMsg, nil)
}
