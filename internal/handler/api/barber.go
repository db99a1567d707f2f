package api

import (
	"net/http"

	reqdto "styleapp-backend/internal/handler/dto/request"
	resdto "styleapp-backend/internal/handler/dto/response"
	"styleapp-backend/internal/handler/httperr"
	"styleapp-backend/internal/usecase/commands"
	"styleapp-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BarberHandler struct {
	cmds commands.BarberCommands
	q    queries.BarberQueries
}

func NewBarberHandler(cmds commands.BarberCommands, q queries.BarberQueries) *BarberHandler {
	return &BarberHandler{cmds: cmds, q: q}
}

// @Summary Set barber availability
// @Description Inactive barbers cannot bid or self-accept
// @Tags barbers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SetAvailabilityRequest true "Availability"
// @Success 200 {object} resdto.BarberProfileResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /barbers/me/availability [put]
func (h *BarberHandler) SetAvailability(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req reqdto.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.SetAvailability(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Set availability failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBarberProfileView(view))
}

// @Summary Barber stats
// @Tags barbers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BarberStatsResponse
// @Failure 403 {object} httperr.Response
// @Router /barbers/me/stats [get]
func (h *BarberHandler) Stats(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	view, err := h.q.Stats(c.Request.Context(), actor)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Load barber stats failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBarberStatsView(view))
}
