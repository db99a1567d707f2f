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

type BidHandler struct {
	cmds commands.BidCommands
	q    queries.BidQueries
}

func NewBidHandler(cmds commands.BidCommands, q queries.BidQueries) *BidHandler {
	return &BidHandler{cmds: cmds, q: q}
}

// @Summary Submit bid
// @Description A barber offers a price on an open service request
// @Tags bids
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitBidRequest true "Bid"
// @Success 201 {object} resdto.BidResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bids [post]
func (h *BidHandler) Submit(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req reqdto.SubmitBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Submit(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Submit bid failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBidView(view))
}

// @Summary Accept bid
// @Description The owner client accepts a pending bid; other pending bids are rejected
// @Tags bids
// @Produce json
// @Security BearerAuth
// @Param bidId path string true "Bid ID"
// @Success 200 {object} resdto.AcceptBidResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bids/accept/{bidId} [patch]
func (h *BidHandler) Accept(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	bidID, ok := uuidParam(c, "bidId", "Invalid bid id")
	if !ok {
		return
	}

	result, err := h.cmds.Accept(c.Request.Context(), actor, bidID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Accept bid failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAcceptBidResult(result))
}

// @Summary Reject bid
// @Tags bids
// @Produce json
// @Security BearerAuth
// @Param bidId path string true "Bid ID"
// @Success 200 {object} resdto.BidResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bids/reject/{bidId} [patch]
func (h *BidHandler) Reject(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	bidID, ok := uuidParam(c, "bidId", "Invalid bid id")
	if !ok {
		return
	}

	view, err := h.cmds.Reject(c.Request.Context(), actor, bidID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Reject bid failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBidView(view))
}

// @Summary List bids of a service request
// @Description Owner clients and admins see every bid, a barber only their own
// @Tags bids
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service request ID"
// @Success 200 {array} resdto.BidResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bids/request/{id} [get]
func (h *BidHandler) ListForRequest(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	requestID, ok := uuidParam(c, "id", "Invalid service request id")
	if !ok {
		return
	}

	views, err := h.q.ListForRequest(c.Request.Context(), actor, requestID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "List bids failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBidViews(views))
}
