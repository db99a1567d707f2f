package api

import (
	"errors"
	"net/http"

	"styleapp-backend/internal/domain/servicerequest"
	reqdto "styleapp-backend/internal/handler/dto/request"
	resdto "styleapp-backend/internal/handler/dto/response"
	"styleapp-backend/internal/handler/httperr"
	"styleapp-backend/internal/usecase/commands"
	"styleapp-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	replayedHeader       = "Idempotent-Replayed"
)

var errUnknownStatus = errors.New("unknown target status")

type ServiceRequestHandler struct {
	cmds commands.ServiceRequestCommands
	q    queries.ServiceRequestQueries
}

func NewServiceRequestHandler(cmds commands.ServiceRequestCommands, q queries.ServiceRequestQueries) *ServiceRequestHandler {
	return &ServiceRequestHandler{cmds: cmds, q: q}
}

// @Summary Create service request
// @Description A client posts a new service request; it starts open for bids
// @Tags service-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "UUID that makes retries safe"
// @Param request body reqdto.CreateServiceRequestRequest true "Service request"
// @Success 201 {object} resdto.ServiceRequestResponse
// @Success 200 {object} resdto.ServiceRequestResponse "Replayed idempotent request"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /service-requests [post]
func (h *ServiceRequestHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var idempotencyKey *uuid.UUID
	if raw := c.GetHeader(idempotencyKeyHeader); raw != "" {
		key, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Idempotency-Key must be a valid UUID", nil)
			return
		}
		idempotencyKey = &key
	}

	var req reqdto.CreateServiceRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), actor, req.ToInput(), idempotencyKey)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Create service request failed")
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		c.Header(replayedHeader, "true")
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromServiceRequestView(result.Request))
}

// @Summary List open service requests
// @Description Open requests, newest first, paged by an opaque cursor
// @Tags service-requests
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Cursor from the previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.ServiceRequestListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /service-requests/open [get]
func (h *ServiceRequestHandler) ListOpen(c *gin.Context) {
	var query reqdto.ListOpenQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	views, next, err := h.q.ListOpen(c.Request.Context(), query.ToCursor(), query.Limit)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "List open service requests failed")
		return
	}
	c.JSON(http.StatusOK, resdto.NewServiceRequestListResponse(views, next))
}

// @Summary List my service requests
// @Description Clients see their own requests, barbers the ones assigned to them, admins filter by client_id or barber_id
// @Tags service-requests
// @Produce json
// @Security BearerAuth
// @Param status query []string false "Statuses (barbers default to accepted,on_route)"
// @Param client_id query string false "Admin only"
// @Param barber_id query string false "Admin only"
// @Success 200 {array} resdto.ServiceRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /service-requests [get]
func (h *ServiceRequestHandler) ListMine(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var query reqdto.ListMineQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	filter, err := query.ToFilter()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "client_id and barber_id must be UUIDs", nil)
		return
	}

	views, err := h.q.ListMine(c.Request.Context(), actor, filter)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "List service requests failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceRequestViews(views))
}

// @Summary Get service request
// @Tags service-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service request ID"
// @Success 200 {object} resdto.ServiceRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /service-requests/{id} [get]
func (h *ServiceRequestHandler) Get(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "Invalid service request id")
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Get service request failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceRequestView(view))
}

// @Summary Update service request status
// @Description accepted (direct acceptance), on_route, completed or cancelled
// @Tags service-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service request ID"
// @Param request body reqdto.UpdateStatusRequest true "Target status"
// @Success 200 {object} resdto.ServiceRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /service-requests/{id}/status [patch]
func (h *ServiceRequestHandler) UpdateStatus(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "Invalid service request id")
	if !ok {
		return
	}

	var req reqdto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	ctx := c.Request.Context()
	var (
		result *commands.TransitionResult
		err    error
	)
	switch servicerequest.Status(req.Status) {
	case servicerequest.StatusAccepted:
		result, err = h.cmds.DirectAccept(ctx, actor, id, req.BarberID)
	case servicerequest.StatusOnRoute:
		result, err = h.cmds.StartRoute(ctx, actor, id)
	case servicerequest.StatusCompleted:
		result, err = h.cmds.Complete(ctx, actor, id)
	case servicerequest.StatusCancelled:
		result, err = h.cmds.Cancel(ctx, actor, id)
	default:
		httperr.AbortWithError(c, http.StatusBadRequest, errUnknownStatus, "Invalid status", nil)
		return
	}
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Update service request status failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceRequestView(result.Request))
}
