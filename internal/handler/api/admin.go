package api

import (
	"fmt"
	"net/http"

	reqdto "styleapp-backend/internal/handler/dto/request"
	resdto "styleapp-backend/internal/handler/dto/response"
	"styleapp-backend/internal/handler/httperr"
	"styleapp-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AdminHandler struct {
	reports queries.ReportQueries
}

func NewAdminHandler(reports queries.ReportQueries) *AdminHandler {
	return &AdminHandler{reports: reports}
}

// @Summary Commission report
// @Description Completed requests per barber within [from, to); defaults to the last 30 days
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param from query string false "Start (YYYY-MM-DD or RFC 3339)"
// @Param to query string false "End (YYYY-MM-DD inclusive, or RFC 3339)"
// @Success 200 {object} resdto.CommissionReportResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/commissions [get]
func (h *AdminHandler) Commissions(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	rng, ok := bindReportRange(c)
	if !ok {
		return
	}

	rep, err := h.reports.Commissions(c.Request.Context(), actor, rng)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Load commission report failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCommissionReport(rep))
}

// @Summary Export commission report
// @Description Same report as an .xlsx workbook
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param from query string false "Start (YYYY-MM-DD or RFC 3339)"
// @Param to query string false "End (YYYY-MM-DD inclusive, or RFC 3339)"
// @Success 200 {file} binary
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/commissions/export [get]
func (h *AdminHandler) ExportCommissions(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	rng, ok := bindReportRange(c)
	if !ok {
		return
	}

	exported, err := h.reports.Export(c.Request.Context(), actor, rng)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Export commission report failed")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exported.FileName))
	c.Data(http.StatusOK, xlsxContentType, exported.Content)
}

func bindReportRange(c *gin.Context) (queries.ReportRange, bool) {
	var query reqdto.CommissionReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return queries.ReportRange{}, false
	}
	rng, err := query.ToRange()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "from and to must be YYYY-MM-DD or RFC 3339", nil)
		return queries.ReportRange{}, false
	}
	return rng, true
}
