package handler

import (
	"net/http"

	"banaapro/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

// Overview godoc
// @Summary      Project performance overview
// @Description  Active project count, average progress, and budget utilization. Cached for 60 seconds.
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.ReportOverview
// @Router       /v1/reports/overview [get]
func (h *ReportsHandler) Overview(c *gin.Context) {
	resp, err := h.svc.Overview(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
