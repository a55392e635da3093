package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/dashboard"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/pkg/response"
)

// DashboardHandler handles the aggregated dashboard view
type DashboardHandler struct {
	dashboard *dashboard.Service
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(svc *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{dashboard: svc}
}

// Summary handles retrieving the dashboard summary. The aggregator degrades
// failed sections to fallback values, so this always returns 200.
// GET /api/portal/dashboard
func (h *DashboardHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(h.dashboard.Summary(c.Request.Context())))
}
