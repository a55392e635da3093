package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/tenant"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/pkg/response"
)

// TenantHandler handles tenant roster and switch requests
type TenantHandler struct {
	tenants *tenant.Context
}

// NewTenantHandler creates a new TenantHandler
func NewTenantHandler(tenants *tenant.Context) *TenantHandler {
	return &TenantHandler{tenants: tenants}
}

// SwitchTenantRequest is the switch payload
type SwitchTenantRequest struct {
	TenantID string `json:"tenantId" binding:"required"`
}

// List handles retrieving the static tenant roster
// GET /api/portal/tenants
func (h *TenantHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(h.tenants.List()))
}

// Current handles retrieving the active tenant
// GET /api/portal/tenants/current
func (h *TenantHandler) Current(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(h.tenants.Current(c.Request.Context())))
}

// Switch handles switching the active tenant. An id outside the roster is a
// silent no-op; the response always carries whichever tenant is active after
// the attempt.
// POST /api/portal/tenants/switch
func (h *TenantHandler) Switch(c *gin.Context) {
	var req SwitchTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	ctx := c.Request.Context()
	h.tenants.Switch(ctx, req.TenantID)
	c.JSON(http.StatusOK, response.Success(h.tenants.Current(ctx)))
}
