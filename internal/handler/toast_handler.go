package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/toast"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/pkg/response"
)

// ToastHandler exposes the recent toast feed to the dashboard shell
type ToastHandler struct {
	center *toast.Center
}

// NewToastHandler creates a new ToastHandler
func NewToastHandler(center *toast.Center) *ToastHandler {
	return &ToastHandler{center: center}
}

// Recent handles retrieving the retained toasts, oldest first
// GET /api/portal/toasts
func (h *ToastHandler) Recent(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(h.center.Recent()))
}
