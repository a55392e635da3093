package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/menu"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/pkg/response"
)

// MenuHandler exposes the shared menu controller to the dashboard shell
type MenuHandler struct {
	menu *menu.Controller
}

// NewMenuHandler creates a new MenuHandler
func NewMenuHandler(controller *menu.Controller) *MenuHandler {
	return &MenuHandler{menu: controller}
}

// ToggleRequest names the panel whose trigger was clicked, with the trigger's
// bounding box captured by the shell at click time
type ToggleRequest struct {
	Panel  menu.Panel `json:"panel" binding:"required"`
	Anchor menu.Rect  `json:"anchor"`
}

// HoverRequest names a flyout category row
type HoverRequest struct {
	Category menu.Category `json:"category" binding:"required"`
}

// State handles reading the current menu state
// GET /api/portal/menu
func (h *MenuHandler) State(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(h.menu.State()))
}

// Toggle handles a trigger click
// POST /api/portal/menu/toggle
func (h *MenuHandler) Toggle(c *gin.Context) {
	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	state, err := h.menu.Toggle(req.Panel, req.Anchor)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(state))
}

// Backdrop handles a click outside any panel
// POST /api/portal/menu/backdrop
func (h *MenuHandler) Backdrop(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(h.menu.Backdrop()))
}

// Select handles choosing a navigable item
// POST /api/portal/menu/select
func (h *MenuHandler) Select(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(h.menu.Select()))
}

// Hover handles the pointer entering a category row or its flyout
// POST /api/portal/menu/hover
func (h *MenuHandler) Hover(c *gin.Context) {
	var req HoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	state, err := h.menu.HoverCategory(req.Category)
	if err != nil {
		if errors.Is(err, menu.ErrUnknownCategory) {
			c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(state))
}

// Leave handles the pointer leaving the category rows and flyout
// POST /api/portal/menu/leave
func (h *MenuHandler) Leave(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(h.menu.LeaveCategory()))
}
