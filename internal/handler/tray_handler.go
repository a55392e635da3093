package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/clients/notification"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/toast"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/pkg/response"
)

// MsgAllRead is the toast raised after a successful mark-all-read
const MsgAllRead = "All notifications marked as read"

// TrayPayload is the notification tray view: the full list plus the badge count
type TrayPayload struct {
	Notifications []notification.Notification `json:"notifications"`
	UnreadCount   int                         `json:"unreadCount"`
}

// TrayHandler handles the notification tray surface
type TrayHandler struct {
	notifications notification.Client
	toasts        toast.Notifier
}

// NewTrayHandler creates a new TrayHandler
func NewTrayHandler(notifications notification.Client, toasts toast.Notifier) *TrayHandler {
	return &TrayHandler{notifications: notifications, toasts: toasts}
}

// Tray handles retrieving the tray contents
// GET /api/portal/tray
func (h *TrayHandler) Tray(c *gin.Context) {
	ctx := c.Request.Context()

	list, err := h.notifications.List(ctx)
	if err != nil {
		writeBackendError(c, err)
		return
	}

	unread := 0
	for _, n := range list {
		if !n.Read {
			unread++
		}
	}

	if list == nil {
		list = []notification.Notification{}
	}
	c.JSON(http.StatusOK, response.Success(TrayPayload{
		Notifications: list,
		UnreadCount:   unread,
	}))
}

// MarkRead handles marking one notification read
// POST /api/portal/tray/:id/read
func (h *TrayHandler) MarkRead(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Notification ID is required"))
		return
	}

	if err := h.notifications.MarkRead(c.Request.Context(), id); err != nil {
		writeBackendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(nil))
}

// ReadAll handles marking every notification read. On success it raises one
// success toast and returns the refetched tray so the caller renders fresh
// state rather than a local guess.
// POST /api/portal/tray/read-all
func (h *TrayHandler) ReadAll(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.notifications.MarkAllRead(ctx); err != nil {
		writeBackendError(c, err)
		return
	}
	h.toasts.Success(MsgAllRead)

	list, err := h.notifications.List(ctx)
	if err != nil {
		writeBackendError(c, err)
		return
	}
	if list == nil {
		list = []notification.Notification{}
	}

	unread := 0
	for _, n := range list {
		if !n.Read {
			unread++
		}
	}
	c.JSON(http.StatusOK, response.Success(TrayPayload{
		Notifications: list,
		UnreadCount:   unread,
	}))
}
