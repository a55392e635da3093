package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/clients/workflow"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/pkg/response"
)

// TaskHandler handles workflow approval task requests
type TaskHandler struct {
	workflows workflow.Client
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(workflows workflow.Client) *TaskHandler {
	return &TaskHandler{workflows: workflows}
}

// DecisionRequest carries optional reviewer comments
type DecisionRequest struct {
	Comments string `json:"comments"`
}

// Pending handles retrieving the tasks awaiting a decision
// GET /api/portal/tasks/pending
func (h *TaskHandler) Pending(c *gin.Context) {
	tasks, err := h.workflows.PendingTasks(c.Request.Context())
	if err != nil {
		writeBackendError(c, err)
		return
	}
	if tasks == nil {
		tasks = []workflow.Task{}
	}
	c.JSON(http.StatusOK, response.Success(tasks))
}

// Approve handles approving a pending task
// POST /api/portal/tasks/:id/approve
func (h *TaskHandler) Approve(c *gin.Context) {
	h.decide(c, h.workflows.ApproveTask)
}

// Reject handles rejecting a pending task
// POST /api/portal/tasks/:id/reject
func (h *TaskHandler) Reject(c *gin.Context) {
	h.decide(c, h.workflows.RejectTask)
}

func (h *TaskHandler) decide(c *gin.Context, decision func(ctx context.Context, taskID, comments string) error) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Task ID is required"))
		return
	}

	var req DecisionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
			return
		}
	}

	if err := decision(c.Request.Context(), id, req.Comments); err != nil {
		writeBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(nil))
}
