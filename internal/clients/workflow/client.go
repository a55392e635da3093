package workflow

import (
	"context"
	"fmt"

	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/httpx"
)

// Task is a pending approval task in a workflow instance
type Task struct {
	ID           string `json:"id"`
	WorkflowName string `json:"workflowName"`
	Employee     string `json:"employee"`
	CurrentStep  string `json:"currentStep"`
	Progress     int    `json:"progress"`
	StartedAt    string `json:"startedAt"`
}

// decisionRequest carries the reviewer comments for approve and reject
type decisionRequest struct {
	Comments string `json:"comments"`
}

// Client is a client for the workflow service
type Client interface {
	// PendingTasks fetches the tasks awaiting a decision from the current user
	PendingTasks(ctx context.Context) ([]Task, error)
	// ApproveTask approves a pending task with optional reviewer comments
	ApproveTask(ctx context.Context, taskID, comments string) error
	// RejectTask rejects a pending task with optional reviewer comments
	RejectTask(ctx context.Context, taskID, comments string) error
}

// HTTPClient implements Client over the shared outbound core
type HTTPClient struct {
	http *httpx.Client
}

// NewHTTPClient creates a new HTTP workflow client
func NewHTTPClient(http *httpx.Client) *HTTPClient {
	return &HTTPClient{http: http}
}

func (c *HTTPClient) PendingTasks(ctx context.Context) ([]Task, error) {
	var out []Task
	if err := c.http.Get(ctx, "/api/workflows/tasks/pending", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ApproveTask(ctx context.Context, taskID, comments string) error {
	return c.http.Post(ctx, fmt.Sprintf("/api/workflows/tasks/%s/approve", taskID), decisionRequest{Comments: comments}, nil)
}

func (c *HTTPClient) RejectTask(ctx context.Context, taskID, comments string) error {
	return c.http.Post(ctx, fmt.Sprintf("/api/workflows/tasks/%s/reject", taskID), decisionRequest{Comments: comments}, nil)
}
