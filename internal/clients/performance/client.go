package performance

import (
	"context"
	"fmt"

	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/httpx"
)

// Goal is a single performance goal
type Goal struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Employee   string `json:"employee"`
	Department string `json:"department"`
	Progress   int    `json:"progress"`
	Status     string `json:"status"`
	DueDate    string `json:"dueDate"`
	Type       string `json:"type"`
}

// CreateGoalRequest is the payload for a new goal
type CreateGoalRequest struct {
	Title      string `json:"title"`
	Employee   string `json:"employee"`
	Department string `json:"department"`
	DueDate    string `json:"dueDate"`
	Type       string `json:"type"`
}

// Review is a completed performance review
type Review struct {
	ID       string  `json:"id"`
	Employee string  `json:"employee"`
	Reviewer string  `json:"reviewer"`
	Period   string  `json:"period"`
	Score    float64 `json:"score"`
	Summary  string  `json:"summary"`
}

// Stats is the performance dashboard summary
type Stats struct {
	ActiveGoals   int    `json:"activeGoals"`
	AvgProgress   string `json:"avgProgress"`
	ReviewsDue    int    `json:"reviewsDue"`
	TopPerformers int    `json:"topPerformers"`
}

// Client is a client for the performance service
type Client interface {
	// ListGoals fetches all goals for the active tenant
	ListGoals(ctx context.Context) ([]Goal, error)
	// GoalsByEmployee fetches the goals assigned to one employee
	GoalsByEmployee(ctx context.Context, employeeID string) ([]Goal, error)
	// CreateGoal submits a new goal
	CreateGoal(ctx context.Context, req CreateGoalRequest) (*Goal, error)
	// UpdateProgress sets a goal's progress percentage
	UpdateProgress(ctx context.Context, id string, progress int) (*Goal, error)
	// CompleteGoal marks a goal completed
	CompleteGoal(ctx context.Context, id string) (*Goal, error)
	// ReviewsByEmployee fetches the reviews for one employee
	ReviewsByEmployee(ctx context.Context, employeeID string) ([]Review, error)
	// Stats fetches the goal summary figures
	Stats(ctx context.Context) (*Stats, error)
}

// HTTPClient implements Client over the shared outbound core
type HTTPClient struct {
	http *httpx.Client
}

// NewHTTPClient creates a new HTTP performance client
func NewHTTPClient(http *httpx.Client) *HTTPClient {
	return &HTTPClient{http: http}
}

func (c *HTTPClient) ListGoals(ctx context.Context) ([]Goal, error) {
	var out []Goal
	if err := c.http.Get(ctx, "/api/goals", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GoalsByEmployee(ctx context.Context, employeeID string) ([]Goal, error) {
	var out []Goal
	if err := c.http.Get(ctx, fmt.Sprintf("/api/goals/employee/%s", employeeID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateGoal(ctx context.Context, req CreateGoalRequest) (*Goal, error) {
	var out Goal
	if err := c.http.Post(ctx, "/api/goals", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateProgress(ctx context.Context, id string, progress int) (*Goal, error) {
	body := map[string]int{"progress": progress}
	var out Goal
	if err := c.http.Put(ctx, fmt.Sprintf("/api/goals/%s/progress", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CompleteGoal(ctx context.Context, id string) (*Goal, error) {
	var out Goal
	if err := c.http.Post(ctx, fmt.Sprintf("/api/goals/%s/complete", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ReviewsByEmployee(ctx context.Context, employeeID string) ([]Review, error) {
	var out []Review
	if err := c.http.Get(ctx, fmt.Sprintf("/api/reviews/employee/%s", employeeID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Stats(ctx context.Context) (*Stats, error) {
	var out Stats
	if err := c.http.Get(ctx, "/api/goals/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
