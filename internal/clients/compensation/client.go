package compensation

import (
	"context"
	"fmt"

	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/httpx"
)

// Adjustment is a single compensation change request
type Adjustment struct {
	ID             string  `json:"id"`
	Employee       string  `json:"employee"`
	Role           string  `json:"role"`
	Department     string  `json:"department"`
	CurrentSalary  float64 `json:"currentSalary"`
	ProposedSalary float64 `json:"proposedSalary"`
	Change         float64 `json:"change"`
	EffectiveDate  string  `json:"effectiveDate"`
	Status         string  `json:"status"`
	Reason         string  `json:"reason"`
}

// CreateAdjustmentRequest is the payload for a new adjustment
type CreateAdjustmentRequest struct {
	Employee       string  `json:"employee"`
	Role           string  `json:"role"`
	Department     string  `json:"department"`
	CurrentSalary  float64 `json:"currentSalary"`
	ProposedSalary float64 `json:"proposedSalary"`
	EffectiveDate  string  `json:"effectiveDate"`
	Reason         string  `json:"reason"`
}

// UpdateAdjustmentRequest carries the mutable adjustment fields
type UpdateAdjustmentRequest struct {
	ProposedSalary float64 `json:"proposedSalary"`
	EffectiveDate  string  `json:"effectiveDate"`
	Reason         string  `json:"reason"`
}

// Stats is the compensation dashboard summary
type Stats struct {
	TotalPayroll   string `json:"totalPayroll"`
	AvgSalary      string `json:"avgSalary"`
	PendingReviews int    `json:"pendingReviews"`
	BudgetUtilized string `json:"budgetUtilized"`
}

// Client is a client for the compensation service
type Client interface {
	// List fetches all compensation adjustments for the active tenant
	List(ctx context.Context) ([]Adjustment, error)
	// GetByID fetches a single adjustment
	GetByID(ctx context.Context, id string) (*Adjustment, error)
	// GetByEmployee fetches all adjustments for one employee
	GetByEmployee(ctx context.Context, employeeID string) ([]Adjustment, error)
	// Create submits a new adjustment
	Create(ctx context.Context, req CreateAdjustmentRequest) (*Adjustment, error)
	// Update modifies a pending adjustment
	Update(ctx context.Context, id string, req UpdateAdjustmentRequest) (*Adjustment, error)
	// Approve marks a pending adjustment approved
	Approve(ctx context.Context, id string) (*Adjustment, error)
	// Stats fetches the compensation summary figures
	Stats(ctx context.Context) (*Stats, error)
}

// HTTPClient implements Client over the shared outbound core
type HTTPClient struct {
	http *httpx.Client
}

// NewHTTPClient creates a new HTTP compensation client
func NewHTTPClient(http *httpx.Client) *HTTPClient {
	return &HTTPClient{http: http}
}

func (c *HTTPClient) List(ctx context.Context) ([]Adjustment, error) {
	var out []Adjustment
	if err := c.http.Get(ctx, "/api/compensation", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetByID(ctx context.Context, id string) (*Adjustment, error) {
	var out Adjustment
	if err := c.http.Get(ctx, fmt.Sprintf("/api/compensation/%s", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetByEmployee(ctx context.Context, employeeID string) ([]Adjustment, error) {
	var out []Adjustment
	if err := c.http.Get(ctx, fmt.Sprintf("/api/compensation/employee/%s", employeeID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Create(ctx context.Context, req CreateAdjustmentRequest) (*Adjustment, error) {
	var out Adjustment
	if err := c.http.Post(ctx, "/api/compensation", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Update(ctx context.Context, id string, req UpdateAdjustmentRequest) (*Adjustment, error) {
	var out Adjustment
	if err := c.http.Put(ctx, fmt.Sprintf("/api/compensation/%s", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Approve(ctx context.Context, id string) (*Adjustment, error) {
	var out Adjustment
	if err := c.http.Post(ctx, fmt.Sprintf("/api/compensation/%s/approve", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Stats(ctx context.Context) (*Stats, error) {
	var out Stats
	if err := c.http.Get(ctx, "/api/compensation/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
