package calendar

import (
	"context"
	"fmt"
	"net/url"

	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/httpx"
)

// Event is a single calendar entry
type Event struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Duration  string `json:"duration"`
	Attendees int    `json:"attendees,omitempty"`
	Location  string `json:"location,omitempty"`
	IsVirtual bool   `json:"isVirtual,omitempty"`
}

// EventRequest is the payload for creating or updating an event
type EventRequest struct {
	Title     string `json:"title"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Duration  string `json:"duration"`
	Attendees int    `json:"attendees,omitempty"`
	Location  string `json:"location,omitempty"`
	IsVirtual bool   `json:"isVirtual,omitempty"`
}

// Client is a client for the calendar service
type Client interface {
	// Events fetches the events falling inside [startDate, endDate],
	// both formatted YYYY-MM-DD
	Events(ctx context.Context, startDate, endDate string) ([]Event, error)
	// CreateEvent adds a new event
	CreateEvent(ctx context.Context, req EventRequest) (*Event, error)
	// UpdateEvent replaces an existing event
	UpdateEvent(ctx context.Context, id string, req EventRequest) (*Event, error)
}

// HTTPClient implements Client over the shared outbound core
type HTTPClient struct {
	http *httpx.Client
}

// NewHTTPClient creates a new HTTP calendar client
func NewHTTPClient(http *httpx.Client) *HTTPClient {
	return &HTTPClient{http: http}
}

func (c *HTTPClient) Events(ctx context.Context, startDate, endDate string) ([]Event, error) {
	query := url.Values{}
	query.Set("startDate", startDate)
	query.Set("endDate", endDate)

	var out []Event
	if err := c.http.Get(ctx, "/api/calendar/events", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateEvent(ctx context.Context, req EventRequest) (*Event, error) {
	var out Event
	if err := c.http.Post(ctx, "/api/calendar/events", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateEvent(ctx context.Context, id string, req EventRequest) (*Event, error) {
	var out Event
	if err := c.http.Put(ctx, fmt.Sprintf("/api/calendar/events/%s", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
