package notification

import (
	"context"
	"fmt"

	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/httpx"
)

// Notification is a single tray entry
type Notification struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Time     string `json:"time"`
	Read     bool   `json:"read"`
}

// UnreadCount is the badge counter payload
type UnreadCount struct {
	Count int `json:"count"`
}

// Client is a client for the notification service
type Client interface {
	// List fetches every notification for the active tenant, newest first
	List(ctx context.Context) ([]Notification, error)
	// Unread fetches only the unread notifications
	Unread(ctx context.Context) ([]Notification, error)
	// UnreadCount fetches the unread badge counter
	UnreadCount(ctx context.Context) (int, error)
	// MarkRead marks one notification read
	MarkRead(ctx context.Context, id string) error
	// MarkAllRead marks every notification read
	MarkAllRead(ctx context.Context) error
}

// HTTPClient implements Client over the shared outbound core
type HTTPClient struct {
	http *httpx.Client
}

// NewHTTPClient creates a new HTTP notification client
func NewHTTPClient(http *httpx.Client) *HTTPClient {
	return &HTTPClient{http: http}
}

func (c *HTTPClient) List(ctx context.Context) ([]Notification, error) {
	var out []Notification
	if err := c.http.Get(ctx, "/api/notifications", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Unread(ctx context.Context) ([]Notification, error) {
	var out []Notification
	if err := c.http.Get(ctx, "/api/notifications/unread", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) UnreadCount(ctx context.Context) (int, error) {
	var out UnreadCount
	if err := c.http.Get(ctx, "/api/notifications/unread/count", nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

func (c *HTTPClient) MarkRead(ctx context.Context, id string) error {
	return c.http.Put(ctx, fmt.Sprintf("/api/notifications/%s/read", id), nil, nil)
}

func (c *HTTPClient) MarkAllRead(ctx context.Context) error {
	return c.http.Put(ctx, "/api/notifications/read-all", nil, nil)
}
