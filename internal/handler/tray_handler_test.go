package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/clients/notification"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/httpx"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/toast"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/pkg/response"
)

// fakeNotificationClient serves canned tray data
type fakeNotificationClient struct {
	list        []notification.Notification
	listErr     error
	markAllErr  error
	markAllSeen bool
}

func (f *fakeNotificationClient) List(ctx context.Context) ([]notification.Notification, error) {
	return f.list, f.listErr
}

func (f *fakeNotificationClient) Unread(ctx context.Context) ([]notification.Notification, error) {
	return nil, nil
}

func (f *fakeNotificationClient) UnreadCount(ctx context.Context) (int, error) {
	return 0, nil
}

func (f *fakeNotificationClient) MarkRead(ctx context.Context, id string) error {
	return nil
}

func (f *fakeNotificationClient) MarkAllRead(ctx context.Context) error {
	f.markAllSeen = true
	if f.markAllErr != nil {
		return f.markAllErr
	}
	for i := range f.list {
		f.list[i].Read = true
	}
	return nil
}

func newTrayRouter(client notification.Client, toasts *toast.Center) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewTrayHandler(client, toasts)
	router.GET("/api/portal/tray", h.Tray)
	router.POST("/api/portal/tray/read-all", h.ReadAll)
	return router
}

func TestTray(t *testing.T) {
	client := &fakeNotificationClient{list: []notification.Notification{
		{ID: "n-1", Read: false},
		{ID: "n-2", Read: true},
		{ID: "n-3", Read: false},
	}}
	router := newTrayRouter(client, toast.NewCenter(0))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/portal/tray", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200", w.Code)
	}

	var resp struct {
		Success bool        `json:"success"`
		Data    TrayPayload `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Error("Expected success")
	}
	if len(resp.Data.Notifications) != 3 {
		t.Errorf("Notifications = %d, want 3", len(resp.Data.Notifications))
	}
	if resp.Data.UnreadCount != 2 {
		t.Errorf("UnreadCount = %d, want 2", resp.Data.UnreadCount)
	}
}

func TestReadAll_RaisesOneSuccessToastAndRefetches(t *testing.T) {
	client := &fakeNotificationClient{list: []notification.Notification{
		{ID: "n-1", Read: false},
		{ID: "n-2", Read: false},
	}}
	toasts := toast.NewCenter(0)
	router := newTrayRouter(client, toasts)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/portal/tray/read-all", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200", w.Code)
	}
	if !client.markAllSeen {
		t.Error("Expected MarkAllRead to be called")
	}

	recent := toasts.Recent()
	if len(recent) != 1 {
		t.Fatalf("Expected exactly 1 toast, got %d", len(recent))
	}
	if recent[0].Level != toast.LevelSuccess || recent[0].Message != MsgAllRead {
		t.Errorf("Toast = %+v", recent[0])
	}

	var resp struct {
		Data TrayPayload `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Data.UnreadCount != 0 {
		t.Errorf("UnreadCount = %d, want 0 after read-all", resp.Data.UnreadCount)
	}
}

func TestReadAll_BackendFailureSkipsSuccessToast(t *testing.T) {
	client := &fakeNotificationClient{
		list:       []notification.Notification{{ID: "n-1"}},
		markAllErr: &httpx.Error{Kind: httpx.KindForbidden, StatusCode: 403, Message: httpx.MsgAccessDenied},
	}
	toasts := toast.NewCenter(0)
	router := newTrayRouter(client, toasts)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/portal/tray/read-all", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("Status = %d, want 403", w.Code)
	}

	if len(toasts.Recent()) != 0 {
		t.Errorf("Expected no success toast, got %d", len(toasts.Recent()))
	}

	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Success {
		t.Error("Expected failure envelope")
	}
	if resp.Error == nil || resp.Error.Code != response.ErrCodeForbidden {
		t.Errorf("Error = %+v, want FORBIDDEN", resp.Error)
	}
}

func TestTray_UpstreamErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        *httpx.Error
		wantStatus int
		wantCode   string
	}{
		{"network", &httpx.Error{Kind: httpx.KindNetworkUnavailable, Message: httpx.MsgNetworkUnavailable}, http.StatusServiceUnavailable, response.ErrCodeServiceUnavailable},
		{"unauthorized", &httpx.Error{Kind: httpx.KindUnauthorized, StatusCode: 401, Message: httpx.MsgSessionExpired}, http.StatusUnauthorized, response.ErrCodeUnauthorized},
		{"rate limited", &httpx.Error{Kind: httpx.KindRateLimited, StatusCode: 429, Message: httpx.MsgTooManyRequests}, http.StatusTooManyRequests, response.ErrCodeTooManyRequests},
		{"server error", &httpx.Error{Kind: httpx.KindServerError, StatusCode: 500, Message: "db down"}, http.StatusBadGateway, response.ErrCodeUpstreamError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeNotificationClient{listErr: tt.err}
			router := newTrayRouter(client, toast.NewCenter(0))

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/portal/tray", nil)
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Status = %d, want %d", w.Code, tt.wantStatus)
			}

			var resp response.Response
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if resp.Error == nil || resp.Error.Code != tt.wantCode {
				t.Errorf("Error = %+v, want code %s", resp.Error, tt.wantCode)
			}
		})
	}
}
