package di

import (
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/clients/calendar"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/clients/compensation"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/clients/notification"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/clients/performance"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/clients/workflow"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/dashboard"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/handler"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/httpx"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/menu"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/session"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/tenant"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/toast"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/pkg/config"
)

// Container holds all dependencies for the portal
type Container struct {
	// Infrastructure
	Store  session.Store
	Toasts *toast.Center
	Tenant *tenant.Context
	Menu   *menu.Controller

	// Domain clients
	Compensation compensation.Client
	Performance  performance.Client
	Notification notification.Client
	Workflow     workflow.Client
	Calendar     calendar.Client

	// Services
	Dashboard *dashboard.Service

	// Handlers
	TenantHandler    *handler.TenantHandler
	TrayHandler      *handler.TrayHandler
	TaskHandler      *handler.TaskHandler
	DashboardHandler *handler.DashboardHandler
	MenuHandler      *handler.MenuHandler
	ToastHandler     *handler.ToastHandler
}

// NewContainer creates a new dependency injection container. The session
// store is injected so the backend choice (memory, file, redis) stays with
// the caller.
func NewContainer(cfg *config.Config, store session.Store) (*Container, error) {
	parsed, err := cfg.Tenants.ParseRoster()
	if err != nil {
		return nil, err
	}
	roster := make([]tenant.Tenant, len(parsed))
	for i, t := range parsed {
		roster[i] = tenant.Tenant{ID: t.ID, Name: t.Name}
	}

	c := &Container{
		Store:  store,
		Toasts: toast.NewCenter(0),
		Menu:   menu.NewController(),
	}
	c.Tenant = tenant.NewContext(roster, store)

	newClient := func(domain, baseURL string) *httpx.Client {
		return httpx.New(httpx.Config{
			Domain:   domain,
			BaseURL:  baseURL,
			Timeout:  cfg.Services.RequestTimeout,
			Store:    store,
			Tenants:  c.Tenant,
			Notifier: c.Toasts,
		})
	}

	c.Compensation = compensation.NewHTTPClient(newClient("compensation", cfg.Services.CompensationURL))
	c.Performance = performance.NewHTTPClient(newClient("performance", cfg.Services.PerformanceURL))
	c.Notification = notification.NewHTTPClient(newClient("notification", cfg.Services.NotificationURL))
	c.Workflow = workflow.NewHTTPClient(newClient("workflow", cfg.Services.WorkflowURL))
	c.Calendar = calendar.NewHTTPClient(newClient("calendar", cfg.Services.CalendarURL))

	// Initialize services
	c.Dashboard = dashboard.NewService(c.Compensation, c.Performance, c.Notification, c.Workflow, c.Calendar)

	// Initialize handlers
	c.TenantHandler = handler.NewTenantHandler(c.Tenant)
	c.TrayHandler = handler.NewTrayHandler(c.Notification, c.Toasts)
	c.TaskHandler = handler.NewTaskHandler(c.Workflow)
	c.DashboardHandler = handler.NewDashboardHandler(c.Dashboard)
	c.MenuHandler = handler.NewMenuHandler(c.Menu)
	c.ToastHandler = handler.NewToastHandler(c.Toasts)

	return c, nil
}
