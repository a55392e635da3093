package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/di"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/middleware"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/session"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/pkg/config"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/pkg/logger"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/pkg/response"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/pkg/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&logger.Config{
		Level:       logLevel(cfg),
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
		OutputPath:  "stdout",
	}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()

	if _, err := telemetry.Init(ctx, &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    cfg.OTel.ServiceName,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
	}); err != nil {
		logger.Fatal("failed to init telemetry", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown failed", zap.Error(err))
		}
	}()

	store, err := newSessionStore(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to create session store", zap.Error(err))
	}

	container, err := di.NewContainer(cfg, store)
	if err != nil {
		logger.Fatal("failed to build container", zap.Error(err))
	}

	router := setupRouter(cfg, container)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("portal listening",
			zap.String("addr", srv.Addr),
			zap.String("environment", cfg.App.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func logLevel(cfg *config.Config) string {
	if cfg.App.Debug {
		return "debug"
	}
	return "info"
}

// newSessionStore builds the configured session store backend
func newSessionStore(ctx context.Context, cfg *config.Config) (session.Store, error) {
	switch cfg.Session.Backend {
	case "memory":
		return session.NewMemoryStore(), nil
	case "file":
		return session.NewFileStore(cfg.Session.FilePath)
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:         cfg.Session.RedisAddr,
			Password:     cfg.Session.RedisPass,
			DB:           cfg.Session.RedisDB,
			DialTimeout:  cfg.Session.RedisTimeout,
			ReadTimeout:  cfg.Session.RedisTimeout,
			WriteTimeout: cfg.Session.RedisTimeout,
		})
		return session.NewRedisStore(ctx, client)
	default:
		return nil, fmt.Errorf("unknown session backend: %s", cfg.Session.Backend)
	}
}

func setupRouter(cfg *config.Config, c *di.Container) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.SessionMiddleware(&middleware.SessionConfig{
		Secret: cfg.JWT.Secret,
		Store:  c.Store,
	}))

	router.GET("/health", func(g *gin.Context) {
		g.JSON(http.StatusOK, response.Success(gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
			"version": cfg.App.Version,
		}))
	})

	api := router.Group("/api/portal")
	{
		tenants := api.Group("/tenants")
		{
			tenants.GET("", c.TenantHandler.List)
			tenants.GET("/current", c.TenantHandler.Current)
			tenants.POST("/switch", c.TenantHandler.Switch)
		}

		tray := api.Group("/tray")
		{
			tray.GET("", c.TrayHandler.Tray)
			tray.POST("/read-all", c.TrayHandler.ReadAll)
			tray.POST("/:id/read", c.TrayHandler.MarkRead)
		}

		tasks := api.Group("/tasks")
		{
			tasks.GET("/pending", c.TaskHandler.Pending)
			tasks.POST("/:id/approve", c.TaskHandler.Approve)
			tasks.POST("/:id/reject", c.TaskHandler.Reject)
		}

		menu := api.Group("/menu")
		{
			menu.GET("", c.MenuHandler.State)
			menu.POST("/toggle", c.MenuHandler.Toggle)
			menu.POST("/backdrop", c.MenuHandler.Backdrop)
			menu.POST("/select", c.MenuHandler.Select)
			menu.POST("/hover", c.MenuHandler.Hover)
			menu.POST("/leave", c.MenuHandler.Leave)
		}

		api.GET("/dashboard", c.DashboardHandler.Summary)
		api.GET("/toasts", c.ToastHandler.Recent)
	}

	return router
}
