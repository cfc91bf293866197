package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Sathvikcoderr02/saas-contracts-dashboard/config"
	"github.com/Sathvikcoderr02/saas-contracts-dashboard/handler"
	"github.com/Sathvikcoderr02/saas-contracts-dashboard/middleware"
	"github.com/Sathvikcoderr02/saas-contracts-dashboard/pkg/logger"
	"github.com/Sathvikcoderr02/saas-contracts-dashboard/service"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var servePort int

// serveCmd runs the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and fixture server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "override server.port")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}

	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	slog.Info("configuration loaded", "fixtures_source", cfg.Fixtures.Source, "minio", cfg.Minio.Enabled())
	if cfg.Fixtures.Source == config.SourceHTTP {
		slog.Info("fixtures fetched over http", "base_url", cfg.FixturesURL())
	}

	router, cleanup, err := newRouter(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("start server: %w", err)
	case <-quit:
	}
	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("server exited gracefully")
	return nil
}

// newRouter wires services, handlers and middleware. cleanup closes the
// settings database.
func newRouter(ctx context.Context, cfg *config.Config) (*gin.Engine, func(), error) {
	minioSvc, err := newObjectStore(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize minio: %w", err)
	}

	// nil interfaces, not typed nil pointers, when MinIO is off
	var (
		objects service.ObjectStore
		reader  service.ObjectReader
	)
	if minioSvc != nil {
		if err := minioSvc.EnsureBucket(ctx); err != nil {
			return nil, nil, fmt.Errorf("ensure minio bucket: %w", err)
		}
		objects, reader = minioSvc, minioSvc
	}

	source, err := buildSource(cfg, reader)
	if err != nil {
		return nil, nil, err
	}

	settings, err := service.NewSettingsStore(cfg.Settings.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open settings store: %w", err)
	}
	cleanup := func() {
		if err := settings.Close(); err != nil {
			slog.Warn("failed to close settings store", "error", err)
		}
	}

	contracts := service.NewContractService(source)
	reports := service.NewReportService(contracts, objects)
	uploads := service.NewUploadService(&cfg.Upload, service.NewUploadStore(cfg.Upload.MaxRecords), objects)

	authHandler := handler.NewAuthHandler(cfg)
	contractHandler := handler.NewContractHandler(contracts)
	reportHandler := handler.NewReportHandler(reports, cfg.Reports.Archive)
	uploadHandler := handler.NewUploadHandler(uploads)
	settingsHandler := handler.NewSettingsHandler(settings)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())
	router.Use(middleware.CacheControl())

	// the http fixture source reads these back through the same server, so
	// the route sits ahead of the per-IP limiter
	slog.Info("serving fixtures", "directory", cfg.Fixtures.Dir)
	router.Static("/fixtures", cfg.Fixtures.Dir)

	router.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	api := router.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)
	}

	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(&cfg.Auth))
	{
		protected.GET("/auth/me", authHandler.GetCurrentUser)
		protected.GET("/contracts", contractHandler.List)
		protected.GET("/contracts/:id", contractHandler.Get)
		protected.GET("/insights", contractHandler.Insights)
		protected.POST("/reports", reportHandler.Generate)
		protected.POST("/uploads", uploadHandler.Upload)
		protected.GET("/uploads", uploadHandler.List)
		protected.DELETE("/uploads/:id", uploadHandler.Delete)
		protected.GET("/settings", settingsHandler.Get)
		protected.PUT("/settings", settingsHandler.Update)
	}

	return router, cleanup, nil
}
