package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"

	"choukette/internal/adapter/api"
	"choukette/internal/adapter/api/handler"
	apimiddleware "choukette/internal/adapter/api/middleware"
	"choukette/internal/adapter/api/router"
	"choukette/internal/domain/service"
	"choukette/internal/infrastructure/metrics"
	"choukette/internal/infrastructure/ratelimit"
	"choukette/internal/infrastructure/token"
	"choukette/internal/usecase"
	"choukette/pkg/logger"
	"choukette/pkg/response"
)

var servePort string

// serveCmd runs the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Start the HTTP API. Stores are seeded, persisted sessions are
restored from the snapshot backend, and the server shuts down gracefully
on SIGINT or SIGTERM.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Listen port (default: SERVER_PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != "" {
		cfg.ServerPort = servePort
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := openSnapshotRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeRepo(); err != nil {
			logger.Warn("Failed to close snapshot backend: %v", err)
		}
	}()

	snapshots := service.NewSnapshotService(repo)
	clock := usecase.Clock(time.Now)

	missionUseCase := usecase.NewMissionUseCase(clock)
	professionalUseCase := usecase.NewProfessionalUseCase(clock, cfg.AvatarSeed)
	bakeryUseCase := usecase.NewBakeryUseCase(snapshots, clock, cfg.AvatarSeed)
	statsUseCase := usecase.NewProfessionalStatsUseCase(snapshots, clock)
	blogUseCase := usecase.NewBlogUseCase(snapshots)
	authUseCase := usecase.NewAuthUseCase(snapshots, bakeryUseCase, professionalUseCase, statsUseCase, clock)

	if err := bakeryUseCase.Initialize(ctx); err != nil {
		return err
	}
	if err := statsUseCase.Initialize(ctx); err != nil {
		return err
	}
	if err := blogUseCase.Generate(ctx); err != nil {
		return err
	}
	if err := authUseCase.Initialize(ctx); err != nil {
		return err
	}
	if cfg.AdminPassword == "" {
		logger.Warn("ADMIN_PASSWORD is not set, admin login is disabled")
	}

	issuer := token.NewIssuer(cfg.JWTSecret, time.Duration(cfg.JWTExpiry)*time.Second)
	handler.Setup(snapshots, issuer,
		handler.AdminCredentials{Email: cfg.AdminEmail, Password: cfg.AdminPassword},
		authUseCase, missionUseCase, professionalUseCase, bakeryUseCase, statsUseCase, blogUseCase)

	e := echo.New()
	e.HideBanner = true
	e.Debug = cfg.IsDevelopment()
	e.HTTPErrorHandler = response.HTTPErrorHandler

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(metrics.Middleware())

	e.Validator = api.NewValidator()

	limiter := ratelimit.NewRateLimiter()
	limiter.StartCleanupRoutine(ctx)

	authMiddleware := apimiddleware.NewAuthMiddleware(issuer, authUseCase)
	adminMiddleware := apimiddleware.NewAdminMiddleware()
	rateLimitMiddleware := apimiddleware.NewRateLimitMiddleware(limiter)

	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	router.Setup(e, authMiddleware, adminMiddleware, rateLimitMiddleware)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server on port %s...", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
