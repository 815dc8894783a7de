package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	portsrepo "github.com/SscSPs/invoice_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/invoice_management_app/internal/core/services"
	"github.com/SscSPs/invoice_management_app/internal/handlers"
	"github.com/SscSPs/invoice_management_app/internal/middleware"
	"github.com/SscSPs/invoice_management_app/internal/migration"
	"github.com/SscSPs/invoice_management_app/internal/platform/config"
	"github.com/SscSPs/invoice_management_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/invoice_management_app/internal/repositories/memory"
	"github.com/SscSPs/invoice_management_app/pkg/database"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, slog.Default())
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	var (
		repos  portsrepo.RepositoryProvider
		dbPool *pgxpool.Pool
	)
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		repos = memory.NewRepositoryProvider()
	default:
		if cfg.RunMigrations {
			logger.Info("Running database migrations...")
			if err := migration.Up(cfg.DatabaseURL, logger); err != nil {
				return err
			}
		}

		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to initialize database pool: %w", err)
		}
		defer database.ClosePgxPool(pool)
		dbPool = pool
		repos = pgsql.NewRepositoryProvider(pool)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		client, err := database.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("failed to initialize redis client: %w", err)
		}
		defer database.CloseRedisClient(client)
		redisClient = client
	}

	loginLimiter, err := middleware.NewLimiter(cfg.LoginRateLimit, redisClient)
	if err != nil {
		return err
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	handlers.RegisterRoutes(r, cfg, services.NewServiceContainer(cfg, repos), loginLimiter)
	if cfg.EnableDBCheck && dbPool != nil {
		r.GET("/health/db", func(c *gin.Context) {
			if err := dbPool.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, handlers.ErrorResponse{Error: "database unavailable"})
				return
			}
			c.String(http.StatusOK, "OK")
		})
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("storage", cfg.StorageDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed to run: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}
