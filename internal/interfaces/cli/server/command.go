package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	dealusecases "keydeals/internal/application/deal/usecases"
	"keydeals/internal/infrastructure/cache"
	"keydeals/internal/infrastructure/config"
	"keydeals/internal/infrastructure/database"
	"keydeals/internal/infrastructure/migration"
	"keydeals/internal/infrastructure/repository"
	httpRouter "keydeals/internal/interfaces/http"
	"keydeals/internal/shared/biztime"
	"keydeals/internal/shared/logger"
)

const viewFlushInterval = 30 * time.Second

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the keydeals HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run pending database migrations on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, env != "production"); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server", "environment", env, "auto_migrate", autoMigrate)

	if err := biztime.Init(cfg.Marketplace.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	gin.SetMode(mapEnvToGinMode(env))
	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if autoMigrate {
		if env == "production" {
			logger.Warn("auto-migration is enabled in production")
		}
		if err := migration.NewManager().Up(database.Get()); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		logger.Info("migrations applied")
	}

	log := logger.NewLogger()

	viewCounter, listingCache := buildCaches(cfg, log)

	router := httpRouter.NewRouter(database.Get(), cfg, viewCounter, listingCache, log)
	router.SetupRoutes()

	dealRepo := repository.NewDealRepository(database.Get(), log)
	flushViews := dealusecases.NewFlushViewCountsUseCase(dealRepo, viewCounter, log)

	flushCtx, stopFlusher := context.WithCancel(context.Background())
	flusherDone := make(chan struct{})
	go runViewFlusher(flushCtx, flushViews, flusherDone)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "address", cfg.Server.GetAddr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	stopFlusher()
	<-flusherDone

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

// buildCaches returns Redis-backed counters and listing cache when Redis is
// enabled, in-process fallbacks otherwise.
func buildCaches(cfg *config.Config, log logger.Interface) (cache.ViewCounter, cache.ListingCache) {
	if !cfg.Redis.Enabled {
		logger.Info("redis disabled; using in-memory view counter and no listing cache")
		return cache.NewMemoryViewCounter(), cache.NoopListingCache{}
	}

	client, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		logger.Warn("redis unavailable; falling back to in-memory view counter", "error", err)
		return cache.NewMemoryViewCounter(), cache.NoopListingCache{}
	}

	ttl := time.Duration(cfg.Marketplace.ListingCacheTTLSec) * time.Second
	return cache.NewRedisViewCounter(client, log), cache.NewRedisListingCache(client, ttl, log)
}

// runViewFlusher periodically drains buffered view hits into the deals
// table, with one final drain on shutdown so buffered counts are not lost.
func runViewFlusher(ctx context.Context, flush *dealusecases.FlushViewCountsUseCase, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(viewFlushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := flush.Execute(ctx); err != nil {
				logger.Warn("view count flush failed", "error", err)
			}
		case <-ctx.Done():
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := flush.Execute(flushCtx); err != nil {
				logger.Warn("final view count flush failed", "error", err)
			}
			cancel()
			return
		}
	}
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
