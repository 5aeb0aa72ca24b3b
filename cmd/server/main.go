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

	"github.com/joho/godotenv"

	"github.com/AnshRaj112/dashfi-server/internal/config"
	"github.com/AnshRaj112/dashfi-server/internal/database"
	"github.com/AnshRaj112/dashfi-server/internal/handlers"
	"github.com/AnshRaj112/dashfi-server/internal/metrics"
	"github.com/AnshRaj112/dashfi-server/internal/origin"
	"github.com/AnshRaj112/dashfi-server/internal/routes"
	"github.com/AnshRaj112/dashfi-server/internal/services"
	"github.com/AnshRaj112/dashfi-server/pkg/logging"
)

func main() {
	envErr := godotenv.Load()
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)
	if envErr != nil {
		logger.Info("no .env file found, using process environment")
	}

	// run returns only after its deferred disconnects have executed.
	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func run(cfg *config.Config, logger *logging.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Listen only once MongoDB is reachable.
	mongoClient, err := database.ConnectMongo(ctx, cfg.MongoURL, logger)
	if err != nil {
		return fmt.Errorf("did not connect to MongoDB: %w", err)
	}
	defer database.DisconnectMongo(mongoClient)

	var cache *services.Cache
	if cfg.RedisURL != "" {
		redisClient, err := database.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			logger.Warn("redis unavailable, read cache disabled", "error", err)
		} else {
			defer redisClient.Close()
			cache = services.NewCache(redisClient, cfg.CacheTTL)
			logger.Info("read cache enabled", "ttl", cfg.CacheTTL.String())
		}
	}

	store := services.NewDashboardStore(mongoClient.Database(cfg.MongoDatabase), cache, logger)
	policy := origin.NewPolicy(cfg.AllowedOrigins, cfg.WildcardSuffix, logger)
	logger.Info("cors policy loaded",
		"allowed_origins", policy.Origins(),
		"wildcard_suffix", policy.Suffix(),
	)
	if cfg.IsProduction() && len(policy.Origins()) == len(origin.DefaultOrigins) {
		logger.Warn("no FRONTEND_URL or EXTRA_CORS_ORIGINS set; only local and preview origins are allowed")
	}

	router := routes.NewRouter(routes.Deps{
		Config:    cfg,
		Policy:    policy,
		Dashboard: handlers.NewDashboard(store, logger),
		Metrics:   metrics.NewHTTPMetrics(nil),
		Logger:    logger,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", "error", err)
		}
	}()

	logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen on %s: %w", cfg.Addr(), err)
	}
	return nil
}
