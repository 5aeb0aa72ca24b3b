// Command seed loads the sample dashboard data into MongoDB and clears the
// cached reads of the seeded collections.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/AnshRaj112/dashfi-server/internal/config"
	"github.com/AnshRaj112/dashfi-server/internal/database"
	"github.com/AnshRaj112/dashfi-server/internal/seed"
	"github.com/AnshRaj112/dashfi-server/internal/services"
	"github.com/AnshRaj112/dashfi-server/pkg/logging"
)

func main() {
	drop := flag.Bool("drop", false, "drop the kpis, products and transactions collections first")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	if err := run(cfg, logger, *drop); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *logging.Logger, drop bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := database.ConnectMongo(ctx, cfg.MongoURL, logger)
	if err != nil {
		return err
	}
	defer database.DisconnectMongo(client)
	db := client.Database(cfg.MongoDatabase)

	// Servers sharing this Redis would keep serving the old collections
	// until CACHE_TTL expires.
	var inv seed.Invalidator
	if cfg.RedisURL != "" {
		redisClient, err := database.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connect redis for cache invalidation: %w", err)
		}
		defer redisClient.Close()
		inv = services.NewDashboardStore(db, services.NewCache(redisClient, cfg.CacheTTL), logger)
	}

	ds, err := seed.Load(time.Now())
	if err != nil {
		return err
	}

	res, err := seed.Refresh(ctx, db, ds, drop, inv)
	if err != nil {
		return err
	}
	logger.Info("seed complete",
		"database", cfg.MongoDatabase,
		"dropped", drop,
		"cache_invalidated", inv != nil,
		"kpis", res.KPIs,
		"products", res.Products,
		"transactions", res.Transactions,
	)
	return nil
}
