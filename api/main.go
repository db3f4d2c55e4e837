package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rogerio-castellano/forecast-dashboard/internal/config"
	"github.com/rogerio-castellano/forecast-dashboard/internal/db"
	api "github.com/rogerio-castellano/forecast-dashboard/internal/http"
	"github.com/rogerio-castellano/forecast-dashboard/internal/http/ban"
	"github.com/rogerio-castellano/forecast-dashboard/internal/http/handlers"
	rl "github.com/rogerio-castellano/forecast-dashboard/internal/http/rate_limiter"
	"github.com/rogerio-castellano/forecast-dashboard/internal/redissvc"
	"github.com/rogerio-castellano/forecast-dashboard/internal/repo"
)

// @title Forecast Dashboard API
// @version 1.0
// @description Aggregated views and CSV export over pre-computed retail forecasts.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	forecastRepo, cleanup, err := buildForecastRepo(cfg)
	if err != nil {
		log.Fatalf("could not connect to %s backend: %v", cfg.Backend, err)
	}
	if cleanup != nil {
		defer cleanup()
	}

	handlers.SetForecastRepo(forecastRepo)
	handlers.SetAggregationLimits(cfg.TopSkuLimit, cfg.CriticalThreshold)
	handlers.SetAllowEmptyExport(cfg.Export.AllowEmpty)

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()

		redisService := redissvc.NewRedisService(rdb, context.Background())
		if err := redisService.Ping(); err != nil {
			log.Fatalf("could not connect to redis: %v", err)
		}
		ban.SetRedisService(redisService)
		go ban.StartDailySummaryLoop(24 * time.Hour)
	}

	go rl.StartVisitorCleanupLoop()

	r := api.NewRouter()
	log.Printf("server running on %s (backend: %s)", cfg.ListenAddr, cfg.Backend)
	if err := http.ListenAndServe(cfg.ListenAddr, r); err != nil {
		log.Fatal(err)
	}
}

func buildForecastRepo(cfg config.Config) (repo.ForecastRepository, func(), error) {
	switch cfg.Backend {
	case config.BackendPostgres:
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return repo.NewPostgresForecastRepository(database), func() { database.Close() }, nil
	case config.BackendRest:
		return repo.NewRestForecastRepository(cfg.API.BaseURL, cfg.API.Key), nil, nil
	default:
		// config.Load already rejected anything but memory here.
		return repo.NewInMemoryForecastRepository(), nil, nil
	}
}
