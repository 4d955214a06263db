package main

import (
	"context"
	"net/http"
	"os"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/vuapod/orderstats-backend/api/controllers"
	"github.com/vuapod/orderstats-backend/api/routes"
	"github.com/vuapod/orderstats-backend/internal/auth"
	"github.com/vuapod/orderstats-backend/internal/insights"
	"github.com/vuapod/orderstats-backend/internal/reports"
	"github.com/vuapod/orderstats-backend/internal/upstream"
	"github.com/vuapod/orderstats-backend/pkg/config"
	"github.com/vuapod/orderstats-backend/pkg/logger"
	"github.com/vuapod/orderstats-backend/pkg/metrics"
	"github.com/vuapod/orderstats-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	dashMetrics := metrics.NewDashboardMetrics(registry)

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	upstreamClient, err := upstream.NewClient(cfg.Upstream, dashMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create upstream client", err)
		os.Exit(1)
	}

	timezonePolicy, err := insights.DefaultTimezonePolicy()
	if err != nil {
		logg.Error(context.Background(), "failed to load timezone policy", err)
		os.Exit(1)
	}

	reportService, err := reports.NewService(reports.ServiceParams{
		Fetcher:  upstreamClient,
		Cache:    redisClient,
		CacheTTL: cfg.Cache.TTL,
		Rates:    insights.DefaultRates,
		Policy:   timezonePolicy,
		Projector: insights.ProjectorOptions{
			Rates:           insights.DefaultRates,
			OrderFeeHaircut: cfg.Report.OrderFeeHaircut,
		},
		Logger:  logg,
		Metrics: dashMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create report service", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(auth.ServiceParams{
		Verifier:  auth.NewConfigVerifier(cfg.Auth),
		JWTConfig: cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Dependencies{
			Config:        cfg,
			Logger:        logg,
			Registry:      registry,
			AuthService:   authService,
			ReportService: reportService,
			Checks: []controllers.HealthCheck{
				{Name: "redis", Pinger: redisClient},
				{Name: "upstream", Pinger: upstreamClient},
			},
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
