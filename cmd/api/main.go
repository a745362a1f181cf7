package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/acmelabs/storefront-api/api/routes"
	"github.com/acmelabs/storefront-api/internal/orders"
	"github.com/acmelabs/storefront-api/internal/products"
	"github.com/acmelabs/storefront-api/internal/stats"
	"github.com/acmelabs/storefront-api/internal/store"
	"github.com/acmelabs/storefront-api/internal/users"
	"github.com/acmelabs/storefront-api/pkg/config"
	"github.com/acmelabs/storefront-api/pkg/logger"
	"github.com/acmelabs/storefront-api/pkg/metrics"
	"github.com/acmelabs/storefront-api/pkg/sysinfo"
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
		ServiceName: cfg.Service.Name,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	dataStore := store.Seed()
	sysProvider := sysinfo.NewHostProvider()

	handler := routes.NewRouter(
		cfg,
		logg,
		httpMetrics,
		registry,
		sysProvider,
		users.NewService(dataStore),
		products.NewService(dataStore),
		orders.NewService(dataStore),
		stats.NewService(dataStore, sysProvider),
	)

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
		Addr:    addr,
		Handler: handler,
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
