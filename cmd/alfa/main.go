package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/comercial-alfa/comercial-alfa/internal/app"
	"github.com/comercial-alfa/comercial-alfa/internal/catalog"
	"github.com/comercial-alfa/comercial-alfa/internal/catalog/products"
	"github.com/comercial-alfa/comercial-alfa/internal/catalog/suppliers"
	"github.com/comercial-alfa/comercial-alfa/internal/observability"
	"github.com/comercial-alfa/comercial-alfa/internal/orders"
	"github.com/comercial-alfa/comercial-alfa/internal/platform/cache"
	"github.com/comercial-alfa/comercial-alfa/internal/platform/db"
	"github.com/comercial-alfa/comercial-alfa/internal/shared"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	dbpool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbpool.Close()

	// The Redis side cache is optional: without it every listing goes
	// straight to Postgres.
	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Warn("redis unavailable, listings will skip the cache", slog.Any("error", err))
		redisClient = nil
	} else {
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("redis close", slog.Any("error", err))
			}
		}()
	}

	listCache := catalog.NewCache(redisClient, cfg.CacheTTL)
	idempotencyStore := shared.NewIdempotencyStore(dbpool)

	productRepo := products.NewRepository(dbpool)
	productService := products.NewService(productRepo, listCache)
	productHandler := products.NewHandler(logger, productService, idempotencyStore)

	supplierRepo := suppliers.NewRepository(dbpool)
	supplierService := suppliers.NewService(supplierRepo, listCache)
	supplierHandler := suppliers.NewHandler(logger, supplierService, idempotencyStore)

	orderRepo := orders.NewRepository(dbpool)
	orderService := orders.NewService(orderRepo, productService, supplierService)
	orderHandler := orders.NewHandler(logger, orderService, idempotencyStore)

	metrics := observability.NewMetrics()

	router := app.NewRouter(app.RouterParams{
		Logger:          logger,
		Config:          cfg,
		ProductHandler:  productHandler,
		SupplierHandler: supplierHandler,
		OrderHandler:    orderHandler,
		Metrics:         metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
