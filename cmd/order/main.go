package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"forkflow/internal/config"
	"forkflow/internal/infrastructure/logger"
	"forkflow/internal/order"
	"forkflow/internal/server"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New("order-service", cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("catalog integration configured",
		zap.String("catalogUrl", cfg.Order.CatalogURL),
		zap.Duration("validationTimeout", cfg.Order.ValidationTimeout))

	ordersCtrl := order.NewModule(cfg.Order, zapLogger)

	router := server.NewOrderRouter(ordersCtrl, zapLogger)
	srv := server.New(cfg.Order.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
