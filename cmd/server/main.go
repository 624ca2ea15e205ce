package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalog_service/config"
	"catalog_service/internal/delivery"
	"catalog_service/internal/repository"
	"catalog_service/internal/usecase"
	"catalog_service/pkg/db"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	logger.Info("Starting Catalog Service...")

	cfg, err := config.LoadConfig(logger)
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	conn, err := db.Connect(cfg.DatabasePath, cfg.BusyTimeoutMS)
	if err != nil {
		logger.Fatalf("Failed to open database at %s: %v", cfg.DatabasePath, err)
	}
	defer conn.Close()

	categoryRepo := repository.NewSQLiteCategoryRepository(conn, logger)
	productRepo := repository.NewSQLiteProductRepository(conn, logger)

	categoryUC := usecase.NewCategoryUseCase(categoryRepo, logger)
	productUC := usecase.NewProductUseCase(productRepo, logger)

	categoryHandler := delivery.NewCategoryHandler(categoryUC, logger)
	productHandler := delivery.NewProductHandler(productUC, logger)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(delivery.RequestLogger(logger))

	categoryHandler.RegisterRoutes(router)
	productHandler.RegisterRoutes(router)

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	go func() {
		logger.Infof("Catalog Service listening on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down Catalog Service...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Forced shutdown: %v", err)
	}
	logger.Info("Catalog Service stopped")
}
