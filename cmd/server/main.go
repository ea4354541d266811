package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/yeonlog/storefront-admin-backend/config"
	"github.com/yeonlog/storefront-admin-backend/internal/app/controller"
	"github.com/yeonlog/storefront-admin-backend/internal/app/repository"
	"github.com/yeonlog/storefront-admin-backend/internal/app/service"
	"github.com/yeonlog/storefront-admin-backend/internal/db"
	"github.com/yeonlog/storefront-admin-backend/internal/middleware"
	"github.com/yeonlog/storefront-admin-backend/internal/router"
	"github.com/yeonlog/storefront-admin-backend/internal/storage"
	"github.com/yeonlog/storefront-admin-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // 운영 환경은 json
		EnableColor: true,
	})

	logger.Info("Starting Storefront Admin Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	storeRepo := repository.NewStoreRepository(db.GetDB())
	billboardRepo := repository.NewBillboardRepository(db.GetDB())
	categoryRepo := repository.NewCategoryRepository(db.GetDB())
	sizeRepo := repository.NewSizeRepository(db.GetDB())
	colorRepo := repository.NewColorRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())
	orderRepo := repository.NewOrderRepository(db.GetDB())

	// Services
	authService := service.NewAuthService(
		userRepo,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	storeService := service.NewStoreService(storeRepo)
	billboardService := service.NewBillboardService(billboardRepo, storeRepo)
	categoryService := service.NewCategoryService(categoryRepo, billboardRepo, storeRepo)
	sizeService := service.NewSizeService(sizeRepo, storeRepo)
	colorService := service.NewColorService(colorRepo, storeRepo)
	productService := service.NewProductService(productRepo, categoryRepo, sizeRepo, colorRepo, storeRepo)
	orderService := service.NewOrderService(orderRepo, productRepo, storeRepo)
	dashboardService := service.NewDashboardService(orderRepo, productRepo, storeRepo)

	// Storage
	s3Storage := storage.NewS3Storage(cfg.S3)

	// Controllers
	authController := controller.NewAuthController(authService)
	storeController := controller.NewStoreController(storeService)
	billboardController := controller.NewBillboardController(billboardService)
	categoryController := controller.NewCategoryController(categoryService)
	sizeController := controller.NewSizeController(sizeService)
	colorController := controller.NewColorController(colorService)
	productController := controller.NewProductController(productService)
	orderController := controller.NewOrderController(orderService)
	dashboardController := controller.NewDashboardController(dashboardService)
	uploadController := controller.NewUploadController(s3Storage)

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	r := router.NewRouter(
		authController,
		storeController,
		billboardController,
		categoryController,
		sizeController,
		colorController,
		productController,
		orderController,
		dashboardController,
		uploadController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
