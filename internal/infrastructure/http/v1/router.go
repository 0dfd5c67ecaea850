// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"fulfilment/internal/domain/fulfilment"
	"fulfilment/internal/domain/location"
	"fulfilment/internal/domain/product"
	"fulfilment/internal/domain/store"
	"fulfilment/internal/domain/warehouse"
	"fulfilment/internal/infrastructure/http/v1/handlers"
	"fulfilment/internal/infrastructure/http/v1/middleware"
	"fulfilment/internal/infrastructure/storage/postgres"
	"fulfilment/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Pool is the database connection pool (health checks)
	Pool *postgres.Pool

	// TxManager drives transactional use cases
	TxManager *postgres.TxManager

	// Locations resolves warehouse location constraints
	Locations location.Resolver

	// Logger for request logging
	Logger *logger.Logger
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	baseHandler := handlers.NewBaseHandler()

	// Repositories share the TxManager so use cases join ambient transactions.
	warehouseRepo := postgres.NewWarehouseRepo(cfg.TxManager)
	fulfilmentRepo := postgres.NewFulfilmentRepo(cfg.TxManager)
	storeRepo := postgres.NewStoreRepo(cfg.TxManager)
	productRepo := postgres.NewProductRepo(cfg.TxManager)

	warehouseValidator := warehouse.NewValidator(warehouseRepo, cfg.Locations)
	warehouseService := warehouse.NewService(warehouseRepo, warehouseValidator, cfg.TxManager)
	fulfilmentService := fulfilment.NewService(fulfilmentRepo, storeRepo, productRepo, warehouseRepo, cfg.TxManager)
	storeService := store.NewService(storeRepo, cfg.TxManager)
	productService := product.NewService(productRepo, cfg.TxManager)

	// API v1
	api := router.Group("/api/v1")
	{
		// --- WAREHOUSES ---
		{
			handler := handlers.NewWarehouseHandler(baseHandler, warehouseService)
			group := api.Group("/warehouses")
			group.GET("", handler.List)
			group.POST("", handler.Create)
			group.GET("/:code", handler.Get)
			group.PUT("/:code", handler.Replace)
			group.DELETE("/:code", handler.Archive)
		}

		// --- FULFILMENTS ---
		{
			handler := handlers.NewFulfilmentHandler(baseHandler, fulfilmentService)
			group := api.Group("/fulfilments")
			group.GET("", handler.List)
			group.POST("", handler.Create)
			group.DELETE("/:id", handler.Delete)
		}

		// --- STORES ---
		{
			handler := handlers.NewStoreHandler(baseHandler, storeService)
			RegisterCatalogRoutes(api.Group("/stores"), handler)
		}

		// --- PRODUCTS ---
		{
			handler := handlers.NewProductHandler(baseHandler, productService)
			RegisterCatalogRoutes(api.Group("/products"), handler)
		}
	}

	return router
}
