// Package v1 assembles the HTTP API: repositories, services, handlers
// and routes for the first API version.
package v1

import (
	"github.com/gin-gonic/gin"

	"puntoventa/internal/domain/auth"
	"puntoventa/internal/domain/catalogs/category"
	"puntoventa/internal/domain/catalogs/client"
	"puntoventa/internal/domain/catalogs/currency"
	"puntoventa/internal/domain/catalogs/paymentmethod"
	"puntoventa/internal/domain/catalogs/product"
	"puntoventa/internal/domain/catalogs/register"
	"puntoventa/internal/domain/catalogs/store"
	"puntoventa/internal/domain/catalogs/supplier"
	"puntoventa/internal/domain/catalogs/tax"
	"puntoventa/internal/domain/checkout"
	"puntoventa/internal/domain/documents/purchase"
	"puntoventa/internal/domain/documents/sale"
	"puntoventa/internal/infrastructure/http/v1/handlers"
	"puntoventa/internal/infrastructure/http/v1/middleware"
	"puntoventa/internal/infrastructure/storage/postgres"
	"puntoventa/internal/infrastructure/storage/postgres/auth_repo"
	"puntoventa/internal/infrastructure/storage/postgres/catalog_repo"
	"puntoventa/internal/infrastructure/storage/postgres/document_repo"
	"puntoventa/pkg/logger"
	"puntoventa/pkg/numerator"
)

// RouterConfig holds everything the router needs to assemble the API.
type RouterConfig struct {
	Pool      *postgres.Pool
	TxManager *postgres.TxManager
	Logger    *logger.Logger
	JWTConfig auth.JWTConfig
	Version   string

	// Debug switches gin out of release mode.
	Debug bool
}

// NewRouter builds the gin engine with all middleware and routes.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.Recovery(),
		middleware.Trace(),
		middleware.Logger(cfg.Logger),
		middleware.ErrorHandler(),
	)

	// Repositories share the transaction manager so they join whatever
	// transaction the calling service opened.
	taxRepo := catalog_repo.NewTaxRepo(cfg.TxManager)
	categoryRepo := catalog_repo.NewCategoryRepo(cfg.TxManager)
	currencyRepo := catalog_repo.NewCurrencyRepo(cfg.TxManager)
	methodRepo := catalog_repo.NewPaymentMethodRepo(cfg.TxManager)
	productRepo := catalog_repo.NewProductRepo(cfg.TxManager)
	clientRepo := catalog_repo.NewClientRepo(cfg.TxManager)
	supplierRepo := catalog_repo.NewSupplierRepo(cfg.TxManager)
	storeRepo := catalog_repo.NewStoreRepo(cfg.TxManager)
	registerRepo := catalog_repo.NewRegisterRepo(cfg.TxManager)
	auditSvc, err := postgres.NewAuditService(cfg.TxManager)
	if err != nil {
		// zstd init takes no external input; failure here is a bug
		panic(err)
	}

	saleRepo := document_repo.NewSaleRepo(cfg.TxManager, auditSvc)
	purchaseRepo := document_repo.NewPurchaseRepo(cfg.TxManager, auditSvc)
	userRepo := auth_repo.NewUserRepo(cfg.TxManager)

	// Folio allocation runs against the pool directly so a rolled-back
	// document never blocks the sequence.
	folios := numerator.New(cfg.Pool.Unwrap())

	taxSvc := tax.NewService(taxRepo, cfg.TxManager)
	categorySvc := category.NewService(categoryRepo, cfg.TxManager)
	currencySvc := currency.NewService(currencyRepo, cfg.TxManager)
	methodSvc := paymentmethod.NewService(methodRepo, cfg.TxManager)
	productSvc := product.NewService(productRepo, taxSvc, cfg.TxManager)
	clientSvc := client.NewService(clientRepo, cfg.TxManager)
	supplierSvc := supplier.NewService(supplierRepo, cfg.TxManager)
	storeSvc := store.NewService(storeRepo, cfg.TxManager)
	registerSvc := register.NewService(registerRepo, cfg.TxManager)

	saleSvc := sale.NewService(saleRepo, clientRepo, productRepo, registerRepo, folios, cfg.TxManager)
	purchaseSvc := purchase.NewService(purchaseRepo, productRepo, registerRepo, folios, cfg.TxManager)
	checkoutSvc := checkout.NewService(productSvc, methodSvc, currencySvc)

	jwtSvc := auth.NewJWTService(cfg.JWTConfig)
	authSvc := auth.NewService(userRepo, jwtSvc, cfg.TxManager)

	// Health endpoints stay outside auth.
	healthHandler := handlers.NewHealthHandler(cfg.Pool, cfg.Version)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	api := router.Group("/api/v1")
	protected := api.Group("", middleware.Auth(authSvc))

	authHandler := handlers.NewAuthHandler(authSvc)
	authHandler.RegisterRoutes(api, protected)

	{
		group := protected.Group("/taxes")
		RegisterCatalogRoutes(group, handlers.NewTaxHandler(taxSvc), "catalog:tax")
	}
	{
		h := handlers.NewCurrencyHandler(currencySvc)
		group := protected.Group("/currencies")
		RegisterCatalogRoutes(group, h, "catalog:currency")
		group.GET("/base", middleware.RequirePermission("catalog:currency:read"), h.GetBase)
		group.GET("/by-abbreviation/:abbr", middleware.RequirePermission("catalog:currency:read"), h.GetByAbbreviation)
	}
	{
		group := protected.Group("/payment-methods")
		RegisterCatalogRoutes(group, handlers.NewPaymentMethodHandler(methodSvc), "catalog:payment-method")
	}
	{
		group := protected.Group("/categorias")
		RegisterCatalogRoutes(group, handlers.NewCategoryHandler(categorySvc), "catalog:category")
	}
	{
		h := handlers.NewProductHandler(productSvc)
		group := protected.Group("/productos")
		RegisterCatalogRoutes(group, h, "catalog:product")
		group.GET("/by-barcode/:barcode", middleware.RequirePermission("catalog:product:read"), h.FindByBarcode)
	}
	{
		h := handlers.NewClientHandler(clientSvc)
		group := protected.Group("/clientes")
		RegisterCatalogRoutes(group, h, "catalog:client")
		group.GET("/:id/credit", middleware.RequirePermission("catalog:client:read"), h.GetCredit)
		group.POST("/:id/payments", middleware.RequirePermission("catalog:client:update"), h.RegisterPayment)
	}
	{
		group := protected.Group("/proveedores")
		RegisterCatalogRoutes(group, handlers.NewSupplierHandler(supplierSvc), "catalog:supplier")
	}
	{
		group := protected.Group("/stores")
		RegisterCatalogRoutes(group, handlers.NewStoreHandler(storeSvc), "catalog:store")
	}
	{
		h := handlers.NewRegisterHandler(registerSvc)
		group := protected.Group("/cajas")
		RegisterCatalogRoutes(group, h, "catalog:register")
		group.GET("/by-store/:id", middleware.RequirePermission("catalog:register:read"), h.ListByStore)
	}
	{
		group := protected.Group("/ventas")
		RegisterDocumentRoutes(group, handlers.NewSaleHandler(saleSvc, checkoutSvc, auditSvc), "document:sale")
	}
	{
		group := protected.Group("/compras")
		RegisterDocumentRoutes(group, handlers.NewPurchaseHandler(purchaseSvc, checkoutSvc, auditSvc), "document:purchase")
	}

	return router
}
