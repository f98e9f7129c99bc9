package v1

import (
	"github.com/gin-gonic/gin"

	"puntoventa/internal/infrastructure/http/v1/middleware"
)

// CatalogRouteHandler is the route surface of a catalog handler.
type CatalogRouteHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	GetByID(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	SetDeletionMark(c *gin.Context)
}

// RegisterCatalogRoutes wires standard catalog CRUD routes with
// per-operation permission checks derived from the permission prefix.
func RegisterCatalogRoutes(group *gin.RouterGroup, h CatalogRouteHandler, permission string) {
	group.GET("", middleware.RequirePermission(permission+":read"), h.List)
	group.POST("", middleware.RequirePermission(permission+":create"), h.Create)
	group.GET("/:id", middleware.RequirePermission(permission+":read"), h.GetByID)
	group.PUT("/:id", middleware.RequirePermission(permission+":update"), h.Update)
	group.DELETE("/:id", middleware.RequirePermission(permission+":delete"), h.Delete)
	group.POST("/:id/deletion-mark", middleware.RequirePermission(permission+":update"), h.SetDeletionMark)
}

// DocumentRouteHandler is the route surface of a document handler.
type DocumentRouteHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	GetByID(c *gin.Context)
	GetByFolio(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Issue(c *gin.Context)
	RemovePayment(c *gin.Context)
	NextFolio(c *gin.Context)
	Submit(c *gin.Context)
	History(c *gin.Context)
}

// RegisterDocumentRoutes wires standard document routes. Issuing has
// its own permission so cashiers can save pending documents without
// being able to finalize them.
func RegisterDocumentRoutes(group *gin.RouterGroup, h DocumentRouteHandler, permission string) {
	group.GET("", middleware.RequirePermission(permission+":read"), h.List)
	group.POST("", middleware.RequirePermission(permission+":create"), h.Create)
	group.GET("/next-folio", middleware.RequirePermission(permission+":read"), h.NextFolio)
	group.GET("/by-folio/:folio", middleware.RequirePermission(permission+":read"), h.GetByFolio)
	group.POST("/submit", middleware.RequirePermission(permission+":create"), h.Submit)
	group.GET("/:id", middleware.RequirePermission(permission+":read"), h.GetByID)
	group.PUT("/:id", middleware.RequirePermission(permission+":update"), h.Update)
	group.DELETE("/:id", middleware.RequirePermission(permission+":delete"), h.Delete)
	group.POST("/:id/issue", middleware.RequirePermission(permission+":issue"), h.Issue)
	group.GET("/:id/history", middleware.RequirePermission(permission+":read"), h.History)
	group.DELETE("/:id/payments/:index", middleware.RequirePermission(permission+":update"), h.RemovePayment)
}
