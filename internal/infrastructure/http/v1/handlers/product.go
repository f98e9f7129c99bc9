package handlers

import (
	"github.com/gin-gonic/gin"

	"puntoventa/internal/core/apperror"
	"puntoventa/internal/domain/catalogs/product"
	"puntoventa/internal/infrastructure/http/v1/dto"
)

// ProductHandler serves the product catalog plus barcode lookup.
type ProductHandler struct {
	*CatalogHandler[*product.Product, dto.CreateProductRequest, dto.UpdateProductRequest]

	service *product.Service
}

// NewProductHandler creates the product catalog handler.
func NewProductHandler(service *product.Service) *ProductHandler {
	base := NewCatalogHandler(
		service.CatalogService,
		func(r *dto.CreateProductRequest) (*product.Product, error) {
			return r.ToEntity()
		},
		func(r *dto.UpdateProductRequest, p *product.Product) error {
			return r.ApplyTo(p)
		},
	)
	return &ProductHandler{CatalogHandler: base, service: service}
}

// FindByBarcode handles GET /by-barcode/:barcode, the scanner lookup.
func (h *ProductHandler) FindByBarcode(c *gin.Context) {
	barcode := c.Param("barcode")
	if barcode == "" {
		h.Error(c, apperror.NewValidation("barcode is required"))
		return
	}

	p, err := h.service.FindByBarcode(c.Request.Context(), barcode)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, p)
}
