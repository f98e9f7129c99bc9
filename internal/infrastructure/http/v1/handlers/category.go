package handlers

import (
	"puntoventa/internal/domain/catalogs/category"
	"puntoventa/internal/infrastructure/http/v1/dto"
)

// CategoryHandler serves the product category catalog.
type CategoryHandler = CatalogHandler[*category.Category, dto.CreateCategoryRequest, dto.UpdateCategoryRequest]

// NewCategoryHandler creates the category catalog handler.
func NewCategoryHandler(service *category.Service) *CategoryHandler {
	return NewCatalogHandler(
		service.CatalogService,
		func(r *dto.CreateCategoryRequest) (*category.Category, error) {
			return r.ToEntity(), nil
		},
		func(r *dto.UpdateCategoryRequest, c *category.Category) error {
			r.ApplyTo(c)
			return nil
		},
	)
}
