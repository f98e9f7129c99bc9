package handlers

import (
	"puntoventa/internal/domain/catalogs/supplier"
	"puntoventa/internal/infrastructure/http/v1/dto"
)

// SupplierHandler serves the supplier catalog.
type SupplierHandler = CatalogHandler[*supplier.Supplier, dto.CreateSupplierRequest, dto.UpdateSupplierRequest]

// NewSupplierHandler creates the supplier catalog handler.
func NewSupplierHandler(service *supplier.Service) *SupplierHandler {
	return NewCatalogHandler(
		service.CatalogService,
		func(r *dto.CreateSupplierRequest) (*supplier.Supplier, error) {
			return r.ToEntity(), nil
		},
		func(r *dto.UpdateSupplierRequest, s *supplier.Supplier) error {
			r.ApplyTo(s)
			return nil
		},
	)
}
