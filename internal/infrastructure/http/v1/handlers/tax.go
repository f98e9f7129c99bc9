package handlers

import (
	"puntoventa/internal/domain/catalogs/tax"
	"puntoventa/internal/infrastructure/http/v1/dto"
)

// TaxHandler serves the tax catalog.
type TaxHandler = CatalogHandler[*tax.Tax, dto.CreateTaxRequest, dto.UpdateTaxRequest]

// NewTaxHandler creates the tax catalog handler.
func NewTaxHandler(service *tax.Service) *TaxHandler {
	return NewCatalogHandler(
		service.CatalogService,
		func(r *dto.CreateTaxRequest) (*tax.Tax, error) {
			return r.ToEntity(), nil
		},
		func(r *dto.UpdateTaxRequest, t *tax.Tax) error {
			r.ApplyTo(t)
			return nil
		},
	)
}
