package product

import (
	"context"

	"puntoventa/internal/core/tx"
	"puntoventa/internal/domain"
	"puntoventa/internal/domain/catalogs/tax"
)

// Service provides business logic for the Product catalog.
type Service struct {
	*domain.CatalogService[*Product]
	repo  Repository
	taxes *tax.Service
}

// NewService creates a new Product service.
func NewService(repo Repository, taxes *tax.Service, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Product]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "product",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		taxes:          taxes,
	}

	base.Hooks().OnBeforeCreate(svc.recomputeFinals)
	base.Hooks().OnBeforeUpdate(svc.recomputeFinals)

	return svc
}

// recomputeFinals derives both final amounts from the bases and the
// referenced tax, so stored pairs always stay coherent. A missing tax
// reference means rate 0.
func (s *Service) recomputeFinals(ctx context.Context, p *Product) error {
	if p.TaxID == nil {
		p.ApplyTax(nil)
		return nil
	}

	t, err := s.taxes.GetByID(ctx, *p.TaxID)
	if err != nil {
		return err
	}
	p.ApplyTax(&t.Percent)
	return nil
}

// FindByBarcode retrieves a product by barcode.
func (s *Service) FindByBarcode(ctx context.Context, barcode string) (*Product, error) {
	return s.repo.FindByBarcode(ctx, barcode)
}
