package register

import (
	"context"

	"puntoventa/internal/core/id"
	"puntoventa/internal/core/tx"
	"puntoventa/internal/domain"
)

// Service provides business logic for the Register catalog.
type Service struct {
	*domain.CatalogService[*Register]
	repo Repository
}

// NewService creates a new Register service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Register]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "register",
	})

	return &Service{
		CatalogService: base,
		repo:           repo,
	}
}

// ListByStore retrieves the registers of one store.
func (s *Service) ListByStore(ctx context.Context, storeID id.ID) ([]*Register, error) {
	return s.repo.ListByStore(ctx, storeID)
}
