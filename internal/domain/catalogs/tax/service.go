package tax

import (
	"puntoventa/internal/core/tx"
	"puntoventa/internal/domain"
)

// Service provides business logic for the Tax catalog.
// Uses composition with domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Tax]
	repo Repository
}

// NewService creates a new Tax service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Tax]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "tax",
	})

	return &Service{
		CatalogService: base,
		repo:           repo,
	}
}
