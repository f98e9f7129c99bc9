package currency

import (
	"context"

	"puntoventa/internal/core/apperror"
	"puntoventa/internal/core/id"
	"puntoventa/internal/core/tx"
	"puntoventa/internal/domain"
)

// Service provides business logic for the Currency catalog.
// Uses composition with domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Currency]
	repo Repository
}

// NewService creates a new Currency service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Currency]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "currency",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForSave)
	base.Hooks().OnBeforeUpdate(svc.prepareForSave)
	base.Hooks().OnBeforeDelete(svc.validateBeforeDelete)

	return svc
}

// prepareForSave handles uniqueness checks and base-flag exclusivity.
func (s *Service) prepareForSave(ctx context.Context, curr *Currency) error {
	if exists, _ := s.abbreviationExists(ctx, curr.Abbreviation, curr.ID); exists {
		return apperror.NewConflict("currency with this abbreviation already exists").
			WithDetail("abbreviation", curr.Abbreviation)
	}

	// Only one base currency at a time.
	if curr.IsBase {
		if err := s.repo.ClearBase(ctx); err != nil {
			return err
		}
	}

	return nil
}

// validateBeforeDelete prevents deletion of the home currency.
func (s *Service) validateBeforeDelete(ctx context.Context, curr *Currency) error {
	if curr.IsBase {
		return apperror.NewValidation("cannot delete base currency")
	}
	return nil
}

// FindByAbbreviation retrieves currency by abbreviation.
func (s *Service) FindByAbbreviation(ctx context.Context, abbreviation string) (*Currency, error) {
	return s.repo.FindByAbbreviation(ctx, abbreviation)
}

// GetBase retrieves the home currency.
func (s *Service) GetBase(ctx context.Context) (*Currency, error) {
	return s.repo.GetBase(ctx)
}

func (s *Service) abbreviationExists(ctx context.Context, abbreviation string, excludeID id.ID) (bool, error) {
	existing, err := s.repo.FindByAbbreviation(ctx, abbreviation)
	if err != nil {
		return false, nil
	}
	return existing.ID != excludeID, nil
}
