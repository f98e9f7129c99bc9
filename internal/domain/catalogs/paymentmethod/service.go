package paymentmethod

import (
	"context"

	"puntoventa/internal/core/apperror"
	"puntoventa/internal/core/id"
	"puntoventa/internal/core/tx"
	"puntoventa/internal/domain"
)

// Service provides business logic for the Payment Method catalog.
type Service struct {
	*domain.CatalogService[*Method]
	repo Repository
}

// NewService creates a new payment Method service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Method]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "payment method",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().OnBeforeCreate(svc.checkClaveUnique)
	base.Hooks().OnBeforeUpdate(svc.protectReserved)
	base.Hooks().OnBeforeDelete(svc.protectReservedDelete)

	return svc
}

func (s *Service) checkClaveUnique(ctx context.Context, m *Method) error {
	if exists, _ := s.claveExists(ctx, m.Clave, m.ID); exists {
		return apperror.NewConflict("payment method with this clave already exists").
			WithDetail("clave", m.Clave)
	}
	return nil
}

// protectReserved blocks edits to the built-in credit method.
func (s *Service) protectReserved(ctx context.Context, m *Method) error {
	stored, err := s.repo.GetByID(ctx, m.ID)
	if err == nil && stored.IsReserved() {
		return apperror.NewForbidden("the reserved credit method cannot be modified").
			WithDetail("clave", ReservedCreditClave)
	}
	return s.checkClaveUnique(ctx, m)
}

func (s *Service) protectReservedDelete(ctx context.Context, m *Method) error {
	if m.IsReserved() {
		return apperror.NewForbidden("the reserved credit method cannot be deleted").
			WithDetail("clave", ReservedCreditClave)
	}
	return nil
}

// FindByClave retrieves a method by clave.
func (s *Service) FindByClave(ctx context.Context, clave string) (*Method, error) {
	return s.repo.FindByClave(ctx, clave)
}

func (s *Service) claveExists(ctx context.Context, clave string, excludeID id.ID) (bool, error) {
	existing, err := s.repo.FindByClave(ctx, clave)
	if err != nil {
		return false, nil
	}
	return existing.ID != excludeID, nil
}
