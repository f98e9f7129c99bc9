package client

import (
	"context"
	"time"

	"puntoventa/internal/core/id"
	"puntoventa/internal/core/tx"
	"puntoventa/internal/core/types"
	"puntoventa/internal/domain"
	"puntoventa/internal/domain/payment"
)

// Service provides business logic for the Client catalog, including the
// credit balance operations.
type Service struct {
	*domain.CatalogService[*Client]
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new Client service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Client]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "client",
	})

	return &Service{
		CatalogService: base,
		repo:           repo,
		txManager:      txManager,
	}
}

// CreditSnapshot fetches the customer's current credit state. The snapshot
// is read-only and may go stale; document issue re-checks against fresh
// state under a row lock.
func (s *Service) CreditSnapshot(ctx context.Context, clientID id.ID) (payment.CustomerCredit, error) {
	c, err := s.GetByID(ctx, clientID)
	if err != nil {
		return payment.CustomerCredit{}, err
	}
	return c.CreditSnapshot(), nil
}

// ChargeCredit adds a credit sale's total to the customer's balance.
// Runs under a row lock so concurrent sales cannot both fit into the
// same remaining credit.
func (s *Service) ChargeCredit(ctx context.Context, clientID id.ID, amount types.Money) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		c, err := s.repo.GetForUpdate(ctx, clientID)
		if err != nil {
			return err
		}
		if err := c.AddCharge(amount, time.Now()); err != nil {
			return err
		}
		return s.repo.Update(ctx, c)
	})
}

// RegisterPayment records a payment against the customer's owed balance.
func (s *Service) RegisterPayment(ctx context.Context, clientID id.ID, amount types.Money) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		c, err := s.repo.GetForUpdate(ctx, clientID)
		if err != nil {
			return err
		}
		if err := c.RegisterPayment(amount, time.Now()); err != nil {
			return err
		}
		return s.repo.Update(ctx, c)
	})
}
