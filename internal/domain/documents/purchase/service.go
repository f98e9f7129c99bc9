package purchase

import (
	"context"
	"fmt"
	"time"

	"puntoventa/internal/core/apperror"
	"puntoventa/internal/core/id"
	"puntoventa/internal/core/tx"
	"puntoventa/internal/domain"
	"puntoventa/internal/domain/catalogs/register"
	"puntoventa/internal/domain/checkout"
	"puntoventa/pkg/logger"
	"puntoventa/pkg/numerator"
)

// StockAdjuster increases product stock when a purchase is issued.
type StockAdjuster interface {
	AdjustStock(ctx context.Context, productID id.ID, delta int) error
}

// RegisterDirectory resolves registers for folio scoping.
type RegisterDirectory interface {
	GetByID(ctx context.Context, registerID id.ID) (*register.Register, error)
}

// Service provides business operations for purchase documents.
type Service struct {
	repo      Repository
	stock     StockAdjuster
	registers RegisterDirectory
	numerator *numerator.Service
	txManager tx.Manager
}

// NewService creates a new purchase service.
func NewService(
	repo Repository,
	stock StockAdjuster,
	registers RegisterDirectory,
	num *numerator.Service,
	txManager tx.Manager,
) *Service {
	return &Service{
		repo:      repo,
		stock:     stock,
		registers: registers,
		numerator: num,
		txManager: txManager,
	}
}

func (s *Service) folioConfig(ctx context.Context, registerID id.ID) (numerator.Config, error) {
	reg, err := s.registers.GetByID(ctx, registerID)
	if err != nil {
		return numerator.Config{}, fmt.Errorf("resolve register: %w", err)
	}
	cfg := numerator.DefaultConfig(FolioPrefix)
	cfg.Scope = reg.Code
	return cfg, nil
}

// NextFolio allocates the next purchase folio for a register.
func (s *Service) NextFolio(ctx context.Context, registerID id.ID) (string, error) {
	cfg, err := s.folioConfig(ctx, registerID)
	if err != nil {
		return "", err
	}
	return s.numerator.NextFolio(ctx, cfg, &numerator.Options{Strategy: NumeratorStrategy}, time.Now())
}

// Create saves a new purchase document.
func (s *Service) Create(ctx context.Context, doc *Purchase) error {
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if doc.Folio == "" {
		cfg, err := s.folioConfig(ctx, doc.RegisterID)
		if err != nil {
			return err
		}
		folio, err := s.numerator.NextFolio(ctx, cfg, &numerator.Options{Strategy: NumeratorStrategy}, time.Now())
		if err != nil {
			return fmt.Errorf("generate folio: %w", err)
		}
		doc.Folio = folio
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, doc); err != nil {
			return fmt.Errorf("create document: %w", err)
		}
		if err := s.repo.SaveLines(ctx, doc.ID, doc.Lines); err != nil {
			return fmt.Errorf("save lines: %w", err)
		}
		if err := s.repo.SavePayments(ctx, doc.ID, doc.Payments); err != nil {
			return fmt.Errorf("save payments: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "purchase created", "id", doc.ID, "folio", doc.Folio, "status", doc.Status)
	return nil
}

// GetByID retrieves a purchase with lines and payments.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Purchase, error) {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}
	return s.loadParts(ctx, doc)
}

// GetByFolio retrieves a purchase by folio with lines and payments.
func (s *Service) GetByFolio(ctx context.Context, folio string) (*Purchase, error) {
	doc, err := s.repo.GetByFolio(ctx, folio)
	if err != nil {
		return nil, err
	}
	return s.loadParts(ctx, doc)
}

func (s *Service) loadParts(ctx context.Context, doc *Purchase) (*Purchase, error) {
	lines, err := s.repo.GetLines(ctx, doc.ID)
	if err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}
	doc.Lines = lines

	payments, err := s.repo.GetPayments(ctx, doc.ID)
	if err != nil {
		return nil, fmt.Errorf("get payments: %w", err)
	}
	doc.Payments = payments

	return doc, nil
}

// Update updates a pending purchase. Issued purchases are immutable.
func (s *Service) Update(ctx context.Context, doc *Purchase) error {
	if err := doc.CanModify(); err != nil {
		return err
	}
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, doc); err != nil {
			return fmt.Errorf("update document: %w", err)
		}
		if err := s.repo.SaveLines(ctx, doc.ID, doc.Lines); err != nil {
			return fmt.Errorf("save lines: %w", err)
		}
		if err := s.repo.SavePayments(ctx, doc.ID, doc.Payments); err != nil {
			return fmt.Errorf("save payments: %w", err)
		}
		return nil
	})
}

// RemovePayment deletes one registered payment from a pending purchase.
func (s *Service) RemovePayment(ctx context.Context, docID id.ID, index int) error {
	doc, err := s.GetByID(ctx, docID)
	if err != nil {
		return err
	}
	if err := doc.CanModify(); err != nil {
		return err
	}

	doc.RemovePayment(index)
	return s.Update(ctx, doc)
}

// Issue finalizes a pending purchase: requires payments to cover the
// total, increases stock and marks the document issued. One-way.
func (s *Service) Issue(ctx context.Context, docID id.ID) error {
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		doc, err := s.repo.GetForUpdate(ctx, docID)
		if err != nil {
			return err
		}
		if doc.IsIssued() {
			return apperror.NewDocumentIssued(doc.ID.String())
		}

		doc, err = s.loadParts(ctx, doc)
		if err != nil {
			return err
		}
		if err := doc.Validate(ctx); err != nil {
			return err
		}
		if !doc.IsSettled() {
			return apperror.NewBusinessRule(apperror.CodePaymentIncomplete,
				"received amount does not cover the total").
				WithDetail("total", doc.Total.String()).
				WithDetail("received", doc.Received.String())
		}

		for _, line := range doc.Lines {
			if err := s.stock.AdjustStock(ctx, line.ProductID, line.Quantity); err != nil {
				return fmt.Errorf("adjust stock: %w", err)
			}
		}

		doc.MarkIssued()
		if err := s.repo.Update(ctx, doc); err != nil {
			return fmt.Errorf("mark issued: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "purchase issued", "id", docID)
	return nil
}

// Submit saves an assembled checkout payload: hold keeps it pending,
// finalize issues it immediately.
func (s *Service) Submit(ctx context.Context, p checkout.Payload) (*Purchase, error) {
	doc := FromPayload(p)
	if err := s.Create(ctx, doc); err != nil {
		return nil, err
	}

	if p.Intent == checkout.IntentFinalize {
		if err := s.Issue(ctx, doc.ID); err != nil {
			return nil, err
		}
	}

	return s.GetByID(ctx, doc.ID)
}

// Delete soft-deletes a pending purchase.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return err
	}
	if err := doc.CanModify(); err != nil {
		return err
	}
	return s.repo.Delete(ctx, docID)
}

// List retrieves purchases with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Purchase], error) {
	return s.repo.List(ctx, filter)
}
