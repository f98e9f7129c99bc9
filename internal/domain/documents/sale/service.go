package sale

import (
	"context"
	"fmt"
	"time"

	"puntoventa/internal/core/apperror"
	"puntoventa/internal/core/id"
	"puntoventa/internal/core/tx"
	"puntoventa/internal/domain"
	"puntoventa/internal/domain/catalogs/client"
	"puntoventa/internal/domain/catalogs/register"
	"puntoventa/internal/domain/checkout"
	"puntoventa/internal/domain/payment"
	"puntoventa/pkg/logger"
	"puntoventa/pkg/numerator"
)

// ClientAccounts is the slice of the client catalog the sale service needs:
// locked reads and balance updates for credit sales.
type ClientAccounts interface {
	GetForUpdate(ctx context.Context, clientID id.ID) (*client.Client, error)
	Update(ctx context.Context, c *client.Client) error
}

// StockAdjuster reduces product stock when a sale is issued.
type StockAdjuster interface {
	AdjustStock(ctx context.Context, productID id.ID, delta int) error
}

// RegisterDirectory resolves registers for folio scoping.
type RegisterDirectory interface {
	GetByID(ctx context.Context, registerID id.ID) (*register.Register, error)
}

// Service provides business operations for sale documents.
type Service struct {
	repo      Repository
	clients   ClientAccounts
	stock     StockAdjuster
	registers RegisterDirectory
	numerator *numerator.Service
	txManager tx.Manager
}

// NewService creates a new sale service.
func NewService(
	repo Repository,
	clients ClientAccounts,
	stock StockAdjuster,
	registers RegisterDirectory,
	num *numerator.Service,
	txManager tx.Manager,
) *Service {
	return &Service{
		repo:      repo,
		clients:   clients,
		stock:     stock,
		registers: registers,
		numerator: num,
		txManager: txManager,
	}
}

// folioConfig builds the numerator config for the document's register.
// Each register counts its own sequence; the folio shows only the prefix.
func (s *Service) folioConfig(ctx context.Context, registerID id.ID) (numerator.Config, error) {
	reg, err := s.registers.GetByID(ctx, registerID)
	if err != nil {
		return numerator.Config{}, fmt.Errorf("resolve register: %w", err)
	}
	cfg := numerator.DefaultConfig(FolioPrefix)
	cfg.Scope = reg.Code
	return cfg, nil
}

// NextFolio allocates the next folio for a register. Exposed for the
// screen that shows the upcoming folio before the sale is saved.
func (s *Service) NextFolio(ctx context.Context, registerID id.ID) (string, error) {
	cfg, err := s.folioConfig(ctx, registerID)
	if err != nil {
		return "", err
	}
	return s.numerator.NextFolio(ctx, cfg, &numerator.Options{Strategy: NumeratorStrategy}, time.Now())
}

// Create saves a new sale document (pending unless issued afterwards).
func (s *Service) Create(ctx context.Context, doc *Sale) error {
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

	logger.Info(ctx, "sale created", "id", doc.ID, "folio", doc.Folio, "status", doc.Status)
	return nil
}

// GetByID retrieves a sale with lines and payments.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Sale, error) {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}
	return s.loadParts(ctx, doc)
}

// GetByFolio retrieves a sale by folio with lines and payments.
func (s *Service) GetByFolio(ctx context.Context, folio string) (*Sale, error) {
	doc, err := s.repo.GetByFolio(ctx, folio)
	if err != nil {
		return nil, err
	}
	return s.loadParts(ctx, doc)
}

func (s *Service) loadParts(ctx context.Context, doc *Sale) (*Sale, error) {
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

// Update updates a pending sale. Issued sales are immutable.
func (s *Service) Update(ctx context.Context, doc *Sale) error {
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

// RemovePayment deletes one collected payment from a pending sale.
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

// Issue finalizes a pending sale: re-checks credit eligibility against
// fresh customer state, charges the credit portion, reduces stock and
// marks the document issued. One-way transition.
func (s *Service) Issue(ctx context.Context, docID id.ID, now time.Time) error {
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

		// The credit check already ran when the operator added the
		// entry, but customer state can go stale between the two
		// moments. This pass runs under a row lock and is authoritative.
		creditAmount := doc.CreditAmount()
		if creditAmount.IsPositive() {
			cust, err := s.clients.GetForUpdate(ctx, doc.ClientID)
			if err != nil {
				return err
			}
			snapshot := cust.CreditSnapshot()
			for _, p := range doc.Payments {
				if err := payment.CheckCredit(p.Entry(), snapshot, doc.Total, now); err != nil {
					return err
				}
			}
			if err := cust.AddCharge(creditAmount, now); err != nil {
				return err
			}
			if err := s.clients.Update(ctx, cust); err != nil {
				return fmt.Errorf("charge credit: %w", err)
			}
		}

		for _, line := range doc.Lines {
			if err := s.stock.AdjustStock(ctx, line.ProductID, -line.Quantity); err != nil {
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

	logger.Info(ctx, "sale issued", "id", docID)
	return nil
}

// Submit saves an assembled checkout payload: hold keeps it pending,
// finalize issues it immediately. A failed submission leaves nothing
// half-issued; the caller's cart and ledger stay intact for retry.
func (s *Service) Submit(ctx context.Context, p checkout.Payload) (*Sale, error) {
	doc := FromPayload(p)
	if err := s.Create(ctx, doc); err != nil {
		return nil, err
	}

	if p.Intent == checkout.IntentFinalize {
		if err := s.Issue(ctx, doc.ID, time.Now()); err != nil {
			return nil, err
		}
	}

	return s.GetByID(ctx, doc.ID)
}

// Delete soft-deletes a pending sale. Issued sales cannot be deleted.
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

// List retrieves sales with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Sale], error) {
	return s.repo.List(ctx, filter)
}
