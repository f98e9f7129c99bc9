package purchase

import (
	"context"
	"time"

	"puntoventa/internal/core/entity"
	"puntoventa/internal/core/id"
	"puntoventa/internal/domain"
)

// Repository defines operations for purchase documents.
type Repository interface {
	Create(ctx context.Context, doc *Purchase) error
	GetByID(ctx context.Context, docID id.ID) (*Purchase, error)
	GetByFolio(ctx context.Context, folio string) (*Purchase, error)
	Update(ctx context.Context, doc *Purchase) error
	Delete(ctx context.Context, docID id.ID) error

	GetLines(ctx context.Context, docID id.ID) ([]Line, error)
	SaveLines(ctx context.Context, docID id.ID, lines []Line) error
	GetPayments(ctx context.Context, docID id.ID) ([]Payment, error)
	SavePayments(ctx context.Context, docID id.ID, payments []Payment) error

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Purchase], error)
	GetForUpdate(ctx context.Context, docID id.ID) (*Purchase, error)
}

// ListFilter for filtering purchases.
type ListFilter struct {
	domain.ListFilter

	SupplierID *id.ID
	StoreID    *id.ID
	RegisterID *id.ID
	Status     *entity.DocumentStatus
	DateFrom   *time.Time
	DateTo     *time.Time
}
