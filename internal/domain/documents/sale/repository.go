package sale

import (
	"context"
	"time"

	"puntoventa/internal/core/entity"
	"puntoventa/internal/core/id"
	"puntoventa/internal/domain"
)

// Repository defines operations for sale documents.
type Repository interface {
	Create(ctx context.Context, doc *Sale) error
	GetByID(ctx context.Context, docID id.ID) (*Sale, error)
	GetByFolio(ctx context.Context, folio string) (*Sale, error)
	Update(ctx context.Context, doc *Sale) error
	Delete(ctx context.Context, docID id.ID) error

	GetLines(ctx context.Context, docID id.ID) ([]Line, error)
	SaveLines(ctx context.Context, docID id.ID, lines []Line) error
	GetPayments(ctx context.Context, docID id.ID) ([]Payment, error)
	SavePayments(ctx context.Context, docID id.ID, payments []Payment) error

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Sale], error)
	GetForUpdate(ctx context.Context, docID id.ID) (*Sale, error)
}

// ListFilter for filtering sales.
type ListFilter struct {
	domain.ListFilter

	ClientID   *id.ID
	StoreID    *id.ID
	RegisterID *id.ID
	Status     *entity.DocumentStatus
	DateFrom   *time.Time
	DateTo     *time.Time
}
